package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures. Verify distinguishes an expired token from a
// tampered or malformed one so callers can report them separately.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	PublicID string `json:"sub"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed,
// time-bounded identity tokens. This abstracts the token format from the use cases.
type TokenService interface {
	// Issue creates a signed token binding the account's public id to an
	// expiration instant (issuance time plus a fixed window).
	Issue(publicID string) (string, error)

	// Verify checks the signature and expiry of a token string. It is a pure
	// function of (token, secret, current time); it fails with ErrTokenExpired
	// or ErrTokenInvalid before any account lookup takes place.
	Verify(tokenString string) (*Claims, error)
}

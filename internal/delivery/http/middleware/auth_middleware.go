package middleware

import (
	"strings"

	deliverycontext "roster/internal/delivery/context"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/service"
	"roster/internal/errors"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's public id
// on the context. Token verification never touches storage.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrTokenInvalid.WithDetails("Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrTokenExpired
			}

			return domainerrors.ErrTokenInvalid
		}

		c.Set(deliverycontext.KeyAccountPublicID, claims.PublicID)

		return next(c)
	}
}

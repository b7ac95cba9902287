// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Username, Email and Password are required; the name fields are optional.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required to authenticate.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AccountView is the minimal projection returned for a single-account lookup.
type AccountView struct {
	PublicID string `json:"public_id"`
	Username string `json:"username"`
}

// AccountSummary is the listing projection: every field except the credential.
type AccountSummary struct {
	PublicID  string    `json:"public_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Active    bool      `json:"active"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	Account *AccountSummary
}

// LoginOutput returns the signed token after a successful login.
type LoginOutput struct {
	Token string
}

// StatusOutput returns the account after a status transition.
type StatusOutput struct {
	Account *AccountSummary
}

// AccountUsecase defines the interface for account lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	List(ctx context.Context) ([]*AccountSummary, error)
	GetByPublicID(ctx context.Context, publicID string) (*AccountView, error)
	Promote(ctx context.Context, publicID string) (*StatusOutput, error)
	Demote(ctx context.Context, publicID string) (*StatusOutput, error)
	Activate(ctx context.Context, publicID string) (*StatusOutput, error)
	Deactivate(ctx context.Context, publicID string) (*StatusOutput, error)
	Delete(ctx context.Context, publicID string) error
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"fmt"

	"roster/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when no account
// matches the given public id or username.
var ErrAccountNotFound = errors.New("account not found")

// DuplicateKeyError reports a uniqueness violation on insert or update,
// identifying which field collided.
type DuplicateKeyError struct {
	Field string // "public_id", "username" or "email"
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key on %s", e.Field)
}

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
// All operations are atomic with respect to the uniqueness invariants: a
// concurrent insert racing on a unique field has exactly one winner, the loser
// observes a DuplicateKeyError.
type AccountRepository interface {
	// Insert persists a new account. It fails with *DuplicateKeyError when
	// public_id, username or email already exists, without partial writes.
	Insert(ctx context.Context, account *entity.Account) error

	// FindByPublicID retrieves a single account by its public identifier.
	FindByPublicID(ctx context.Context, publicID string) (*entity.Account, error)

	// FindByPublicIDForUpdate is FindByPublicID holding a row lock for the
	// duration of the surrounding transaction. Only meaningful inside
	// TransactionManager.Execute; it serializes read-check-write sequences on
	// the same account.
	FindByPublicIDForUpdate(ctx context.Context, publicID string) (*entity.Account, error)

	// FindByUsername retrieves a single account by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// List returns all accounts ordered by creation time descending, ties
	// broken by internal id ascending so iteration order is deterministic.
	List(ctx context.Context) ([]*entity.Account, error)

	// Update overwrites all fields of an existing account atomically as a unit.
	Update(ctx context.Context, account *entity.Account) error

	// Delete permanently removes the account with the given public identifier.
	// There is no soft-delete state.
	Delete(ctx context.Context, publicID string) error
}

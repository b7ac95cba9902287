// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Account is the sole entity in the system, representing a registered user.
// ID is the store-assigned sequential identifier and is never exposed outside
// the process; PublicID is the externally visible handle.
type Account struct {
	ID           uint64    // Internal sequential identifier, assigned by the store.
	PublicID     string    // Externally visible unique identifier, random hex, immutable.
	Username     string    // Unique login name, immutable after creation.
	Email        string    // Unique contact address, required at creation.
	FirstName    string    // Optional display name field.
	LastName     string    // Optional display name field.
	PasswordHash string    // Salted one-way hash of the password. Never plaintext.
	Active       bool      // Whether the account may authenticate. Defaults to true.
	Admin        bool      // Whether the account carries admin status. Defaults to false.
	CreatedAt    time.Time // Assigned at creation, immutable, default listing order key.
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account, keyed by its email address.
// PasswordHash holds the bcrypt digest of the signup password; the plaintext
// is never stored, and the hash must never leave the service boundary.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The login identifier. Unique, matched case-sensitively.
	PasswordHash string    // bcrypt digest of the password. Excluded from all response payloads.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

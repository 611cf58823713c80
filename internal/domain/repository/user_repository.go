// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"asana/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for credential persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when no user exists for the given key.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when an insert violates the unique email index.
	// The index is the sole guard against two concurrent signups for the same email.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address (case-sensitive match).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create persists a new user entity to the storage as a single atomic insert.
	Create(ctx context.Context, user *entity.User) error
}

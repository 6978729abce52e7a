// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"credence/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned by Create when the email column's unique
// index rejects the insert. The store enforces uniqueness so the
// check-then-insert race between two concurrent registrations cannot
// produce two rows.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by their normalized email address.
	// Returns ErrUserNotFound when no row matches; absence is not a failure.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity and assigns its ID.
	// Returns ErrDuplicateEmail when the email is already registered.
	Create(ctx context.Context, user *entity.User) error

	// Count returns the number of registered users. Used only to decide
	// whether to seed the demo account on first run.
	Count(ctx context.Context) (int64, error)
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"doorman/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user record matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned by Create when the email unique constraint is
// violated. The constraint is the serialization point for concurrent
// registrations: of N simultaneous creations for one email, exactly one
// succeeds and the rest observe this error.
var ErrEmailTaken = errors.New("email already taken")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error
}

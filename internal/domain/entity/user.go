// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Email is the login identifier and is
// unique across live records; uniqueness is enforced by the store at creation
// time. PasswordHash is the opaque bcrypt hash+salt+cost string; the plaintext
// password is never persisted or logged.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

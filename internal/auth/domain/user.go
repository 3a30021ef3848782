package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a provisioned identity in the credential store.
type User struct {
	ID           uuid.UUID // Unique identifier (UUIDv7)
	Username     string    // Unique login name
	PasswordHash string    // Argon2id (or legacy bcrypt) hash, never the plain password
	Role         Role
	CreatedAt    time.Time
}

// CreateUserInput contains the parameters for provisioning a new user.
type CreateUserInput struct {
	Username string
	Password string //nolint:gosec // plain password, hashed before persistence
	Role     Role
}

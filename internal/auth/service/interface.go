// Package service provides technical services for authentication operations.
//
// It covers password hashing and verification on a bounded worker pool, signing and
// verifying access tokens, and generating opaque session handles.
package service

import (
	"context"

	"github.com/allisson/gamestats/internal/auth/domain"
)

// PasswordService defines password hashing and verification.
type PasswordService interface {
	// HashPassword hashes a plain text password using Argon2id.
	HashPassword(plainPassword string) (string, error)

	// ComparePassword reports whether plainPassword matches hashedPassword. Hashes in
	// Argon2id PHC format and legacy bcrypt hashes are both accepted. A malformed hash
	// never matches. An error is returned only when ctx ends before verification runs.
	ComparePassword(ctx context.Context, plainPassword, hashedPassword string) (bool, error)

	// DummyHash returns a valid hash of a random password. Verifying against it costs the
	// same as a real verification, which keeps unknown usernames indistinguishable by timing.
	DummyHash() string
}

// TokenService signs and verifies access tokens.
type TokenService interface {
	// Sign issues a token for the given identity and session handle. IssuedAt is the
	// current time and ExpiresAt is IssuedAt plus the configured lifetime.
	Sign(username string, role domain.Role, sessionHandle string) (domain.IssuedToken, error)

	// Verify checks the signature, algorithm and expiry of token and returns its claims.
	// Every failure is reported as domain.ErrTokenInvalid.
	Verify(token string) (domain.Claims, error)
}

// SessionHandleService generates opaque session handles.
type SessionHandleService interface {
	// NewHandle returns a fresh random handle.
	NewHandle() (string, error)
}

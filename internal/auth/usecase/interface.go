// Package usecase defines business logic interfaces for login, per-request authentication
// and user provisioning.
package usecase

import (
	"context"

	"github.com/allisson/gamestats/internal/auth/domain"
)

// UserRepository defines persistence operations for users in the credential store.
// Implementations must support transaction-aware operations via context propagation.
type UserRepository interface {
	// Create stores a new user. Returns ErrUserAlreadyExists if the username is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by username. Returns ErrUserNotFound if not found.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// SessionRepository keeps at most one session per username.
type SessionRepository interface {
	// Put stores session, replacing any previous session for the same username.
	Put(ctx context.Context, session *domain.Session) error

	// Get returns the current session for username. Returns ErrSessionNotFound if none exists.
	Get(ctx context.Context, username string) (*domain.Session, error)
}

// LoginUseCase issues access tokens in exchange for valid credentials.
type LoginUseCase interface {
	// Login verifies the credentials, replaces the user's session with a fresh handle and
	// returns a token bound to it. Any token issued by an earlier login stops authenticating.
	//
	// An unknown username and a wrong password both return ErrAuthenticationFailed.
	Login(ctx context.Context, username, password string) (*domain.IssuedToken, error)
}

// AuthenticatorUseCase resolves a bearer token into a principal.
type AuthenticatorUseCase interface {
	// Authenticate verifies token and checks its session handle against the session store.
	//
	// Returns ErrTokenInvalid when the token is malformed, badly signed or expired; callers
	// treat that as an anonymous request. Returns ErrSessionInvalid when the token is well
	// signed but its session was superseded, is missing or could not be read in time.
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}

// UserUseCase provisions users in the credential store.
type UserUseCase interface {
	// Create hashes the password and stores a new user.
	// Returns ErrUserAlreadyExists if the username is taken.
	Create(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error)

	// CreateMissing provisions every input whose username is not yet taken, inside one
	// transaction, and returns how many users were created.
	CreateMissing(ctx context.Context, inputs []*domain.CreateUserInput) (int, error)
}

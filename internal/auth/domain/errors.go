package domain

import (
	"github.com/allisson/gamestats/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrAuthenticationFailed is returned for an unknown username and for a wrong password alike.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrInvalidCredentials, "authentication failed")

	// ErrSessionInvalid indicates a well-signed token whose session handle is no longer current.
	ErrSessionInvalid = errors.Wrap(errors.ErrSessionInvalid, "session invalid, log in again")

	// ErrUnauthenticated indicates a non-public route reached without an established principal.
	ErrUnauthenticated = errors.Wrap(errors.ErrForbidden, "authentication required")

	// ErrPathRejected indicates a request path with dot or empty segments.
	ErrPathRejected = errors.Wrap(errors.ErrForbidden, "path rejected")

	// ErrInsufficientRole indicates the principal's role does not satisfy the route.
	ErrInsufficientRole = errors.Wrap(errors.ErrForbidden, "insufficient role")

	// ErrTokenInvalid covers every way a token can fail verification.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrUserNotFound indicates a user with the specified username was not found.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates the username is taken.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrSessionNotFound indicates no session is stored for the username.
	ErrSessionNotFound = errors.Wrap(errors.ErrNotFound, "session not found")

	// ErrUnknownRole indicates a role name outside the defined set.
	ErrUnknownRole = errors.Wrap(errors.ErrInvalidInput, "unknown role")
)

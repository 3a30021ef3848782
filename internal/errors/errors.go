// Package errors holds the transport-agnostic error kinds shared by the auth and
// statistics domains. Domain packages wrap these sentinels with their own context and
// the HTTP layer maps them to status codes through Code.
package errors

import (
	"errors"
	"fmt"
)

// Error kinds. Each one has a stable wire code, see Code.
var (
	// ErrNotFound indicates the requested server, player, match or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a write that collides with existing data, such as a taken username.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates a request or seed document that fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials indicates a login attempt with an unknown username or a wrong password.
	// Both cases share this error so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionInvalid indicates a correctly signed token whose session has been superseded or removed.
	ErrSessionInvalid = errors.New("session invalid")

	// ErrUnauthorized indicates a principal was expected in the request context but is missing.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates an anonymous caller or a role that does not satisfy the route.
	ErrForbidden = errors.New("forbidden")
)

// CodeInternal is the wire code of any error outside the known kinds.
const CodeInternal = "internal_error"

// kinds is ordered: the first sentinel found in an error chain decides its code.
var kinds = []struct {
	err  error
	code string
}{
	{ErrNotFound, "not_found"},
	{ErrConflict, "conflict"},
	{ErrInvalidInput, "invalid_input"},
	{ErrInvalidCredentials, "invalid_credentials"},
	{ErrSessionInvalid, "session_invalid"},
	{ErrUnauthorized, "unauthorized"},
	{ErrForbidden, "forbidden"},
}

// Code returns the stable wire code for the kind err wraps, or CodeInternal.
func Code(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.code
		}
	}
	return CodeInternal
}

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap adds context to err while keeping it matchable with Is. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Package http provides the login endpoint and the authentication and authorization
// middleware that guard every route.
package http

import (
	"context"

	"github.com/allisson/gamestats/internal/auth/domain"
)

// principalKey is a context key type for storing the request principal.
type principalKey struct{}

// WithPrincipal stores the authenticated principal in the context. The value is copied,
// so later changes by the caller do not affect what handlers see.
func WithPrincipal(ctx context.Context, principal domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the principal established for the request.
// Returns (principal, true) when the request is authenticated, or a zero principal and
// false for anonymous requests.
func GetPrincipal(ctx context.Context) (domain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(domain.Principal)
	return principal, ok
}

// Package domain defines the session-bound authentication model: users, their roles,
// the single live session kept per username, signed token claims and the static route
// policy that admits or denies a request based on the established principal.
package domain

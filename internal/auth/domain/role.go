package domain

import (
	"strings"

	"github.com/allisson/gamestats/internal/errors"
)

// Role is the closed set of roles a user can hold.
type Role uint8

const (
	roleUnknown Role = iota
	// RoleAdmin grants access to server and report routes.
	RoleAdmin
	// RolePlayer grants access to player routes.
	RolePlayer
)

var roleNames = map[Role]string{
	RoleAdmin:  "ADMIN",
	RolePlayer: "PLAYER",
}

// ParseRole converts a role name into a Role. Matching is case-insensitive.
func ParseRole(s string) (Role, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for role, roleName := range roleNames {
		if roleName == name {
			return role, nil
		}
	}
	return roleUnknown, errors.Wrap(ErrUnknownRole, s)
}

// String returns the canonical role name.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, ErrUnknownRole
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

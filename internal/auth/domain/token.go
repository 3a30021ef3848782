package domain

import "time"

// Claims is the claim set carried by a signed access token.
type Claims struct {
	Subject       string
	Role          Role
	SessionHandle string
	IssuedAt      time.Time
	ExpiresAt     time.Time
}

// Principal returns the identity the claims describe.
func (c Claims) Principal() Principal {
	return Principal{Username: c.Subject, Role: c.Role}
}

// IssuedToken is returned by a successful login.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

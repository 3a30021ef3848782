package domain

import (
	authDomain "github.com/allisson/gamestats/internal/auth/domain"
)

// SeedUser is a credential entry in a seed file. Role is "ADMIN" or "PLAYER".
type SeedUser struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	Role     authDomain.Role `json:"role"`
}

// SeedData is the content of a data initialization file.
type SeedData struct {
	Servers []*Server  `json:"servers"`
	Players []*Player  `json:"players"`
	Users   []SeedUser `json:"users"`
}

// SeedResult reports what a seeding run changed.
type SeedResult struct {
	// StatsSkipped is true when servers or players already existed and none were written.
	StatsSkipped bool
	Servers      int
	Players      int
	Users        int
}

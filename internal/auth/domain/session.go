package domain

import "time"

// Session is the single live login for a username. A new login replaces it, which
// invalidates every token carrying the previous handle.
type Session struct {
	Username  string
	Handle    string
	CreatedAt time.Time
}

// Principal is the identity established for a request after its token and session check out.
// Downstream handlers only ever receive it by value.
type Principal struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

package domain

import (
	"github.com/allisson/gamestats/internal/errors"
)

// Statistics errors.
var (
	// ErrServerNotFound indicates no server is registered under the endpoint.
	ErrServerNotFound = errors.Wrap(errors.ErrNotFound, "server not found")

	// ErrPlayerNotFound indicates the player does not exist or is not visible to the caller.
	ErrPlayerNotFound = errors.Wrap(errors.ErrNotFound, "player not found")

	// ErrMatchNotFound indicates no match is stored under the id.
	ErrMatchNotFound = errors.Wrap(errors.ErrNotFound, "match not found")

	// ErrNotEnoughData indicates a match cannot be generated without a server and two players.
	ErrNotEnoughData = errors.New("not enough data to generate a match")
)

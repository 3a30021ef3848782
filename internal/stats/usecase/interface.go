// Package usecase implements the statistics queries, reports, the background match generator
// and data seeding.
package usecase

import (
	"context"

	"github.com/allisson/gamestats/internal/stats/domain"
)

// ServerRepository defines persistence operations for servers.
type ServerRepository interface {
	// Save creates or replaces servers.
	Save(ctx context.Context, servers ...*domain.Server) error

	// Get retrieves a server by endpoint. Returns ErrServerNotFound if not found.
	Get(ctx context.Context, endpoint string) (*domain.Server, error)

	// List returns every server.
	List(ctx context.Context) ([]*domain.Server, error)

	// Count returns the number of servers.
	Count(ctx context.Context) (int64, error)
}

// PlayerRepository defines persistence operations for players.
type PlayerRepository interface {
	// Save creates or replaces players.
	Save(ctx context.Context, players ...*domain.Player) error

	// Get retrieves a player by name. Returns ErrPlayerNotFound if not found.
	Get(ctx context.Context, name string) (*domain.Player, error)

	// List returns every player.
	List(ctx context.Context) ([]*domain.Player, error)

	// Count returns the number of players.
	Count(ctx context.Context) (int64, error)
}

// MatchRepository defines persistence operations for matches.
type MatchRepository interface {
	// Record stores a new match along with the server and players it updated, atomically.
	Record(ctx context.Context, match *domain.Match, server *domain.Server, players ...*domain.Player) error

	// GetMany returns the stored matches for ids, skipping unknown ids.
	GetMany(ctx context.Context, ids []string) ([]*domain.Match, error)

	// ListRecent returns up to limit matches, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.Match, error)
}

// ServerUseCase answers questions about individual servers.
type ServerUseCase interface {
	// List returns every server.
	List(ctx context.Context) ([]*domain.Server, error)

	// Get returns the server for endpoint. Returns ErrServerNotFound if not found.
	Get(ctx context.Context, endpoint string) (*domain.Server, error)

	// Matches returns the matches played on endpoint on date (YYYY-MM-DD), oldest first.
	Matches(ctx context.Context, endpoint, date string) ([]*domain.Match, error)

	// Stats returns the server summary. Returns ErrServerNotFound if not found.
	Stats(ctx context.Context, endpoint string) (*domain.ServerStats, error)
}

// PlayerUseCase answers questions about players.
type PlayerUseCase interface {
	// Stats returns the statistics of player name as seen by viewer. Players can only see
	// their own statistics: any other name returns ErrPlayerNotFound, exactly like a name
	// that does not exist.
	Stats(ctx context.Context, viewer, name string) (*domain.PlayerStats, error)
}

// ReportUseCase builds leaderboards across the whole data set.
type ReportUseCase interface {
	// RecentMatches returns up to count matches, newest first.
	RecentMatches(ctx context.Context, count int) ([]*domain.Match, error)

	// BestPlayers returns up to count players ordered by total score, highest first.
	BestPlayers(ctx context.Context, count int) ([]*domain.Player, error)

	// PopularServers returns up to count servers ordered by match count, highest first.
	PopularServers(ctx context.Context, count int) ([]*domain.Server, error)
}

// MatchUseCase simulates matches.
type MatchUseCase interface {
	// Generate plays one random match between two distinct players on a random server and
	// records the result. Returns ErrNotEnoughData without a server and two players.
	Generate(ctx context.Context) (*domain.Match, error)
}

// SeedUseCase loads initial data.
type SeedUseCase interface {
	// Seed stores the servers and players of data unless any already exist, and provisions
	// the users whose usernames are free.
	Seed(ctx context.Context, data *domain.SeedData) (*domain.SeedResult, error)
}

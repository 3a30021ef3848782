package usecase

import (
	"context"
	"slices"

	"github.com/allisson/gamestats/internal/stats/domain"
)

// playerUseCase implements PlayerUseCase.
type playerUseCase struct {
	playerRepo PlayerRepository
	matchRepo  MatchRepository
}

// Stats returns the viewer's own statistics with their matches, newest first.
func (p *playerUseCase) Stats(ctx context.Context, viewer, name string) (*domain.PlayerStats, error) {
	if viewer != name {
		return nil, domain.ErrPlayerNotFound
	}

	player, err := p.playerRepo.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	matches, err := p.matchRepo.GetMany(ctx, player.MatchIDs)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(matches, func(a, b *domain.Match) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return &domain.PlayerStats{Player: player, RecentMatches: matches}, nil
}

// NewPlayerUseCase creates a new PlayerUseCase with the provided dependencies.
func NewPlayerUseCase(playerRepo PlayerRepository, matchRepo MatchRepository) PlayerUseCase {
	return &playerUseCase{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

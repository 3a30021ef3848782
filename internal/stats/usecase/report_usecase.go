package usecase

import (
	"cmp"
	"context"
	"slices"

	"github.com/allisson/gamestats/internal/stats/domain"
)

// reportUseCase implements ReportUseCase.
type reportUseCase struct {
	serverRepo ServerRepository
	playerRepo PlayerRepository
	matchRepo  MatchRepository
}

// RecentMatches returns the newest matches.
func (r *reportUseCase) RecentMatches(ctx context.Context, count int) ([]*domain.Match, error) {
	return r.matchRepo.ListRecent(ctx, count)
}

// BestPlayers returns the players with the highest total score. Ties keep repository order.
func (r *reportUseCase) BestPlayers(ctx context.Context, count int) ([]*domain.Player, error) {
	players, err := r.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(players, func(a, b *domain.Player) int {
		return cmp.Compare(b.TotalScore, a.TotalScore)
	})
	return top(players, count), nil
}

// PopularServers returns the servers with the most matches. Ties keep repository order.
func (r *reportUseCase) PopularServers(ctx context.Context, count int) ([]*domain.Server, error) {
	servers, err := r.serverRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(servers, func(a, b *domain.Server) int {
		return cmp.Compare(b.MatchCount(), a.MatchCount())
	})
	return top(servers, count), nil
}

func top[T any](items []T, count int) []T {
	if count < 0 {
		count = 0
	}
	if len(items) > count {
		return items[:count]
	}
	return items
}

// NewReportUseCase creates a new ReportUseCase with the provided dependencies.
func NewReportUseCase(
	serverRepo ServerRepository,
	playerRepo PlayerRepository,
	matchRepo MatchRepository,
) ReportUseCase {
	return &reportUseCase{
		serverRepo: serverRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

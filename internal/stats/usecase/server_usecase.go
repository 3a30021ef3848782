package usecase

import (
	"context"
	"slices"

	"github.com/allisson/gamestats/internal/stats/domain"
)

// serverUseCase implements ServerUseCase.
type serverUseCase struct {
	serverRepo ServerRepository
	matchRepo  MatchRepository
}

// List returns every server.
func (s *serverUseCase) List(ctx context.Context) ([]*domain.Server, error) {
	return s.serverRepo.List(ctx)
}

// Get returns a single server.
func (s *serverUseCase) Get(ctx context.Context, endpoint string) (*domain.Server, error) {
	return s.serverRepo.Get(ctx, endpoint)
}

// Matches returns the server's matches played on date.
func (s *serverUseCase) Matches(ctx context.Context, endpoint, date string) ([]*domain.Match, error) {
	server, err := s.serverRepo.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.GetMany(ctx, server.MatchIDs)
	if err != nil {
		return nil, err
	}

	onDate := make([]*domain.Match, 0, len(matches))
	for _, match := range matches {
		if match.ServerEndpoint == endpoint && match.PlayedOn(date) {
			onDate = append(onDate, match)
		}
	}
	slices.SortStableFunc(onDate, func(a, b *domain.Match) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return onDate, nil
}

// Stats returns the server summary.
func (s *serverUseCase) Stats(ctx context.Context, endpoint string) (*domain.ServerStats, error) {
	server, err := s.serverRepo.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return server.Stats(), nil
}

// NewServerUseCase creates a new ServerUseCase with the provided dependencies.
func NewServerUseCase(serverRepo ServerRepository, matchRepo MatchRepository) ServerUseCase {
	return &serverUseCase{
		serverRepo: serverRepo,
		matchRepo:  matchRepo,
	}
}

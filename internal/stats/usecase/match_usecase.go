package usecase

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/gamestats/internal/stats/domain"
)

// maxScore bounds generated scores to [0, maxScore).
const maxScore = 21

// matchUseCase implements MatchUseCase.
type matchUseCase struct {
	serverRepo ServerRepository
	playerRepo PlayerRepository
	matchRepo  MatchRepository
	logger     *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// MatchOption customizes a MatchUseCase.
type MatchOption func(*matchUseCase)

// WithRand sets the random source used to pick servers, players and scores.
func WithRand(rng *rand.Rand) MatchOption {
	return func(m *matchUseCase) {
		m.rng = rng
	}
}

// WithMatchClock sets the clock used to timestamp matches.
func WithMatchClock(now func() time.Time) MatchOption {
	return func(m *matchUseCase) {
		m.now = now
	}
}

// Generate plays and records one random match.
func (m *matchUseCase) Generate(ctx context.Context) (*domain.Match, error) {
	servers, err := m.serverRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	players, err := m.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(servers) == 0 || len(players) < 2 {
		return nil, domain.ErrNotEnoughData
	}

	m.mu.Lock()
	server := servers[m.rng.IntN(len(servers))]
	first := m.rng.IntN(len(players))
	second := m.rng.IntN(len(players) - 1)
	if second >= first {
		second++
	}
	firstScore := m.rng.IntN(maxScore)
	secondScore := m.rng.IntN(maxScore)
	m.mu.Unlock()

	p1, p2 := players[first], players[second]
	// Ties go to the first player.
	firstWon := firstScore >= secondScore

	match := &domain.Match{
		ID:             uuid.NewString(),
		ServerEndpoint: server.Endpoint,
		Timestamp:      m.now().UTC(),
		PlayerScores: map[string]int{
			p1.Name: firstScore,
			p2.Name: secondScore,
		},
	}

	server.AddMatch(match.ID)
	p1.RecordResult(match.ID, firstWon)
	p2.RecordResult(match.ID, !firstWon)

	if err := m.matchRepo.Record(ctx, match, server, p1, p2); err != nil {
		return nil, err
	}

	winner := p1.Name
	if !firstWon {
		winner = p2.Name
	}
	if m.logger != nil {
		m.logger.Info("match generated",
			slog.String("match_id", match.ID),
			slog.String("server", server.Endpoint),
			slog.String("player1", p1.Name),
			slog.Int("score1", firstScore),
			slog.String("player2", p2.Name),
			slog.Int("score2", secondScore),
			slog.String("winner", winner),
		)
	}

	return match, nil
}

// NewMatchUseCase creates a new MatchUseCase with the provided dependencies.
func NewMatchUseCase(
	serverRepo ServerRepository,
	playerRepo PlayerRepository,
	matchRepo MatchRepository,
	logger *slog.Logger,
	opts ...MatchOption,
) MatchUseCase {
	m := &matchUseCase{
		serverRepo: serverRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		logger:     logger,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // simulation only
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

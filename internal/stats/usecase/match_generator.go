package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/allisson/gamestats/internal/stats/domain"
)

// MatchGenerator plays a random match on every tick until its context is cancelled.
type MatchGenerator struct {
	interval time.Duration
	useCase  MatchUseCase
	logger   *slog.Logger
}

// NewMatchGenerator creates a new MatchGenerator.
func NewMatchGenerator(interval time.Duration, useCase MatchUseCase, logger *slog.Logger) *MatchGenerator {
	return &MatchGenerator{
		interval: interval,
		useCase:  useCase,
		logger:   logger,
	}
}

// Start runs the generation loop. It returns ctx.Err() once ctx is done.
func (g *MatchGenerator) Start(ctx context.Context) error {
	if g.logger != nil {
		g.logger.Info("starting match generator", slog.Duration("interval", g.interval))
	}

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if g.logger != nil {
				g.logger.Info("stopping match generator")
			}
			return ctx.Err()
		case <-ticker.C:
			g.tick(ctx)
		}
	}
}

func (g *MatchGenerator) tick(ctx context.Context) {
	_, err := g.useCase.Generate(ctx)
	if err == nil || g.logger == nil {
		return
	}

	if errors.Is(err, domain.ErrNotEnoughData) {
		g.logger.Info("not enough data for match generation")
		return
	}
	g.logger.Error("failed to generate match", slog.Any("error", err))
}

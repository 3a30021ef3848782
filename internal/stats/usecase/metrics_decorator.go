package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/allisson/gamestats/internal/metrics"
	"github.com/allisson/gamestats/internal/stats/domain"
)

const metricsDomain = "stats"

func record(ctx context.Context, m metrics.BusinessMetrics, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.RecordOperation(ctx, metricsDomain, operation, status)
	m.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// serverUseCaseWithMetrics decorates ServerUseCase with metrics instrumentation.
type serverUseCaseWithMetrics struct {
	next    ServerUseCase
	metrics metrics.BusinessMetrics
}

// NewServerUseCaseWithMetrics wraps a ServerUseCase with metrics recording.
func NewServerUseCaseWithMetrics(useCase ServerUseCase, m metrics.BusinessMetrics) ServerUseCase {
	return &serverUseCaseWithMetrics{next: useCase, metrics: m}
}

func (s *serverUseCaseWithMetrics) List(ctx context.Context) ([]*domain.Server, error) {
	start := time.Now()
	servers, err := s.next.List(ctx)
	record(ctx, s.metrics, "server_list", start, err)
	return servers, err
}

func (s *serverUseCaseWithMetrics) Get(ctx context.Context, endpoint string) (*domain.Server, error) {
	start := time.Now()
	server, err := s.next.Get(ctx, endpoint)
	record(ctx, s.metrics, "server_get", start, err)
	return server, err
}

func (s *serverUseCaseWithMetrics) Matches(
	ctx context.Context,
	endpoint, date string,
) ([]*domain.Match, error) {
	start := time.Now()
	matches, err := s.next.Matches(ctx, endpoint, date)
	record(ctx, s.metrics, "server_matches", start, err)
	return matches, err
}

func (s *serverUseCaseWithMetrics) Stats(ctx context.Context, endpoint string) (*domain.ServerStats, error) {
	start := time.Now()
	stats, err := s.next.Stats(ctx, endpoint)
	record(ctx, s.metrics, "server_stats", start, err)
	return stats, err
}

// playerUseCaseWithMetrics decorates PlayerUseCase with metrics instrumentation.
type playerUseCaseWithMetrics struct {
	next    PlayerUseCase
	metrics metrics.BusinessMetrics
}

// NewPlayerUseCaseWithMetrics wraps a PlayerUseCase with metrics recording.
func NewPlayerUseCaseWithMetrics(useCase PlayerUseCase, m metrics.BusinessMetrics) PlayerUseCase {
	return &playerUseCaseWithMetrics{next: useCase, metrics: m}
}

func (p *playerUseCaseWithMetrics) Stats(
	ctx context.Context,
	viewer, name string,
) (*domain.PlayerStats, error) {
	start := time.Now()
	stats, err := p.next.Stats(ctx, viewer, name)
	record(ctx, p.metrics, "player_stats", start, err)
	return stats, err
}

// reportUseCaseWithMetrics decorates ReportUseCase with metrics instrumentation.
type reportUseCaseWithMetrics struct {
	next    ReportUseCase
	metrics metrics.BusinessMetrics
}

// NewReportUseCaseWithMetrics wraps a ReportUseCase with metrics recording.
func NewReportUseCaseWithMetrics(useCase ReportUseCase, m metrics.BusinessMetrics) ReportUseCase {
	return &reportUseCaseWithMetrics{next: useCase, metrics: m}
}

func (r *reportUseCaseWithMetrics) RecentMatches(ctx context.Context, count int) ([]*domain.Match, error) {
	start := time.Now()
	matches, err := r.next.RecentMatches(ctx, count)
	record(ctx, r.metrics, "report_recent_matches", start, err)
	return matches, err
}

func (r *reportUseCaseWithMetrics) BestPlayers(ctx context.Context, count int) ([]*domain.Player, error) {
	start := time.Now()
	players, err := r.next.BestPlayers(ctx, count)
	record(ctx, r.metrics, "report_best_players", start, err)
	return players, err
}

func (r *reportUseCaseWithMetrics) PopularServers(ctx context.Context, count int) ([]*domain.Server, error) {
	start := time.Now()
	servers, err := r.next.PopularServers(ctx, count)
	record(ctx, r.metrics, "report_popular_servers", start, err)
	return servers, err
}

// matchUseCaseWithMetrics decorates MatchUseCase with metrics instrumentation.
type matchUseCaseWithMetrics struct {
	next    MatchUseCase
	metrics metrics.BusinessMetrics
}

// NewMatchUseCaseWithMetrics wraps a MatchUseCase with metrics recording. Runs skipped for
// lack of data are recorded with status "skipped".
func NewMatchUseCaseWithMetrics(useCase MatchUseCase, m metrics.BusinessMetrics) MatchUseCase {
	return &matchUseCaseWithMetrics{next: useCase, metrics: m}
}

func (g *matchUseCaseWithMetrics) Generate(ctx context.Context) (*domain.Match, error) {
	start := time.Now()
	match, err := g.next.Generate(ctx)

	status := "success"
	switch {
	case errors.Is(err, domain.ErrNotEnoughData):
		status = "skipped"
	case err != nil:
		status = "error"
	}
	g.metrics.RecordOperation(ctx, metricsDomain, "match_generate", status)
	g.metrics.RecordDuration(ctx, metricsDomain, "match_generate", time.Since(start), status)

	return match, err
}

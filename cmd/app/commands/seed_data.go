package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	statsDomain "github.com/allisson/gamestats/internal/stats/domain"
	statsUseCase "github.com/allisson/gamestats/internal/stats/usecase"
)

// seedSummary is the JSON output of seed-data.
type seedSummary struct {
	StatsSkipped bool `json:"statsSkipped"`
	Servers      int  `json:"servers"`
	Players      int  `json:"players"`
	Users        int  `json:"users"`
}

// RunSeedData loads the data initialization file at path into the statistics store and
// provisions its users. Servers and players are skipped when the store is not empty.
func RunSeedData(
	ctx context.Context,
	seedUseCase statsUseCase.SeedUseCase,
	logger *slog.Logger,
	path string,
	format string,
	io IOTuple,
) error {
	result, err := seed(ctx, seedUseCase, logger, path)
	if err != nil {
		return err
	}

	summary := seedSummary{
		StatsSkipped: result.StatsSkipped,
		Servers:      result.Servers,
		Players:      result.Players,
		Users:        result.Users,
	}
	if format == formatJSON {
		return writeJSON(io.Writer, summary)
	}

	if summary.StatsSkipped {
		_, _ = fmt.Fprintln(io.Writer, "Statistics already present, servers and players skipped")
	}
	_, _ = fmt.Fprintf(io.Writer, "Servers: %d\nPlayers: %d\nUsers: %d\n",
		summary.Servers, summary.Players, summary.Users)
	return nil
}

// seed is shared by the seed-data command and startup seeding in the server command.
func seed(
	ctx context.Context,
	seedUseCase statsUseCase.SeedUseCase,
	logger *slog.Logger,
	path string,
) (*statsDomain.SeedResult, error) {
	if path == "" {
		return nil, errors.New("no data file provided")
	}

	logger.Info("loading data file", slog.String("path", path))

	data, err := statsUseCase.LoadSeedFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load data file: %w", err)
	}

	result, err := seedUseCase.Seed(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("failed to seed data: %w", err)
	}
	return result, nil
}

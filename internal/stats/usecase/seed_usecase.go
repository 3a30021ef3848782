package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	authDomain "github.com/allisson/gamestats/internal/auth/domain"
	authUseCase "github.com/allisson/gamestats/internal/auth/usecase"
	apperrors "github.com/allisson/gamestats/internal/errors"
	"github.com/allisson/gamestats/internal/stats/domain"
)

// seedUseCase implements SeedUseCase.
type seedUseCase struct {
	serverRepo  ServerRepository
	playerRepo  PlayerRepository
	userUseCase authUseCase.UserUseCase
	logger      *slog.Logger
}

// Seed writes the statistics of data into an empty store and provisions missing users.
func (s *seedUseCase) Seed(ctx context.Context, data *domain.SeedData) (*domain.SeedResult, error) {
	result := &domain.SeedResult{}

	servers, err := s.serverRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	players, err := s.playerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	if servers > 0 || players > 0 {
		result.StatsSkipped = true
		if s.logger != nil {
			s.logger.Info("statistics already present, skipping servers and players",
				slog.Int64("servers", servers),
				slog.Int64("players", players),
			)
		}
	} else {
		if len(data.Servers) > 0 {
			if err := s.serverRepo.Save(ctx, data.Servers...); err != nil {
				return nil, err
			}
		}
		if len(data.Players) > 0 {
			if err := s.playerRepo.Save(ctx, data.Players...); err != nil {
				return nil, err
			}
		}
		result.Servers = len(data.Servers)
		result.Players = len(data.Players)
	}

	if len(data.Users) > 0 {
		inputs := make([]*authDomain.CreateUserInput, 0, len(data.Users))
		for _, user := range data.Users {
			inputs = append(inputs, &authDomain.CreateUserInput{
				Username: user.Username,
				Password: user.Password,
				Role:     user.Role,
			})
		}
		created, err := s.userUseCase.CreateMissing(ctx, inputs)
		if err != nil {
			return nil, err
		}
		result.Users = created
	}

	if s.logger != nil {
		s.logger.Info("data initialization completed",
			slog.Int("servers", result.Servers),
			slog.Int("players", result.Players),
			slog.Int("users", result.Users),
		)
	}
	return result, nil
}

// LoadSeedFile reads and decodes a data initialization file.
func LoadSeedFile(path string) (*domain.SeedData, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read seed file")
	}

	var data domain.SeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "failed to decode seed file: "+err.Error())
	}

	for _, server := range data.Servers {
		if server == nil || server.Endpoint == "" {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "seed server without endpoint")
		}
	}
	for _, player := range data.Players {
		if player == nil || player.Name == "" {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "seed player without name")
		}
	}
	return &data, nil
}

// NewSeedUseCase creates a new SeedUseCase with the provided dependencies.
func NewSeedUseCase(
	serverRepo ServerRepository,
	playerRepo PlayerRepository,
	userUseCase authUseCase.UserUseCase,
	logger *slog.Logger,
) SeedUseCase {
	return &seedUseCase{
		serverRepo:  serverRepo,
		playerRepo:  playerRepo,
		userUseCase: userUseCase,
		logger:      logger,
	}
}

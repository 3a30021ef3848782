package app

import (
	"fmt"
	"sync"

	statsHTTP "github.com/allisson/gamestats/internal/stats/http"
	statsRepository "github.com/allisson/gamestats/internal/stats/repository"
	statsUseCase "github.com/allisson/gamestats/internal/stats/usecase"
)

// statsComponents holds the lazily built statistics graph. The three repositories share
// the Redis client returned by RedisClient.
type statsComponents struct {
	serverRepository statsUseCase.ServerRepository
	playerRepository statsUseCase.PlayerRepository
	matchRepository  statsUseCase.MatchRepository
	serverUseCase    statsUseCase.ServerUseCase
	playerUseCase    statsUseCase.PlayerUseCase
	reportUseCase    statsUseCase.ReportUseCase
	matchUseCase     statsUseCase.MatchUseCase
	seedUseCase      statsUseCase.SeedUseCase
	serverHandler    *statsHTTP.ServerHandler
	playerHandler    *statsHTTP.PlayerHandler
	reportHandler    *statsHTTP.ReportHandler

	statsRepositoriesInit sync.Once
	serverUseCaseInit     sync.Once
	playerUseCaseInit     sync.Once
	reportUseCaseInit     sync.Once
	matchUseCaseInit      sync.Once
	seedUseCaseInit       sync.Once
	statsHandlersInit     sync.Once
}

// statsRepositories builds the server, player and match repositories together.
func (c *Container) statsRepositories() error {
	return c.once(&c.statsRepositoriesInit, "statsRepositories", func() error {
		client, err := c.RedisClient()
		if err != nil {
			return fmt.Errorf("failed to get redis client for statistics repositories: %w", err)
		}
		c.serverRepository = statsRepository.NewRedisServerRepository(client)
		c.playerRepository = statsRepository.NewRedisPlayerRepository(client)
		c.matchRepository = statsRepository.NewRedisMatchRepository(client)
		return nil
	})
}

// ServerRepository returns the Redis backed server repository.
func (c *Container) ServerRepository() (statsUseCase.ServerRepository, error) {
	if err := c.statsRepositories(); err != nil {
		return nil, err
	}
	return c.serverRepository, nil
}

// PlayerRepository returns the Redis backed player repository.
func (c *Container) PlayerRepository() (statsUseCase.PlayerRepository, error) {
	if err := c.statsRepositories(); err != nil {
		return nil, err
	}
	return c.playerRepository, nil
}

// MatchRepository returns the Redis backed match repository.
func (c *Container) MatchRepository() (statsUseCase.MatchRepository, error) {
	if err := c.statsRepositories(); err != nil {
		return nil, err
	}
	return c.matchRepository, nil
}

// ServerUseCase returns the server queries use case.
func (c *Container) ServerUseCase() (statsUseCase.ServerUseCase, error) {
	err := c.once(&c.serverUseCaseInit, "serverUseCase", func() error {
		if err := c.statsRepositories(); err != nil {
			return fmt.Errorf("failed to get repositories for server use case: %w", err)
		}
		useCase := statsUseCase.NewServerUseCase(c.serverRepository, c.matchRepository)
		if c.config.MetricsEnabled {
			businessMetrics, err := c.BusinessMetrics()
			if err != nil {
				return fmt.Errorf("failed to get business metrics for server use case: %w", err)
			}
			useCase = statsUseCase.NewServerUseCaseWithMetrics(useCase, businessMetrics)
		}
		c.serverUseCase = useCase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.serverUseCase, nil
}

// PlayerUseCase returns the player statistics use case.
func (c *Container) PlayerUseCase() (statsUseCase.PlayerUseCase, error) {
	err := c.once(&c.playerUseCaseInit, "playerUseCase", func() error {
		if err := c.statsRepositories(); err != nil {
			return fmt.Errorf("failed to get repositories for player use case: %w", err)
		}
		useCase := statsUseCase.NewPlayerUseCase(c.playerRepository, c.matchRepository)
		if c.config.MetricsEnabled {
			businessMetrics, err := c.BusinessMetrics()
			if err != nil {
				return fmt.Errorf("failed to get business metrics for player use case: %w", err)
			}
			useCase = statsUseCase.NewPlayerUseCaseWithMetrics(useCase, businessMetrics)
		}
		c.playerUseCase = useCase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.playerUseCase, nil
}

// ReportUseCase returns the reports use case.
func (c *Container) ReportUseCase() (statsUseCase.ReportUseCase, error) {
	err := c.once(&c.reportUseCaseInit, "reportUseCase", func() error {
		if err := c.statsRepositories(); err != nil {
			return fmt.Errorf("failed to get repositories for report use case: %w", err)
		}
		useCase := statsUseCase.NewReportUseCase(c.serverRepository, c.playerRepository, c.matchRepository)
		if c.config.MetricsEnabled {
			businessMetrics, err := c.BusinessMetrics()
			if err != nil {
				return fmt.Errorf("failed to get business metrics for report use case: %w", err)
			}
			useCase = statsUseCase.NewReportUseCaseWithMetrics(useCase, businessMetrics)
		}
		c.reportUseCase = useCase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.reportUseCase, nil
}

// MatchUseCase returns the random match generation use case.
func (c *Container) MatchUseCase() (statsUseCase.MatchUseCase, error) {
	err := c.once(&c.matchUseCaseInit, "matchUseCase", func() error {
		if err := c.statsRepositories(); err != nil {
			return fmt.Errorf("failed to get repositories for match use case: %w", err)
		}
		useCase := statsUseCase.NewMatchUseCase(
			c.serverRepository,
			c.playerRepository,
			c.matchRepository,
			c.Logger(),
		)
		if c.config.MetricsEnabled {
			businessMetrics, err := c.BusinessMetrics()
			if err != nil {
				return fmt.Errorf("failed to get business metrics for match use case: %w", err)
			}
			useCase = statsUseCase.NewMatchUseCaseWithMetrics(useCase, businessMetrics)
		}
		c.matchUseCase = useCase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.matchUseCase, nil
}

// MatchGenerator returns a generator ticking every MATCH_GENERATOR_INTERVAL_SECONDS.
func (c *Container) MatchGenerator() (*statsUseCase.MatchGenerator, error) {
	matchUseCase, err := c.MatchUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get match use case for match generator: %w", err)
	}
	return statsUseCase.NewMatchGenerator(c.config.MatchGeneratorInterval, matchUseCase, c.Logger()), nil
}

// SeedUseCase returns the data initializer. It needs both Redis and the credential store.
func (c *Container) SeedUseCase() (statsUseCase.SeedUseCase, error) {
	err := c.once(&c.seedUseCaseInit, "seedUseCase", func() error {
		if err := c.statsRepositories(); err != nil {
			return fmt.Errorf("failed to get repositories for seed use case: %w", err)
		}
		userUseCase, err := c.UserUseCase()
		if err != nil {
			return fmt.Errorf("failed to get user use case for seed use case: %w", err)
		}
		c.seedUseCase = statsUseCase.NewSeedUseCase(
			c.serverRepository,
			c.playerRepository,
			userUseCase,
			c.Logger(),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.seedUseCase, nil
}

// statsHandlers builds the server, player and report HTTP handlers together.
func (c *Container) statsHandlers() error {
	return c.once(&c.statsHandlersInit, "statsHandlers", func() error {
		logger := c.Logger()

		serverUseCase, err := c.ServerUseCase()
		if err != nil {
			return fmt.Errorf("failed to get server use case for handlers: %w", err)
		}
		playerUseCase, err := c.PlayerUseCase()
		if err != nil {
			return fmt.Errorf("failed to get player use case for handlers: %w", err)
		}
		reportUseCase, err := c.ReportUseCase()
		if err != nil {
			return fmt.Errorf("failed to get report use case for handlers: %w", err)
		}

		c.serverHandler = statsHTTP.NewServerHandler(serverUseCase, logger)
		c.playerHandler = statsHTTP.NewPlayerHandler(playerUseCase, logger)
		c.reportHandler = statsHTTP.NewReportHandler(reportUseCase, logger)
		return nil
	})
}

// ServerHandler returns the /servers handler.
func (c *Container) ServerHandler() (*statsHTTP.ServerHandler, error) {
	if err := c.statsHandlers(); err != nil {
		return nil, err
	}
	return c.serverHandler, nil
}

// PlayerHandler returns the /players handler.
func (c *Container) PlayerHandler() (*statsHTTP.PlayerHandler, error) {
	if err := c.statsHandlers(); err != nil {
		return nil, err
	}
	return c.playerHandler, nil
}

// ReportHandler returns the /reports handler.
func (c *Container) ReportHandler() (*statsHTTP.ReportHandler, error) {
	if err := c.statsHandlers(); err != nil {
		return nil, err
	}
	return c.reportHandler, nil
}

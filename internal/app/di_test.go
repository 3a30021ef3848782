package app

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authRepository "github.com/allisson/gamestats/internal/auth/repository"
	"github.com/allisson/gamestats/internal/config"
	"github.com/allisson/gamestats/internal/metrics"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	mr := miniredis.RunT(t)
	return &config.Config{
		LogLevel:               "info",
		ServerHost:             "localhost",
		ServerPort:             8080,
		DBDriver:               "invalid_driver",
		AuthTokenSecret:        "di-test-secret",
		AuthTokenExpiration:    time.Hour,
		SessionStore:           config.SessionStoreRedis,
		SessionLookupTimeout:   time.Second,
		RedisAddr:              mr.Addr(),
		PasswordVerifyWorkers:  2,
		MetricsNamespace:       "gamestats_di",
		MetricsPort:            8081,
		MatchGeneratorInterval: time.Second,
	}
}

func TestNewContainer(t *testing.T) {
	cfg := newTestConfig(t)
	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainerLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "invalid"} {
		t.Run(level, func(t *testing.T) {
			container := NewContainer(&config.Config{LogLevel: level})

			assert.Nil(t, container.logger)
			logger := container.Logger()
			require.NotNil(t, logger)
			assert.Same(t, logger, container.Logger())
		})
	}
}

func TestContainerDB_InitializationErrorIsReplayed(t *testing.T) {
	container := NewContainer(&config.Config{DBDriver: "invalid_driver"})

	_, err := container.DB()
	require.Error(t, err)

	_, err2 := container.DB()
	assert.Equal(t, err, err2)

	_, err = container.TxManager()
	assert.Error(t, err)
}

func TestContainerRedisClient(t *testing.T) {
	container := NewContainer(newTestConfig(t))

	client, err := container.RedisClient()
	require.NoError(t, err)
	assert.NoError(t, client.Ping(context.Background()).Err())

	again, err := container.RedisClient()
	require.NoError(t, err)
	assert.Same(t, client, again)
}

func TestContainerRedisClient_Unreachable(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.RedisAddr = "127.0.0.1:1"
	container := NewContainer(cfg)

	_, err := container.RedisClient()
	assert.Error(t, err)
}

func TestContainerMetrics(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		container := NewContainer(newTestConfig(t))

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.Nil(t, provider)

		businessMetrics, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.IsType(t, metrics.NoOpBusinessMetrics{}, businessMetrics)
	})

	t.Run("Enabled", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.MetricsEnabled = true
		container := NewContainer(cfg)

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		require.NotNil(t, provider)

		businessMetrics, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.NotNil(t, businessMetrics)

		metricsServer, err := container.MetricsServer()
		require.NoError(t, err)
		assert.NotNil(t, metricsServer)

		assert.NoError(t, container.Shutdown(context.Background()))
	})
}

func TestContainerTokenService_EmptySecret(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.AuthTokenSecret = ""
	container := NewContainer(cfg)

	_, err := container.TokenService()
	assert.Error(t, err)

	_, err = container.AuthenticatorUseCase()
	assert.Error(t, err)
}

func TestContainerSessionRepository(t *testing.T) {
	t.Run("Redis", func(t *testing.T) {
		container := NewContainer(newTestConfig(t))

		repo, err := container.SessionRepository()
		require.NoError(t, err)
		assert.IsType(t, &authRepository.RedisSessionRepository{}, repo)
	})

	t.Run("Memory", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.SessionStore = config.SessionStoreMemory
		cfg.RedisAddr = "127.0.0.1:1"
		container := NewContainer(cfg)

		repo, err := container.SessionRepository()
		require.NoError(t, err)
		assert.IsType(t, &authRepository.MemorySessionRepository{}, repo)
	})

	t.Run("Unsupported", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.SessionStore = "etcd"
		container := NewContainer(cfg)

		_, err := container.SessionRepository()
		assert.Error(t, err)
	})
}

func TestContainerAuthenticatorUseCase(t *testing.T) {
	container := NewContainer(newTestConfig(t))

	authenticator, err := container.AuthenticatorUseCase()
	require.NoError(t, err)
	assert.NotNil(t, authenticator)
}

func TestContainerStatsComponents(t *testing.T) {
	container := NewContainer(newTestConfig(t))

	serverHandler, err := container.ServerHandler()
	require.NoError(t, err)
	assert.NotNil(t, serverHandler)

	playerHandler, err := container.PlayerHandler()
	require.NoError(t, err)
	assert.NotNil(t, playerHandler)

	reportHandler, err := container.ReportHandler()
	require.NoError(t, err)
	assert.NotNil(t, reportHandler)

	generator, err := container.MatchGenerator()
	require.NoError(t, err)
	assert.NotNil(t, generator)

	matchRepository, err := container.MatchRepository()
	require.NoError(t, err)
	assert.NotNil(t, matchRepository)
}

func TestContainerComponentsNeedingDatabase(t *testing.T) {
	container := NewContainer(newTestConfig(t))

	_, err := container.UserRepository()
	assert.Error(t, err)

	_, err = container.LoginHandler()
	assert.Error(t, err)

	_, err = container.SeedUseCase()
	assert.Error(t, err)

	_, err = container.HTTPServer(context.Background())
	assert.Error(t, err)
}

func TestContainerShutdown(t *testing.T) {
	t.Run("NothingInitialized", func(t *testing.T) {
		container := NewContainer(&config.Config{LogLevel: "info"})
		assert.NoError(t, container.Shutdown(context.Background()))
	})

	t.Run("ClosesRedis", func(t *testing.T) {
		container := NewContainer(newTestConfig(t))
		client, err := container.RedisClient()
		require.NoError(t, err)

		require.NoError(t, container.Shutdown(context.Background()))
		assert.Error(t, client.Ping(context.Background()).Err())
	})
}

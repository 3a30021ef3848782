package app

import (
	"fmt"
	"sync"

	authHTTP "github.com/allisson/gamestats/internal/auth/http"
	authRepository "github.com/allisson/gamestats/internal/auth/repository"
	authService "github.com/allisson/gamestats/internal/auth/service"
	authUseCase "github.com/allisson/gamestats/internal/auth/usecase"
	"github.com/allisson/gamestats/internal/config"
	"github.com/allisson/gamestats/internal/database"
)

// authComponents holds the lazily built authentication graph.
type authComponents struct {
	passwordService      authService.PasswordService
	tokenService         authService.TokenService
	userRepository       authUseCase.UserRepository
	sessionRepository    authUseCase.SessionRepository
	loginUseCase         authUseCase.LoginUseCase
	authenticatorUseCase authUseCase.AuthenticatorUseCase
	userUseCase          authUseCase.UserUseCase
	loginHandler         *authHTTP.LoginHandler

	passwordServiceInit      sync.Once
	tokenServiceInit         sync.Once
	userRepositoryInit       sync.Once
	sessionRepositoryInit    sync.Once
	loginUseCaseInit         sync.Once
	authenticatorUseCaseInit sync.Once
	userUseCaseInit          sync.Once
	loginHandlerInit         sync.Once
}

// PasswordService returns the password hasher, bounded by PASSWORD_VERIFY_WORKERS.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewBoundedPasswordService(
			authService.NewPasswordService(),
			c.config.PasswordVerifyWorkers,
		)
	})
	return c.passwordService
}

// TokenService returns the access token codec.
func (c *Container) TokenService() (authService.TokenService, error) {
	err := c.once(&c.tokenServiceInit, "tokenService", func() error {
		var err error
		c.tokenService, err = authService.NewTokenService(c.config.AuthTokenSecret, c.config.AuthTokenExpiration)
		if err != nil {
			return fmt.Errorf("failed to create token service: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.tokenService, nil
}

// UserRepository returns the credential store repository based on database driver.
func (c *Container) UserRepository() (authUseCase.UserRepository, error) {
	err := c.once(&c.userRepositoryInit, "userRepository", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for user repository: %w", err)
		}

		switch c.config.DBDriver {
		case database.DriverMySQL:
			c.userRepository = authRepository.NewMySQLUserRepository(db)
		case database.DriverPostgres:
			c.userRepository = authRepository.NewPostgreSQLUserRepository(db)
		default:
			return fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.userRepository, nil
}

// SessionRepository returns the session store selected by SESSION_STORE. Sessions live
// as long as the tokens bound to them.
func (c *Container) SessionRepository() (authUseCase.SessionRepository, error) {
	err := c.once(&c.sessionRepositoryInit, "sessionRepository", func() error {
		switch c.config.SessionStore {
		case config.SessionStoreMemory:
			c.sessionRepository = authRepository.NewMemorySessionRepository(c.config.AuthTokenExpiration)
		case config.SessionStoreRedis:
			client, err := c.RedisClient()
			if err != nil {
				return fmt.Errorf("failed to get redis client for session repository: %w", err)
			}
			c.sessionRepository = authRepository.NewRedisSessionRepository(client, c.config.AuthTokenExpiration)
		default:
			return fmt.Errorf("unsupported session store: %s", c.config.SessionStore)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.sessionRepository, nil
}

// LoginUseCase returns the token issuer.
func (c *Container) LoginUseCase() (authUseCase.LoginUseCase, error) {
	err := c.once(&c.loginUseCaseInit, "loginUseCase", func() error {
		var err error
		c.loginUseCase, err = c.initLoginUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.loginUseCase, nil
}

// AuthenticatorUseCase returns the per-request authenticator.
func (c *Container) AuthenticatorUseCase() (authUseCase.AuthenticatorUseCase, error) {
	err := c.once(&c.authenticatorUseCaseInit, "authenticatorUseCase", func() error {
		var err error
		c.authenticatorUseCase, err = c.initAuthenticatorUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.authenticatorUseCase, nil
}

// UserUseCase returns the user provisioning use case.
func (c *Container) UserUseCase() (authUseCase.UserUseCase, error) {
	err := c.once(&c.userUseCaseInit, "userUseCase", func() error {
		var err error
		c.userUseCase, err = c.initUserUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.userUseCase, nil
}

// LoginHandler returns the HTTP handler for /auth/login and /me.
func (c *Container) LoginHandler() (*authHTTP.LoginHandler, error) {
	err := c.once(&c.loginHandlerInit, "loginHandler", func() error {
		loginUseCase, err := c.LoginUseCase()
		if err != nil {
			return fmt.Errorf("failed to get login use case for login handler: %w", err)
		}
		c.loginHandler = authHTTP.NewLoginHandler(loginUseCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.loginHandler, nil
}

// initLoginUseCase creates the login use case with all its dependencies.
func (c *Container) initLoginUseCase() (authUseCase.LoginUseCase, error) {
	userRepository, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for login use case: %w", err)
	}
	sessionRepository, err := c.SessionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get session repository for login use case: %w", err)
	}
	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for login use case: %w", err)
	}

	baseUseCase := authUseCase.NewLoginUseCase(
		userRepository,
		sessionRepository,
		c.PasswordService(),
		tokenService,
		authService.NewSessionHandleService(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for login use case: %w", err)
		}
		return authUseCase.NewLoginUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initAuthenticatorUseCase creates the authenticator with all its dependencies.
func (c *Container) initAuthenticatorUseCase() (authUseCase.AuthenticatorUseCase, error) {
	sessionRepository, err := c.SessionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get session repository for authenticator: %w", err)
	}
	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for authenticator: %w", err)
	}

	baseUseCase := authUseCase.NewAuthenticatorUseCase(
		tokenService,
		sessionRepository,
		c.config.SessionLookupTimeout,
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for authenticator: %w", err)
		}
		return authUseCase.NewAuthenticatorUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase() (authUseCase.UserUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}
	userRepository, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	baseUseCase := authUseCase.NewUserUseCase(txManager, userRepository, c.PasswordService())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
		}
		return authUseCase.NewUserUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

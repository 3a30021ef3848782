package config

import (
	"fmt"
	"time"

	validation "github.com/jellydator/validation"
)

// Validate rejects settings the server cannot start with. The CLI data commands only need
// the credential store, so only RunServer calls it.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.DBDriver, validation.Required, validation.In("postgres", "mysql")),
		validation.Field(&c.DBConnectionString, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.AuthTokenSecret, validation.Required),
		validation.Field(&c.AuthTokenExpiration, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.SessionStore, validation.Required, validation.In(SessionStoreRedis, SessionStoreMemory)),
		validation.Field(&c.SessionLookupTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.RedisAddr, validation.Required),
		validation.Field(&c.PasswordVerifyWorkers, validation.Required, validation.Min(1)),
		validation.Field(&c.RateLimitLoginRequestsPerSec,
			validation.When(c.RateLimitLoginEnabled, validation.Required, validation.Min(0.0))),
		validation.Field(&c.RateLimitLoginBurst,
			validation.When(c.RateLimitLoginEnabled, validation.Required, validation.Min(1))),
		validation.Field(&c.MetricsPort,
			validation.When(c.MetricsEnabled, validation.Required, validation.Min(1), validation.Max(65535))),
		validation.Field(&c.MatchGeneratorInterval,
			validation.When(c.MatchGeneratorEnabled, validation.Required, validation.Min(time.Second))),
	)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.MetricsEnabled && c.MetricsPort == c.ServerPort {
		return fmt.Errorf("invalid configuration: METRICS_PORT must differ from SERVER_PORT (%d)", c.ServerPort)
	}
	return nil
}

// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/gamestats/internal/auth/domain"
	authHTTP "github.com/allisson/gamestats/internal/auth/http"
	authUseCase "github.com/allisson/gamestats/internal/auth/usecase"
	"github.com/allisson/gamestats/internal/config"
	"github.com/allisson/gamestats/internal/metrics"
	statsHTTP "github.com/allisson/gamestats/internal/stats/http"
)

// readinessTimeout bounds every component check run by /ready.
const readinessTimeout = 2 * time.Second

// ReadinessCheck reports whether a backing component can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// Server represents the HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	checks map[string]ReadinessCheck
}

// Handlers groups the request handlers mounted by SetupRouter.
type Handlers struct {
	Login   *authHTTP.LoginHandler
	Server  *statsHTTP.ServerHandler
	Player  *statsHTTP.PlayerHandler
	Report  *statsHTTP.ReportHandler
	Metrics *metrics.Provider
}

// NewServer creates a new HTTP server. checks are keyed by component name and reported by
// the readiness endpoint.
func NewServer(
	checks map[string]ReadinessCheck,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		logger: logger,
		checks: checks,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine. Authentication and authorization run for every
// request, so the access rule of a route lives in the policy table and not in the
// route registration.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	authenticator authUseCase.AuthenticatorUseCase,
	handlers Handlers,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := corsMiddleware(cfg, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if handlers.Metrics != nil {
		router.Use(metrics.HTTPMetricsMiddleware(handlers.Metrics.MeterProvider(), cfg.MetricsNamespace))
	}

	router.Use(authHTTP.AuthenticationMiddleware(authenticator, s.logger))
	router.Use(authHTTP.AuthorizationMiddleware(authDomain.DefaultPolicy(), s.logger))

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)
	router.GET("/v3/api-docs", apiDocsHandler)
	router.GET("/docs", docsRedirectHandler)

	loginChain := []gin.HandlerFunc{}
	if cfg.RateLimitLoginEnabled {
		loginChain = append(loginChain, authHTTP.LoginRateLimitMiddleware(
			ctx,
			cfg.RateLimitLoginRequestsPerSec,
			cfg.RateLimitLoginBurst,
			s.logger,
		))
	}
	loginChain = append(loginChain, handlers.Login.LoginHandler)
	router.POST("/auth/login", loginChain...)
	router.GET("/me", handlers.Login.MeHandler)

	servers := router.Group("/servers")
	{
		servers.GET("/info", handlers.Server.ListHandler)
		servers.GET("/:endpoint/info", handlers.Server.GetHandler)
		servers.GET("/:endpoint/matches/:date", handlers.Server.MatchesHandler)
		servers.GET("/:endpoint/stats", handlers.Server.StatsHandler)
	}

	router.GET("/players/:name/stats", handlers.Player.StatsHandler)

	reports := router.Group("/reports")
	{
		reports.GET("/recent-matches", handlers.Report.RecentMatchesHandler)
		reports.GET("/best-players", handlers.Report.BestPlayersHandler)
		reports.GET("/popular-servers", handlers.Report.PopularServersHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports liveness without touching any dependency.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler runs every registered check and reports each component as "ok" or
// "error". Any failure makes the whole service not_ready.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	ready := true
	components := make(map[string]string, len(names))
	for _, name := range names {
		check := s.checks[name]
		if check == nil {
			components[name] = "error"
			ready = false
			continue
		}
		if err := check(ctx); err != nil {
			s.logger.Warn("readiness check failed",
				slog.String("component", name),
				slog.Any("error", err))
			components[name] = "error"
			ready = false
			continue
		}
		components[name] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}

// Start starts the HTTP server. SetupRouter must be called first.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

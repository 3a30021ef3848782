package http

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/allisson/gamestats/internal/config"
)

// corsPreflightMaxAge is how long browsers may cache a preflight answer.
const corsPreflightMaxAge = 12 * time.Hour

// corsMiddleware returns the CORS handler for browser dashboards, or nil when CORS is
// disabled or CORS_ALLOW_ORIGINS names no origin. The single origin "*" admits any
// origin. Tokens travel in the Authorization header, never in cookies, so credentialed
// requests stay disallowed.
func corsMiddleware(cfg *config.Config, logger *slog.Logger) gin.HandlerFunc {
	if !cfg.CORSEnabled {
		return nil
	}

	origins := parseOrigins(cfg.CORSAllowOrigins)
	if len(origins) == 0 {
		logger.Warn("CORS enabled but CORS_ALLOW_ORIGINS is empty, CORS will not be applied")
		return nil
	}

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        corsPreflightMaxAge,
	}
	if slices.Contains(origins, "*") {
		corsConfig.AllowAllOrigins = true
		logger.Warn("CORS enabled for every origin")
	} else {
		corsConfig.AllowOrigins = origins
		logger.Info("CORS enabled", slog.Any("origins", origins))
	}

	return cors.New(corsConfig)
}

// parseOrigins splits a comma-separated origin list, dropping blanks and duplicates.
func parseOrigins(originsStr string) []string {
	var origins []string
	for part := range strings.SplitSeq(originsStr, ",") {
		origin := strings.TrimSuffix(strings.TrimSpace(part), "/")
		if origin != "" && !slices.Contains(origins, origin) {
			origins = append(origins, origin)
		}
	}
	return origins
}

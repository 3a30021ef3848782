package http

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/allisson/gamestats/internal/auth/domain"
	authUseCase "github.com/allisson/gamestats/internal/auth/usecase"
	"github.com/allisson/gamestats/internal/httputil"
)

const bearerPrefix = "bearer "

// bearerToken extracts the token from an "Authorization: Bearer <token>" header. The scheme
// is matched case-insensitively. Returns false when the header is absent or malformed.
func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

// AuthenticationMiddleware establishes the request principal from a bearer token.
//
// It never rejects a request for lacking a credential. Requests without a usable
// Authorization header, and requests whose token fails verification (bad signature,
// wrong algorithm, expired), continue as anonymous and are left to AuthorizationMiddleware.
//
// A token that verifies but whose session handle is no longer the stored one is
// different: the session was revoked by a newer login, so the request is rejected
// with 401 session_invalid and goes no further.
//
// Usage:
//
//	router.Use(AuthenticationMiddleware(authenticator, logger))
//	router.Use(AuthorizationMiddleware(authDomain.DefaultPolicy(), logger))
func AuthenticationMiddleware(
	authenticator authUseCase.AuthenticatorUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		principal, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrTokenInvalid) {
				logger.Debug("ignoring unverifiable bearer token", slog.String("error", err.Error()))
				c.Next()
				return
			}
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), *principal))

		logger.Debug("authentication successful",
			slog.String("username", principal.Username),
			slog.String("role", principal.Role.String()))

		c.Next()
	}
}

// AuthorizationMiddleware admits or denies the request according to policy, using the
// principal left in the context by AuthenticationMiddleware. The policy sees the route
// template gin matched ("/servers/:endpoint/stats"), so it judges the handler that will
// actually run. Unmatched requests fall back to the raw request path.
//
// Error handling:
//   - Non-public route without a principal → 403 Forbidden
//   - Principal without the route's role → 403 Forbidden
//   - Path with dot or empty segments → 403 Forbidden
func AuthorizationMiddleware(policy *domain.Policy, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		var principal *domain.Principal
		if p, ok := GetPrincipal(c.Request.Context()); ok {
			principal = &p
		}

		if err := policy.Evaluate(path, principal); err != nil {
			logger.Debug("authorization failed",
				slog.String("path", path),
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}

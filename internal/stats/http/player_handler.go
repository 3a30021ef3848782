package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/gamestats/internal/auth/http"
	apperrors "github.com/allisson/gamestats/internal/errors"
	"github.com/allisson/gamestats/internal/httputil"
	"github.com/allisson/gamestats/internal/stats/http/dto"
	statsUseCase "github.com/allisson/gamestats/internal/stats/usecase"
)

// PlayerHandler handles HTTP requests for player statistics.
type PlayerHandler struct {
	playerUseCase statsUseCase.PlayerUseCase
	logger        *slog.Logger
}

// NewPlayerHandler creates a new player handler with required dependencies.
func NewPlayerHandler(playerUseCase statsUseCase.PlayerUseCase, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{
		playerUseCase: playerUseCase,
		logger:        logger,
	}
}

// StatsHandler returns the caller's own statistics.
// GET /players/:name/stats - requires PLAYER. Any name other than the caller's returns 404.
func (h *PlayerHandler) StatsHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	stats, err := h.playerUseCase.Stats(c.Request.Context(), principal.Username, c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPlayerStatsToResponse(stats))
}

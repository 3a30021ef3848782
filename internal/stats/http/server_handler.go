// Package http provides the HTTP handlers of the statistics API.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/gamestats/internal/httputil"
	"github.com/allisson/gamestats/internal/stats/http/dto"
	statsUseCase "github.com/allisson/gamestats/internal/stats/usecase"
	customValidation "github.com/allisson/gamestats/internal/validation"
)

// ServerHandler handles HTTP requests for server information.
type ServerHandler struct {
	serverUseCase statsUseCase.ServerUseCase
	logger        *slog.Logger
}

// NewServerHandler creates a new server handler with required dependencies.
func NewServerHandler(serverUseCase statsUseCase.ServerUseCase, logger *slog.Logger) *ServerHandler {
	return &ServerHandler{
		serverUseCase: serverUseCase,
		logger:        logger,
	}
}

// ListHandler lists every server.
// GET /servers/info - requires ADMIN.
func (h *ServerHandler) ListHandler(c *gin.Context) {
	servers, err := h.serverUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapServersToResponse(servers))
}

// GetHandler returns a single server.
// GET /servers/:endpoint/info - requires ADMIN. Returns 404 for an unknown endpoint.
func (h *ServerHandler) GetHandler(c *gin.Context) {
	server, err := h.serverUseCase.Get(c.Request.Context(), c.Param("endpoint"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapServerToResponse(server))
}

// MatchesHandler lists the matches a server hosted on a given day.
// GET /servers/:endpoint/matches/:date - requires ADMIN. The date is YYYY-MM-DD.
func (h *ServerHandler) MatchesHandler(c *gin.Context) {
	var req dto.MatchesRequest
	if err := c.ShouldBindUri(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	matches, err := h.serverUseCase.Matches(c.Request.Context(), req.Endpoint, req.Date)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMatchesToResponse(matches))
}

// StatsHandler returns the server summary.
// GET /servers/:endpoint/stats - requires ADMIN.
func (h *ServerHandler) StatsHandler(c *gin.Context) {
	stats, err := h.serverUseCase.Stats(c.Request.Context(), c.Param("endpoint"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapServerStatsToResponse(stats))
}

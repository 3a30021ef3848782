package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/gamestats/internal/httputil"
	"github.com/allisson/gamestats/internal/stats/http/dto"
	statsUseCase "github.com/allisson/gamestats/internal/stats/usecase"
)

// ReportHandler handles HTTP requests for leaderboards.
type ReportHandler struct {
	reportUseCase statsUseCase.ReportUseCase
	logger        *slog.Logger
}

// NewReportHandler creates a new report handler with required dependencies.
func NewReportHandler(reportUseCase statsUseCase.ReportUseCase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
		logger:        logger,
	}
}

// RecentMatchesHandler returns the newest matches.
// GET /reports/recent-matches?count=5 - requires ADMIN.
func (h *ReportHandler) RecentMatchesHandler(c *gin.Context) {
	count, err := httputil.ParseCount(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	matches, err := h.reportUseCase.RecentMatches(c.Request.Context(), count)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMatchesToResponse(matches))
}

// BestPlayersHandler returns the players with the highest total score.
// GET /reports/best-players?count=5 - requires ADMIN.
func (h *ReportHandler) BestPlayersHandler(c *gin.Context) {
	count, err := httputil.ParseCount(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	players, err := h.reportUseCase.BestPlayers(c.Request.Context(), count)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPlayersToResponse(players))
}

// PopularServersHandler returns the servers that hosted the most matches.
// GET /reports/popular-servers?count=5 - requires ADMIN.
func (h *ReportHandler) PopularServersHandler(c *gin.Context) {
	count, err := httputil.ParseCount(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	servers, err := h.reportUseCase.PopularServers(c.Request.Context(), count)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapServersToResponse(servers))
}

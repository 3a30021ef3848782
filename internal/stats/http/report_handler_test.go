package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/gamestats/internal/stats/domain"
	"github.com/allisson/gamestats/internal/stats/http/dto"
	usecaseMocks "github.com/allisson/gamestats/internal/stats/usecase/mocks"
)

func setupReportRouter() (*gin.Engine, *usecaseMocks.MockReportUseCase) {
	reportUseCase := &usecaseMocks.MockReportUseCase{}
	handler := NewReportHandler(reportUseCase, createTestLogger())

	router := gin.New()
	router.GET("/reports/recent-matches", handler.RecentMatchesHandler)
	router.GET("/reports/best-players", handler.BestPlayersHandler)
	router.GET("/reports/popular-servers", handler.PopularServersHandler)
	return router, reportUseCase
}

func TestReportHandler_RecentMatches(t *testing.T) {
	t.Run("DefaultCount", func(t *testing.T) {
		router, reportUseCase := setupReportRouter()
		reportUseCase.On("RecentMatches", mock.Anything, 5).Return([]*domain.Match{{ID: "m1"}}, nil).Once()

		w := serve(router, "/reports/recent-matches")

		assert.Equal(t, http.StatusOK, w.Code)
		var response []dto.MatchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response, 1)
		reportUseCase.AssertExpectations(t)
	})

	t.Run("ExplicitCount", func(t *testing.T) {
		router, reportUseCase := setupReportRouter()
		reportUseCase.On("RecentMatches", mock.Anything, 2).Return([]*domain.Match{}, nil).Once()

		w := serve(router, "/reports/recent-matches?count=2")

		assert.Equal(t, http.StatusOK, w.Code)
		reportUseCase.AssertExpectations(t)
	})

	t.Run("InvalidCount", func(t *testing.T) {
		router, reportUseCase := setupReportRouter()

		for _, target := range []string{
			"/reports/recent-matches?count=0",
			"/reports/recent-matches?count=abc",
			"/reports/recent-matches?count=1000",
		} {
			w := serve(router, target)
			assert.Equal(t, http.StatusBadRequest, w.Code, target)
		}
		reportUseCase.AssertNotCalled(t, "RecentMatches", mock.Anything, mock.Anything)
	})
}

func TestReportHandler_BestPlayers(t *testing.T) {
	router, reportUseCase := setupReportRouter()
	reportUseCase.On("BestPlayers", mock.Anything, 3).Return([]*domain.Player{
		{Name: "bob", TotalScore: 500},
		{Name: "alice", TotalScore: 130},
	}, nil).Once()

	w := serve(router, "/reports/best-players?count=3")

	assert.Equal(t, http.StatusOK, w.Code)
	var response []dto.PlayerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, "bob", response[0].Name)
	assert.Equal(t, 500, response[0].TotalScore)
}

func TestReportHandler_PopularServers(t *testing.T) {
	router, reportUseCase := setupReportRouter()
	reportUseCase.On("PopularServers", mock.Anything, 5).Return([]*domain.Server{
		{Endpoint: "b", MatchIDs: []string{"1", "2"}},
		{Endpoint: "a"},
	}, nil).Once()

	w := serve(router, "/reports/popular-servers")

	assert.Equal(t, http.StatusOK, w.Code)
	var response []dto.ServerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, "b", response[0].Endpoint)
	assert.Equal(t, []string{}, response[1].MatchIDs)
}

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/allisson/gamestats/internal/config"
)

const dashboardOrigin = "https://dashboard.gamestats.test"

func corsConfig(enabled bool, origins string) *config.Config {
	return &config.Config{CORSEnabled: enabled, CORSAllowOrigins: origins}
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		origins string
		wantNil bool
	}{
		{name: "Disabled", enabled: false, origins: dashboardOrigin, wantNil: true},
		{name: "EnabledWithoutOrigins", enabled: true, origins: "", wantNil: true},
		{name: "EnabledWithOnlySeparators", enabled: true, origins: " , ,", wantNil: true},
		{name: "EnabledWithOrigins", enabled: true, origins: dashboardOrigin + ",https://ops.gamestats.test"},
		{name: "EnabledWithWildcard", enabled: true, origins: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := corsMiddleware(corsConfig(tt.enabled, tt.origins), createTestLogger())
			if tt.wantNil {
				assert.Nil(t, middleware)
				return
			}
			assert.NotNil(t, middleware)
		})
	}
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t,
		[]string{dashboardOrigin, "https://ops.gamestats.test"},
		parseOrigins(" "+dashboardOrigin+"/ , https://ops.gamestats.test ,"+dashboardOrigin),
	)
}

func corsRouter(enabled bool) *gin.Engine {
	return corsRouterFor(corsConfig(enabled, dashboardOrigin))
}

func corsRouterFor(cfg *config.Config) *gin.Engine {
	router := gin.New()
	if middleware := corsMiddleware(cfg, createTestLogger()); middleware != nil {
		router.Use(middleware)
	}
	router.GET("/reports/best-players", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})
	router.POST("/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestCORSIntegration_HeadersAddedWhenEnabled(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/best-players", nil)
	req.Header.Set("Origin", dashboardOrigin)
	corsRouter(true).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dashboardOrigin, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSIntegration_NoHeadersWhenDisabled(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/best-players", nil)
	req.Header.Set("Origin", dashboardOrigin)
	corsRouter(false).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSIntegration_PreflightAllowsBearerTokens(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	req.Header.Set("Origin", dashboardOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	corsRouter(true).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, dashboardOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestCORSIntegration_WildcardOrigin(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/best-players", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	corsRouterFor(corsConfig(true, "*")).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

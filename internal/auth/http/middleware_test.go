package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/gamestats/internal/auth/domain"
	usecaseMocks "github.com/allisson/gamestats/internal/auth/usecase/mocks"
	apperrors "github.com/allisson/gamestats/internal/errors"
	"github.com/allisson/gamestats/internal/httputil"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header   string
		expected string
		ok       bool
	}{
		{"", "", false},
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc", "abc", true},
		{"BEARER abc", "abc", true},
		{"Bearer ", "", false},
		{"Bearer    ", "", false},
		{"Basic dXNlcjpwYXNz", "", false},
		{"Bearerabc", "", false},
		{"abc.def.ghi", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, ok := bearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, token)
		})
	}
}

// newGuardedRouter wires both middlewares in front of a handler that echoes the principal.
func newGuardedRouter(authenticator *usecaseMocks.MockAuthenticatorUseCase) *gin.Engine {
	logger := createTestLogger()
	router := gin.New()
	router.Use(AuthenticationMiddleware(authenticator, logger))
	router.Use(AuthorizationMiddleware(domain.DefaultPolicy(), logger))

	echo := func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"authenticated": ok, "username": principal.Username})
	}
	router.POST("/auth/login", echo)
	router.GET("/servers/info", echo)
	router.GET("/servers/:endpoint/stats", echo)
	router.GET("/players/:name/stats", echo)
	router.GET("/me", echo)
	return router
}

func serve(router *gin.Engine, method, path, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()
	var response httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestAuthenticationMiddleware(t *testing.T) {
	admin := &domain.Principal{Username: "root", Role: domain.RoleAdmin}
	player := &domain.Principal{Username: "alice", Role: domain.RolePlayer}

	t.Run("NoToken_PublicRouteAdmitted", func(t *testing.T) {
		authenticator := &usecaseMocks.MockAuthenticatorUseCase{}
		w := serve(newGuardedRouter(authenticator), http.MethodPost, "/auth/login", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":false,"username":""}`, w.Body.String())
		authenticator.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("NoToken_ProtectedRouteForbidden", func(t *testing.T) {
		authenticator := &usecaseMocks.MockAuthenticatorUseCase{}
		w := serve(newGuardedRouter(authenticator), http.MethodGet, "/servers/info", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "forbidden", decodeError(t, w).Error)
	})

	t.Run("MalformedHeader_TreatedAsAnonymous", func(t *testing.T) {
		authenticator := &usecaseMocks.MockAuthenticatorUseCase{}
		w := serve(newGuardedRouter(authenticator), http.MethodGet, "/me", "Token abc")

		assert.Equal(t, http.StatusForbidden, w.Code)
		authenticator.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("InvalidSignature_PublicRouteAdmitted", func(t *testing.T) {
		authenticator := &usecaseMocks.MockAuthenticatorUseCase{}
		authenticator.On("Authenticate", mock.Anything, "garbage").
			Return(nil, apperrors.Wrap(domain.ErrTokenInvalid, "signature is invalid")).Once()

		w := serve(newGuardedRouter(authenticator), http.MethodPost, "/auth/login", "Bearer garbage")

		assert.Equal(t, http.StatusOK, w.Code)
		authenticator.AssertExpectations(t)
	})

	t.Run("ExpiredToken_ProtectedRouteForbidden", func(t *testing.T) {
		authenticator := &usecaseMocks.MockAuthenticatorUseCase{}
		authenticator.On("Authenticate", mock.Anything, "expired").
			Return(nil, apperrors.Wrap(domain.ErrTokenInvalid, "token is expired")).Once()

		w := serve(newGuardedRouter(authenticator), http.MethodGet, "/servers/info", "Bearer expired")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "forbidden", decodeError(t, w).Error)
	})

	t.Run("StaleSession_RejectedBeforeAuthorization", func(t *testing.T) {
		authenticator := &usecaseMocks.MockAuthenticatorUseCase{}

		for _, path := range []string{"/servers/info", "/auth/login", "/me"} {
			authenticator.On("Authenticate", mock.Anything, "old").Return(nil, domain.ErrSessionInvalid).Once()
			method := http.MethodGet
			if path == "/auth/login" {
				method = http.MethodPost
			}

			w := serve(newGuardedRouter(authenticator), method, path, "Bearer old")

			assert.Equal(t, http.StatusUnauthorized, w.Code, path)
			response := decodeError(t, w)
			assert.Equal(t, "session_invalid", response.Error)
			assert.Equal(t, "Session invalid. Login again.", response.Message)
		}
		authenticator.AssertExpectations(t)
	})

	t.Run("SessionCurrent_AdminOnServers", func(t *testing.T) {
		authenticator := &usecaseMocks.MockAuthenticatorUseCase{}
		authenticator.On("Authenticate", mock.Anything, "good").Return(admin, nil).Once()

		w := serve(newGuardedRouter(authenticator), http.MethodGet, "/servers/info", "Bearer good")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":true,"username":"root"}`, w.Body.String())
	})

	t.Run("SessionCurrent_PlayerOnServersForbidden", func(t *testing.T) {
		authenticator := &usecaseMocks.MockAuthenticatorUseCase{}
		authenticator.On("Authenticate", mock.Anything, "good").Return(player, nil).Once()

		w := serve(newGuardedRouter(authenticator), http.MethodGet, "/servers/info", "Bearer good")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("SessionCurrent_AdminOnPlayersForbidden", func(t *testing.T) {
		authenticator := &usecaseMocks.MockAuthenticatorUseCase{}
		authenticator.On("Authenticate", mock.Anything, "good").Return(admin, nil).Once()

		w := serve(newGuardedRouter(authenticator), http.MethodGet, "/players/root/stats", "Bearer good")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("SessionCurrent_AnyRoleOnDefaultRoute", func(t *testing.T) {
		authenticator := &usecaseMocks.MockAuthenticatorUseCase{}
		authenticator.On("Authenticate", mock.Anything, "good").Return(player, nil).Once()

		w := serve(newGuardedRouter(authenticator), http.MethodGet, "/me", "Bearer good")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":true,"username":"alice"}`, w.Body.String())
	})

	t.Run("UnexpectedError_FailsClosed", func(t *testing.T) {
		authenticator := &usecaseMocks.MockAuthenticatorUseCase{}
		authenticator.On("Authenticate", mock.Anything, "good").Return(nil, assert.AnError).Once()

		w := serve(newGuardedRouter(authenticator), http.MethodPost, "/auth/login", "Bearer good")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthorizationMiddleware_JudgesMatchedRoute(t *testing.T) {
	player := &domain.Principal{Username: "alice", Role: domain.RolePlayer}

	tests := []struct {
		name string
		path string
	}{
		{"EncodedDotSegmentOnAdminRoute", "/servers/%2e%2e/stats"},
		{"DotSegmentOnAdminRoute", "/servers/../stats"},
		{"UnmatchedDotSegment", "/me/../servers/info"},
		{"EmptySegment", "//servers/info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authenticator := &usecaseMocks.MockAuthenticatorUseCase{}
			authenticator.On("Authenticate", mock.Anything, "player").Return(player, nil).Once()

			w := serve(newGuardedRouter(authenticator), http.MethodGet, tt.path, "Bearer player")

			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Equal(t, "forbidden", decodeError(t, w).Error)
		})
	}
}

func TestGetPrincipal_Anonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	principal, ok := GetPrincipal(req.Context())
	assert.False(t, ok)
	assert.Equal(t, domain.Principal{}, principal)
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/gamestats/internal/auth/domain"
	"github.com/allisson/gamestats/internal/auth/http/dto"
	usecaseMocks "github.com/allisson/gamestats/internal/auth/usecase/mocks"
)

func setupLoginHandler() (*LoginHandler, *usecaseMocks.MockLoginUseCase) {
	loginUseCase := &usecaseMocks.MockLoginUseCase{}
	return NewLoginHandler(loginUseCase, createTestLogger()), loginUseCase
}

func postLogin(handler *LoginHandler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler.LoginHandler(c)
	return w
}

func TestLoginHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, loginUseCase := setupLoginHandler()
		expiresAt := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)

		loginUseCase.On("Login", mock.Anything, "alice", "s3cret").
			Return(&domain.IssuedToken{Token: "a.b.c", ExpiresAt: expiresAt}, nil).Once()

		w := postLogin(handler, `{"username":"alice","password":"s3cret"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "a.b.c", response.Token)
		assert.Equal(t, "Bearer", response.TokenType)
		assert.True(t, response.ExpiresAt.Equal(expiresAt))
		loginUseCase.AssertExpectations(t)
	})

	t.Run("Error_BadCredentialsIdenticalBodies", func(t *testing.T) {
		handler, loginUseCase := setupLoginHandler()
		loginUseCase.On("Login", mock.Anything, "ghost", "pw").Return(nil, domain.ErrAuthenticationFailed).Once()
		loginUseCase.On("Login", mock.Anything, "alice", "pw").Return(nil, domain.ErrAuthenticationFailed).Once()

		unknown := postLogin(handler, `{"username":"ghost","password":"pw"}`)
		wrong := postLogin(handler, `{"username":"alice","password":"pw"}`)

		assert.Equal(t, http.StatusBadRequest, unknown.Code)
		assert.Equal(t, http.StatusBadRequest, wrong.Code)
		assert.Equal(t, unknown.Body.String(), wrong.Body.String())
		assert.Contains(t, unknown.Body.String(), "invalid_credentials")
	})

	t.Run("Error_MalformedJSON", func(t *testing.T) {
		handler, loginUseCase := setupLoginHandler()

		w := postLogin(handler, `{"username":`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		loginUseCase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_BlankUsername", func(t *testing.T) {
		handler, loginUseCase := setupLoginHandler()

		w := postLogin(handler, `{"username":"  ","password":"pw"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		loginUseCase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_Cancelled", func(t *testing.T) {
		handler, loginUseCase := setupLoginHandler()
		loginUseCase.On("Login", mock.Anything, "alice", "pw").Return(nil, context.Canceled).Once()

		w := postLogin(handler, `{"username":"alice","password":"pw"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLoginHandler_Me(t *testing.T) {
	handler, _ := setupLoginHandler()

	t.Run("Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		c.Request = req.WithContext(WithPrincipal(req.Context(), domain.Principal{Username: "alice", Role: domain.RolePlayer}))

		handler.MeHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"username":"alice","role":"PLAYER"}`, w.Body.String())
	})

	t.Run("Error_NoPrincipal", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/me", nil)

		handler.MeHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/gamestats/internal/auth/http/dto"
	authUseCase "github.com/allisson/gamestats/internal/auth/usecase"
	apperrors "github.com/allisson/gamestats/internal/errors"
	"github.com/allisson/gamestats/internal/httputil"
	customValidation "github.com/allisson/gamestats/internal/validation"
)

// LoginHandler handles HTTP requests for login and identity lookup.
type LoginHandler struct {
	loginUseCase authUseCase.LoginUseCase
	logger       *slog.Logger
}

// NewLoginHandler creates a new login handler with required dependencies.
func NewLoginHandler(loginUseCase authUseCase.LoginUseCase, logger *slog.Logger) *LoginHandler {
	return &LoginHandler{
		loginUseCase: loginUseCase,
		logger:       logger,
	}
}

// LoginHandler exchanges credentials for an access token.
// POST /auth/login - public.
// Returns 200 OK with the token, 400 for bad credentials, 422 for a malformed body.
func (h *LoginHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	issued, err := h.loginUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapIssuedTokenToResponse(issued))
}

// MeHandler returns the caller's principal.
// GET /me - any authenticated principal.
func (h *LoginHandler) MeHandler(c *gin.Context) {
	principal, ok := GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPrincipalToResponse(principal))
}

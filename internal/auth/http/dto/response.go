package dto

import (
	"time"

	"github.com/allisson/gamestats/internal/auth/domain"
)

// LoginResponse contains the token issued by a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MapIssuedTokenToResponse converts an issued token to an API response.
func MapIssuedTokenToResponse(issued *domain.IssuedToken) LoginResponse {
	return LoginResponse{
		Token:     issued.Token,
		TokenType: "Bearer",
		ExpiresAt: issued.ExpiresAt.UTC(),
	}
}

// PrincipalResponse describes the caller's own identity.
type PrincipalResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// MapPrincipalToResponse converts a principal to an API response.
func MapPrincipalToResponse(principal domain.Principal) PrincipalResponse {
	return PrincipalResponse{
		Username: principal.Username,
		Role:     principal.Role.String(),
	}
}

package usecase

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/allisson/gamestats/internal/auth/domain"
	authService "github.com/allisson/gamestats/internal/auth/service"
	apperrors "github.com/allisson/gamestats/internal/errors"
)

// authenticatorUseCase implements AuthenticatorUseCase.
type authenticatorUseCase struct {
	tokenService  authService.TokenService
	sessionRepo   SessionRepository
	lookupTimeout time.Duration
}

// Authenticate verifies token and cross-checks its session handle. The session lookup is
// bounded by the configured timeout; a lookup that fails or times out rejects the token.
func (a *authenticatorUseCase) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	claims, err := a.tokenService.Verify(token)
	if err != nil {
		return nil, err
	}

	lookupCtx := ctx
	if a.lookupTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, a.lookupTimeout)
		defer cancel()
	}

	session, err := a.sessionRepo.Get(lookupCtx, claims.Subject)
	if err != nil {
		return nil, apperrors.Wrap(domain.ErrSessionInvalid, err.Error())
	}

	if subtle.ConstantTimeCompare([]byte(session.Handle), []byte(claims.SessionHandle)) != 1 {
		return nil, domain.ErrSessionInvalid
	}

	principal := claims.Principal()
	return &principal, nil
}

// NewAuthenticatorUseCase creates a new AuthenticatorUseCase. A non-positive
// lookupTimeout leaves session lookups bounded only by the request context.
func NewAuthenticatorUseCase(
	tokenService authService.TokenService,
	sessionRepo SessionRepository,
	lookupTimeout time.Duration,
) AuthenticatorUseCase {
	return &authenticatorUseCase{
		tokenService:  tokenService,
		sessionRepo:   sessionRepo,
		lookupTimeout: lookupTimeout,
	}
}

package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/allisson/gamestats/internal/auth/domain"
	authService "github.com/allisson/gamestats/internal/auth/service"
)

// loginUseCase implements LoginUseCase.
type loginUseCase struct {
	userRepo        UserRepository
	sessionRepo     SessionRepository
	passwordService authService.PasswordService
	tokenService    authService.TokenService
	handleService   authService.SessionHandleService
}

// Login authenticates username and starts a new session for it.
func (l *loginUseCase) Login(ctx context.Context, username, password string) (*domain.IssuedToken, error) {
	user, err := l.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		// Burn the same verification cost as a real user so response timing does not
		// reveal whether the username exists.
		_, _ = l.passwordService.ComparePassword(ctx, password, l.passwordService.DummyHash())
		return nil, domain.ErrAuthenticationFailed
	}

	// A verification that never ran (no free verifier before the deadline) fails the
	// same way as the unknown-user branch above.
	ok, err := l.passwordService.ComparePassword(ctx, password, user.PasswordHash)
	if err != nil || !ok {
		return nil, domain.ErrAuthenticationFailed
	}

	handle, err := l.handleService.NewHandle()
	if err != nil {
		return nil, err
	}

	issued, err := l.tokenService.Sign(user.Username, user.Role, handle)
	if err != nil {
		return nil, err
	}

	// The token only becomes usable once its handle is the stored one; storing it
	// invalidates every token from previous logins.
	session := &domain.Session{
		Username:  user.Username,
		Handle:    handle,
		CreatedAt: time.Now().UTC(),
	}
	if err := l.sessionRepo.Put(ctx, session); err != nil {
		return nil, err
	}

	return &issued, nil
}

// NewLoginUseCase creates a new LoginUseCase with the provided dependencies.
func NewLoginUseCase(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
	handleService authService.SessionHandleService,
) LoginUseCase {
	return &loginUseCase{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		handleService:   handleService,
	}
}

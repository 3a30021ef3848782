package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/allisson/gamestats/internal/auth/domain"
	"github.com/allisson/gamestats/internal/metrics"
)

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// loginUseCaseWithMetrics decorates LoginUseCase with metrics instrumentation.
type loginUseCaseWithMetrics struct {
	next    LoginUseCase
	metrics metrics.BusinessMetrics
}

// NewLoginUseCaseWithMetrics wraps a LoginUseCase with metrics recording.
func NewLoginUseCaseWithMetrics(useCase LoginUseCase, m metrics.BusinessMetrics) LoginUseCase {
	return &loginUseCaseWithMetrics{next: useCase, metrics: m}
}

// Login records metrics for login attempts.
func (l *loginUseCaseWithMetrics) Login(
	ctx context.Context,
	username, password string,
) (*domain.IssuedToken, error) {
	start := time.Now()
	issued, err := l.next.Login(ctx, username, password)

	status := statusOf(err)
	l.metrics.RecordOperation(ctx, "auth", "login", status)
	l.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return issued, err
}

// authenticatorUseCaseWithMetrics decorates AuthenticatorUseCase with metrics instrumentation.
type authenticatorUseCaseWithMetrics struct {
	next    AuthenticatorUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthenticatorUseCaseWithMetrics wraps an AuthenticatorUseCase with metrics recording.
func NewAuthenticatorUseCaseWithMetrics(
	useCase AuthenticatorUseCase,
	m metrics.BusinessMetrics,
) AuthenticatorUseCase {
	return &authenticatorUseCaseWithMetrics{next: useCase, metrics: m}
}

// Authenticate records metrics for token authentication, distinguishing stale sessions
// from tokens that never verified.
func (a *authenticatorUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	token string,
) (*domain.Principal, error) {
	start := time.Now()
	principal, err := a.next.Authenticate(ctx, token)

	status := statusOf(err)
	switch {
	case errors.Is(err, domain.ErrSessionInvalid):
		status = "session_invalid"
	case errors.Is(err, domain.ErrTokenInvalid):
		status = "token_invalid"
	}

	a.metrics.RecordOperation(ctx, "auth", "authenticate", status)
	a.metrics.RecordDuration(ctx, "auth", "authenticate", time.Since(start), status)

	return principal, err
}

// userUseCaseWithMetrics decorates UserUseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{next: useCase, metrics: m}
}

// Create records metrics for user creation.
func (u *userUseCaseWithMetrics) Create(
	ctx context.Context,
	input *domain.CreateUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Create(ctx, input)

	status := statusOf(err)
	u.metrics.RecordOperation(ctx, "auth", "user_create", status)
	u.metrics.RecordDuration(ctx, "auth", "user_create", time.Since(start), status)

	return user, err
}

// CreateMissing records metrics for bulk user provisioning.
func (u *userUseCaseWithMetrics) CreateMissing(
	ctx context.Context,
	inputs []*domain.CreateUserInput,
) (int, error) {
	start := time.Now()
	created, err := u.next.CreateMissing(ctx, inputs)

	status := statusOf(err)
	u.metrics.RecordOperation(ctx, "auth", "user_create_missing", status)
	u.metrics.RecordDuration(ctx, "auth", "user_create_missing", time.Since(start), status)

	return created, err
}

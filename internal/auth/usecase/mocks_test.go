package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/gamestats/internal/auth/domain"
)

// mockUserRepository is a mock implementation of UserRepository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// mockSessionRepository is a mock implementation of SessionRepository.
type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Put(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) Get(ctx context.Context, username string) (*domain.Session, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

// mockPasswordService is a mock implementation of PasswordService.
type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) HashPassword(plainPassword string) (string, error) {
	args := m.Called(plainPassword)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) ComparePassword(ctx context.Context, plainPassword, hashedPassword string) (bool, error) {
	args := m.Called(ctx, plainPassword, hashedPassword)
	return args.Bool(0), args.Error(1)
}

func (m *mockPasswordService) DummyHash() string {
	args := m.Called()
	return args.String(0)
}

// mockTokenService is a mock implementation of TokenService.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Sign(username string, role domain.Role, sessionHandle string) (domain.IssuedToken, error) {
	args := m.Called(username, role, sessionHandle)
	return args.Get(0).(domain.IssuedToken), args.Error(1)
}

func (m *mockTokenService) Verify(token string) (domain.Claims, error) {
	args := m.Called(token)
	return args.Get(0).(domain.Claims), args.Error(1)
}

// mockSessionHandleService is a mock implementation of SessionHandleService.
type mockSessionHandleService struct {
	mock.Mock
}

func (m *mockSessionHandleService) NewHandle() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// mockTxManager runs the callback directly unless an error is configured.
type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

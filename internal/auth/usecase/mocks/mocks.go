// Package mocks provides mock implementations of the auth use cases for testing handlers,
// middleware and commands.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/gamestats/internal/auth/domain"
)

// MockLoginUseCase is a mock implementation of LoginUseCase.
type MockLoginUseCase struct {
	mock.Mock
}

// Login mocks the Login method of LoginUseCase.
func (m *MockLoginUseCase) Login(ctx context.Context, username, password string) (*domain.IssuedToken, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IssuedToken), args.Error(1)
}

// MockAuthenticatorUseCase is a mock implementation of AuthenticatorUseCase.
type MockAuthenticatorUseCase struct {
	mock.Mock
}

// Authenticate mocks the Authenticate method of AuthenticatorUseCase.
func (m *MockAuthenticatorUseCase) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}

// MockUserUseCase is a mock implementation of UserUseCase.
type MockUserUseCase struct {
	mock.Mock
}

// Create mocks the Create method of UserUseCase.
func (m *MockUserUseCase) Create(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// CreateMissing mocks the CreateMissing method of UserUseCase.
func (m *MockUserUseCase) CreateMissing(ctx context.Context, inputs []*domain.CreateUserInput) (int, error) {
	args := m.Called(ctx, inputs)
	return args.Int(0), args.Error(1)
}

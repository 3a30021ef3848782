// Package mocks provides mock implementations of the statistics use cases for testing
// handlers and commands.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/gamestats/internal/stats/domain"
)

// MockServerUseCase is a mock implementation of ServerUseCase.
type MockServerUseCase struct {
	mock.Mock
}

// List mocks the List method of ServerUseCase.
func (m *MockServerUseCase) List(ctx context.Context) ([]*domain.Server, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Server), args.Error(1)
}

// Get mocks the Get method of ServerUseCase.
func (m *MockServerUseCase) Get(ctx context.Context, endpoint string) (*domain.Server, error) {
	args := m.Called(ctx, endpoint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Server), args.Error(1)
}

// Matches mocks the Matches method of ServerUseCase.
func (m *MockServerUseCase) Matches(ctx context.Context, endpoint, date string) ([]*domain.Match, error) {
	args := m.Called(ctx, endpoint, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Match), args.Error(1)
}

// Stats mocks the Stats method of ServerUseCase.
func (m *MockServerUseCase) Stats(ctx context.Context, endpoint string) (*domain.ServerStats, error) {
	args := m.Called(ctx, endpoint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServerStats), args.Error(1)
}

// MockPlayerUseCase is a mock implementation of PlayerUseCase.
type MockPlayerUseCase struct {
	mock.Mock
}

// Stats mocks the Stats method of PlayerUseCase.
func (m *MockPlayerUseCase) Stats(ctx context.Context, viewer, name string) (*domain.PlayerStats, error) {
	args := m.Called(ctx, viewer, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerStats), args.Error(1)
}

// MockReportUseCase is a mock implementation of ReportUseCase.
type MockReportUseCase struct {
	mock.Mock
}

// RecentMatches mocks the RecentMatches method of ReportUseCase.
func (m *MockReportUseCase) RecentMatches(ctx context.Context, count int) ([]*domain.Match, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Match), args.Error(1)
}

// BestPlayers mocks the BestPlayers method of ReportUseCase.
func (m *MockReportUseCase) BestPlayers(ctx context.Context, count int) ([]*domain.Player, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Player), args.Error(1)
}

// PopularServers mocks the PopularServers method of ReportUseCase.
func (m *MockReportUseCase) PopularServers(ctx context.Context, count int) ([]*domain.Server, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Server), args.Error(1)
}

// MockMatchUseCase is a mock implementation of MatchUseCase.
type MockMatchUseCase struct {
	mock.Mock
}

// Generate mocks the Generate method of MatchUseCase.
func (m *MockMatchUseCase) Generate(ctx context.Context) (*domain.Match, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

// MockSeedUseCase is a mock implementation of SeedUseCase.
type MockSeedUseCase struct {
	mock.Mock
}

// Seed mocks the Seed method of SeedUseCase.
func (m *MockSeedUseCase) Seed(ctx context.Context, data *domain.SeedData) (*domain.SeedResult, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeedResult), args.Error(1)
}

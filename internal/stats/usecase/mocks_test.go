package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/gamestats/internal/stats/domain"
)

// mockServerRepository is a mock implementation of ServerRepository.
type mockServerRepository struct {
	mock.Mock
}

func (m *mockServerRepository) Save(ctx context.Context, servers ...*domain.Server) error {
	args := m.Called(ctx, servers)
	return args.Error(0)
}

func (m *mockServerRepository) Get(ctx context.Context, endpoint string) (*domain.Server, error) {
	args := m.Called(ctx, endpoint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Server), args.Error(1)
}

func (m *mockServerRepository) List(ctx context.Context) ([]*domain.Server, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Server), args.Error(1)
}

func (m *mockServerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// mockPlayerRepository is a mock implementation of PlayerRepository.
type mockPlayerRepository struct {
	mock.Mock
}

func (m *mockPlayerRepository) Save(ctx context.Context, players ...*domain.Player) error {
	args := m.Called(ctx, players)
	return args.Error(0)
}

func (m *mockPlayerRepository) Get(ctx context.Context, name string) (*domain.Player, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *mockPlayerRepository) List(ctx context.Context) ([]*domain.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Player), args.Error(1)
}

func (m *mockPlayerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// mockMatchRepository is a mock implementation of MatchRepository.
type mockMatchRepository struct {
	mock.Mock
}

func (m *mockMatchRepository) Record(
	ctx context.Context,
	match *domain.Match,
	server *domain.Server,
	players ...*domain.Player,
) error {
	args := m.Called(ctx, match, server, players)
	return args.Error(0)
}

func (m *mockMatchRepository) GetMany(ctx context.Context, ids []string) ([]*domain.Match, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Match), args.Error(1)
}

func (m *mockMatchRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Match, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Match), args.Error(1)
}

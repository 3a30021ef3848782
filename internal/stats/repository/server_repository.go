package repository

import (
	"context"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/allisson/gamestats/internal/errors"
	"github.com/allisson/gamestats/internal/stats/domain"
)

// RedisServerRepository implements server persistence on Redis.
type RedisServerRepository struct {
	client redis.UniversalClient
}

// NewRedisServerRepository creates a new RedisServerRepository.
func NewRedisServerRepository(client redis.UniversalClient) *RedisServerRepository {
	return &RedisServerRepository{client: client}
}

// Save creates or replaces servers and registers their endpoints in the index.
func (r *RedisServerRepository) Save(ctx context.Context, servers ...*domain.Server) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, server := range servers {
			if err := setDocument(ctx, pipe, serverKeyPrefix+server.Endpoint, server); err != nil {
				return err
			}
			pipe.SAdd(ctx, serverIndexKey, server.Endpoint)
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(err, "failed to save servers")
	}
	return nil
}

// Get retrieves a server by endpoint. Returns ErrServerNotFound if it does not exist.
func (r *RedisServerRepository) Get(ctx context.Context, endpoint string) (*domain.Server, error) {
	var server domain.Server
	if err := getDocument(ctx, r.client, serverKeyPrefix+endpoint, &server, domain.ErrServerNotFound); err != nil {
		return nil, err
	}
	return &server, nil
}

// List returns every server ordered by endpoint.
func (r *RedisServerRepository) List(ctx context.Context) ([]*domain.Server, error) {
	endpoints, err := indexMembers(ctx, r.client, serverIndexKey)
	if err != nil {
		return nil, err
	}
	return getDocuments[domain.Server](ctx, r.client, serverKeyPrefix, endpoints)
}

// Count returns the number of registered servers.
func (r *RedisServerRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.client.SCard(ctx, serverIndexKey).Result()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count servers")
	}
	return count, nil
}

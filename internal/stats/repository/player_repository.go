package repository

import (
	"context"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/allisson/gamestats/internal/errors"
	"github.com/allisson/gamestats/internal/stats/domain"
)

// RedisPlayerRepository implements player persistence on Redis.
type RedisPlayerRepository struct {
	client redis.UniversalClient
}

// NewRedisPlayerRepository creates a new RedisPlayerRepository.
func NewRedisPlayerRepository(client redis.UniversalClient) *RedisPlayerRepository {
	return &RedisPlayerRepository{client: client}
}

// Save creates or replaces players and registers their names in the index.
func (r *RedisPlayerRepository) Save(ctx context.Context, players ...*domain.Player) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, player := range players {
			if err := setDocument(ctx, pipe, playerKeyPrefix+player.Name, player); err != nil {
				return err
			}
			pipe.SAdd(ctx, playerIndexKey, player.Name)
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(err, "failed to save players")
	}
	return nil
}

// Get retrieves a player by name. Returns ErrPlayerNotFound if it does not exist.
func (r *RedisPlayerRepository) Get(ctx context.Context, name string) (*domain.Player, error) {
	var player domain.Player
	if err := getDocument(ctx, r.client, playerKeyPrefix+name, &player, domain.ErrPlayerNotFound); err != nil {
		return nil, err
	}
	return &player, nil
}

// List returns every player ordered by name.
func (r *RedisPlayerRepository) List(ctx context.Context) ([]*domain.Player, error) {
	names, err := indexMembers(ctx, r.client, playerIndexKey)
	if err != nil {
		return nil, err
	}
	return getDocuments[domain.Player](ctx, r.client, playerKeyPrefix, names)
}

// Count returns the number of registered players.
func (r *RedisPlayerRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.client.SCard(ctx, playerIndexKey).Result()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count players")
	}
	return count, nil
}

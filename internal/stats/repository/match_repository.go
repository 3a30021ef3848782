package repository

import (
	"context"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/allisson/gamestats/internal/errors"
	"github.com/allisson/gamestats/internal/stats/domain"
)

// RedisMatchRepository implements match persistence on Redis. The match index is a sorted
// set scored by timestamp so the most recent matches can be read without a full scan.
type RedisMatchRepository struct {
	client redis.UniversalClient
}

// NewRedisMatchRepository creates a new RedisMatchRepository.
func NewRedisMatchRepository(client redis.UniversalClient) *RedisMatchRepository {
	return &RedisMatchRepository{client: client}
}

func queueMatch(ctx context.Context, pipe redis.Pipeliner, match *domain.Match) error {
	if err := setDocument(ctx, pipe, matchKeyPrefix+match.ID, match); err != nil {
		return err
	}
	pipe.ZAdd(ctx, matchIndexKey, redis.Z{
		Score:  float64(match.Timestamp.UnixMilli()),
		Member: match.ID,
	})
	return nil
}

// Save creates or replaces a match.
func (r *RedisMatchRepository) Save(ctx context.Context, match *domain.Match) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		return queueMatch(ctx, pipe, match)
	})
	if err != nil {
		return apperrors.Wrap(err, "failed to save match")
	}
	return nil
}

// Record stores a new match together with the server and players it updated in a single
// MULTI/EXEC, so readers never see a match missing from its participants' history.
func (r *RedisMatchRepository) Record(
	ctx context.Context,
	match *domain.Match,
	server *domain.Server,
	players ...*domain.Player,
) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if err := queueMatch(ctx, pipe, match); err != nil {
			return err
		}
		if err := setDocument(ctx, pipe, serverKeyPrefix+server.Endpoint, server); err != nil {
			return err
		}
		pipe.SAdd(ctx, serverIndexKey, server.Endpoint)
		for _, player := range players {
			if err := setDocument(ctx, pipe, playerKeyPrefix+player.Name, player); err != nil {
				return err
			}
			pipe.SAdd(ctx, playerIndexKey, player.Name)
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(err, "failed to record match")
	}
	return nil
}

// Get retrieves a match by id. Returns ErrMatchNotFound if it does not exist.
func (r *RedisMatchRepository) Get(ctx context.Context, id string) (*domain.Match, error) {
	var match domain.Match
	if err := getDocument(ctx, r.client, matchKeyPrefix+id, &match, domain.ErrMatchNotFound); err != nil {
		return nil, err
	}
	return &match, nil
}

// GetMany returns the matches for ids in the given order, skipping ids that are not stored.
func (r *RedisMatchRepository) GetMany(ctx context.Context, ids []string) ([]*domain.Match, error) {
	return getDocuments[domain.Match](ctx, r.client, matchKeyPrefix, ids)
}

// ListRecent returns up to limit matches, newest first.
func (r *RedisMatchRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Match, error) {
	if limit <= 0 {
		return []*domain.Match{}, nil
	}

	ids, err := r.client.ZRevRange(ctx, matchIndexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list matches")
	}
	return r.GetMany(ctx, ids)
}

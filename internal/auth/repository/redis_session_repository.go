package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/allisson/gamestats/internal/auth/domain"
	apperrors "github.com/allisson/gamestats/internal/errors"
)

const sessionKeyPrefix = "session:"

type redisSession struct {
	Handle    string    `json:"handle"`
	CreatedAt time.Time `json:"createdAt"`
}

// RedisSessionRepository keeps one session per username under a single Redis key.
// SET replaces the previous value atomically, which is what revokes older tokens.
type RedisSessionRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisSessionRepository creates a new RedisSessionRepository. Keys expire after ttl;
// zero keeps them forever.
func NewRedisSessionRepository(client redis.UniversalClient, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{client: client, ttl: ttl}
}

// Put stores session, replacing any session already kept for the same username.
func (r *RedisSessionRepository) Put(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(redisSession{Handle: session.Handle, CreatedAt: session.CreatedAt})
	if err != nil {
		return apperrors.Wrap(err, "failed to encode session")
	}

	if err := r.client.Set(ctx, sessionKeyPrefix+session.Username, payload, r.ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to store session")
	}
	return nil
}

// Get returns the current session for username, or ErrSessionNotFound.
func (r *RedisSessionRepository) Get(ctx context.Context, username string) (*domain.Session, error) {
	payload, err := r.client.Get(ctx, sessionKeyPrefix+username).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get session")
	}

	var stored redisSession
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode session")
	}

	return &domain.Session{
		Username:  username,
		Handle:    stored.Handle,
		CreatedAt: stored.CreatedAt,
	}, nil
}

// Package repository stores game statistics in Redis. Every entity is kept as a JSON
// document under its own key, with a set (or sorted set, for matches) indexing the ids.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"slices"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/allisson/gamestats/internal/errors"
)

const (
	serverKeyPrefix = "server:"
	serverIndexKey  = "servers"
	playerKeyPrefix = "player:"
	playerIndexKey  = "players"
	matchKeyPrefix  = "match:"
	matchIndexKey   = "matches"
)

// setDocument queues a JSON document write on pipe.
func setDocument(ctx context.Context, pipe redis.Pipeliner, key string, doc any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode "+key)
	}
	pipe.Set(ctx, key, payload, 0)
	return nil
}

// getDocument loads the JSON document under key into dest. Returns notFound for a missing key.
func getDocument(ctx context.Context, client redis.UniversalClient, key string, dest any, notFound error) error {
	payload, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return notFound
		}
		return apperrors.Wrap(err, "failed to get "+key)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return apperrors.Wrap(err, "failed to decode "+key)
	}
	return nil
}

// getDocuments loads the documents for ids in the given order, skipping ids with no document.
func getDocuments[T any](ctx context.Context, client redis.UniversalClient, prefix string, ids []string) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = prefix + id
	}

	values, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get "+prefix+"*")
	}

	docs := make([]*T, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var doc T
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, apperrors.Wrap(err, "failed to decode "+keys[i])
		}
		docs = append(docs, &doc)
	}
	return docs, nil
}

// indexMembers returns the sorted members of a set index.
func indexMembers(ctx context.Context, client redis.UniversalClient, indexKey string) ([]string, error) {
	ids, err := client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list "+indexKey)
	}
	slices.Sort(ids)
	return ids, nil
}

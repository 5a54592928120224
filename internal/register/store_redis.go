package register

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// activePrisonsKey is the single well-known key holding the serialized
// active-prison snapshot. The value is always a whole-set overwrite, so
// concurrent refreshes are idempotent and a reader racing a refresh observes
// either the old or the new full snapshot.
const activePrisonsKey = "register:prisons:active"

// RedisStore caches the active-prison snapshot with a TTL. The snapshot is
// disposable: its absence is a cache miss, never an error.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs the store. The underlying client connects on
// demand, so the store is safe to build before Redis is reachable.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SetActivePrisons persists only the currently-active prisons under the
// snapshot key with EX = durationDays in days. Inactive establishments are
// deliberately excluded so the cache never serves a closed prison as valid.
func (s *RedisStore) SetActivePrisons(ctx context.Context, prisons []Prison, durationDays int) error {
	active := make([]Prison, 0, len(prisons))
	for _, p := range prisons {
		if p.Active {
			active = append(active, p)
		}
	}

	payload, err := json.Marshal(active)
	if err != nil {
		return fmt.Errorf("serialize active prisons: %w", err)
	}

	ttl := time.Duration(durationDays) * 24 * time.Hour
	if err := s.client.Set(ctx, activePrisonsKey, payload, ttl).Err(); err != nil {
		return fmt.Errorf("cache active prisons: %w", err)
	}
	return nil
}

// GetActivePrisons returns the cached snapshot, or an empty slice when the
// key is absent. Store-level read failures propagate so the caller can fall
// back to the register API.
func (s *RedisStore) GetActivePrisons(ctx context.Context) ([]Prison, error) {
	raw, err := s.client.Get(ctx, activePrisonsKey).Result()
	if errors.Is(err, redis.Nil) {
		return []Prison{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read active prisons: %w", err)
	}

	var prisons []Prison
	if err := json.Unmarshal([]byte(raw), &prisons); err != nil {
		return nil, fmt.Errorf("deserialize active prisons: %w", err)
	}
	if prisons == nil {
		prisons = []Prison{}
	}
	return prisons, nil
}

package autosave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 2 * time.Second

// RedisStore persists autosave state in Redis so a session can resume on
// another instance. Entries carry no TTL; MarkSaved-driven persists keep
// them current and Delete clears them.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed autosave store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (rs *RedisStore) redisKey(key string) string {
	return fmt.Sprintf("autosave:state:%s", key)
}

// Load reads the state for key
func (rs *RedisStore) Load(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := rs.client.Get(ctx, rs.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read state: %w", err)
	}
	return data, nil
}

// Save writes the state for key
func (rs *RedisStore) Save(key string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := rs.client.Set(ctx, rs.redisKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

// Delete removes the state for key
func (rs *RedisStore) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := rs.client.Del(ctx, rs.redisKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete state: %w", err)
	}
	return nil
}

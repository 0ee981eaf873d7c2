package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

// RedisChannel bridges content update messages over Redis pub/sub so
// editors in different processes see each other's saves.
type RedisChannel struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisChannel creates a Redis-backed channel
func NewRedisChannel(client *redis.Client, logger *zap.Logger) *RedisChannel {
	return &RedisChannel{client: client, logger: logger}
}

// Publish serializes msg and publishes it on the Redis channel
func (rc *RedisChannel) Publish(channel string, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal broadcast message: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := rc.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish broadcast message: %w", err)
	}
	return nil
}

// Subscribe consumes the Redis channel on a background goroutine until
// the returned unsubscribe function is called. Dropped connections are
// re-established with exponential backoff.
func (rc *RedisChannel) Subscribe(channel string, handler Handler) func() {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		policy := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)

		operation := func() error {
			sub := rc.client.Subscribe(ctx, channel)
			defer sub.Close()

			// Confirm the subscription before consuming.
			if _, err := sub.Receive(ctx); err != nil {
				return err
			}

			for {
				redisMsg, err := sub.ReceiveMessage(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return backoff.Permanent(ctx.Err())
					}
					return err
				}

				var msg Message
				if err := json.Unmarshal([]byte(redisMsg.Payload), &msg); err != nil {
					rc.logger.Warn("broadcast.redis.bad_payload",
						zap.String("channel", channel),
						zap.Error(err),
					)
					continue
				}
				handler(msg)
			}
		}

		_ = backoff.RetryNotify(operation, policy, func(err error, wait time.Duration) {
			rc.logger.Warn("broadcast.redis.resubscribe",
				zap.String("channel", channel),
				zap.Duration("wait", wait),
				zap.Error(err),
			)
		})
	}()

	return cancel
}

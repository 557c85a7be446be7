package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache implements ports.IdempotencyCache. It maps a publish key to
// the id of the draw the first request created.
type IdempotencyCache struct {
	client goredis.UniversalClient
	prefix string
}

// NewIdempotencyCache creates a Redis-backed idempotency cache.
func NewIdempotencyCache(client goredis.UniversalClient) *IdempotencyCache {
	return &IdempotencyCache{
		client: client,
		prefix: "idempotency:",
	}
}

// Get returns nil, nil if the key does not exist.
func (c *IdempotencyCache) Get(ctx context.Context, key string) (*uuid.UUID, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis idempotency get: %w", err)
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return nil, fmt.Errorf("decode idempotency entry %q: %w", key, err)
	}
	return &id, nil
}

// Set stores the draw id for key with a TTL.
func (c *IdempotencyCache) Set(ctx context.Context, key string, drawID uuid.UUID, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, drawID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("redis idempotency set: %w", err)
	}
	return nil
}

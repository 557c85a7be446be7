package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyCache_SetAndGet(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	key := "op-1:retry-001"
	drawID := uuid.New()

	got, err := cache.Get(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, cache.Set(ctx, key, drawID, 24*time.Hour))
	assert.True(t, mr.Exists("idempotency:"+key))

	got, err = cache.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, drawID, *got)
}

func TestIdempotencyCache_TTLExpiry(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "op-1:retry-002", uuid.New(), time.Second))
	mr.FastForward(2 * time.Second)

	got, err := cache.Get(ctx, "op-1:retry-002")
	assert.NoError(t, err)
	assert.Nil(t, got, "expired key should return nil")
}

func TestIdempotencyCache_CorruptEntry(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewIdempotencyCache(client)

	require.NoError(t, mr.Set("idempotency:op-1:bad", "not-a-uuid"))

	got, err := cache.Get(context.Background(), "op-1:bad")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestIdempotencyCache_Unavailable(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewIdempotencyCache(client)
	mr.Close()

	_, err := cache.Get(context.Background(), "op-1:down")
	assert.ErrorContains(t, err, "redis idempotency get")
}

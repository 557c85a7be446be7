package redis

import (
	"context"
	"testing"
	"time"

	"lottery-awards/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDraw() *domain.Draw {
	return &domain.Draw{
		ID:        uuid.New(),
		Name:      "weekly",
		HeldOn:    time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, 10, 3, 21, 15, 0, 0, time.UTC),
		Numbers: []domain.WinningNumber{
			domain.MustWinningNumber(domain.TierFirst, 12345),
			domain.MustWinningNumber(domain.TierSecond, 7),
			domain.MustWinningNumber(domain.TierLittle, 99999),
		},
	}
}

func TestDrawCache_SetAndGet(t *testing.T) {
	_, client := newTestClient(t)
	cache := NewDrawCache(client)
	ctx := context.Background()
	draw := testDraw()

	got, err := cache.Get(ctx, draw.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, cache.Set(ctx, draw, time.Hour))

	got, err = cache.Get(ctx, draw.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, draw.ID, got.ID)
	assert.Equal(t, draw.Name, got.Name)
	assert.True(t, draw.HeldOn.Equal(got.HeldOn))
	assert.True(t, draw.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, draw.Numbers, got.Numbers)
}

func TestDrawCache_StoredAsReadableJSON(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewDrawCache(client)
	draw := testDraw()

	require.NoError(t, cache.Set(context.Background(), draw, time.Hour))

	raw, err := mr.Get("draw:" + draw.ID.String())
	require.NoError(t, err)
	assert.Contains(t, raw, `{"tier":"first","number":12345}`)
}

func TestDrawCache_TTLExpiry(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewDrawCache(client)
	ctx := context.Background()
	draw := testDraw()

	require.NoError(t, cache.Set(ctx, draw, time.Minute))
	mr.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, draw.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDrawCache_CorruptEntry(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewDrawCache(client)
	id := uuid.New()

	require.NoError(t, mr.Set("draw:"+id.String(), `{"id":"`+id.String()+`","numbers":[{"tier":"first","number":100000}]}`))

	got, err := cache.Get(context.Background(), id)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrNumberOutOfRange)
}

func TestDrawCache_RedisDown(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewDrawCache(client)
	mr.Close()

	_, err := cache.Get(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	_, client := newTestClient(t)
	hc := NewHealthCheck(client)

	assert.Equal(t, "redis", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))
}

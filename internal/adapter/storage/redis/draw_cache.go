package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lottery-awards/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// DrawCache implements ports.DrawCache. Draws are immutable once published, so
// entries only ever expire.
type DrawCache struct {
	client goredis.UniversalClient
	prefix string
}

// NewDrawCache creates a Redis-backed draw cache.
func NewDrawCache(client goredis.UniversalClient) *DrawCache {
	return &DrawCache{
		client: client,
		prefix: "draw:",
	}
}

type cachedNumber struct {
	Tier   domain.PrizeTier     `json:"tier"`
	Number domain.LotteryNumber `json:"number"`
}

type cachedDraw struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	HeldOn    time.Time      `json:"held_on"`
	CreatedAt time.Time      `json:"created_at"`
	Numbers   []cachedNumber `json:"numbers"`
}

// Get returns nil, nil on a cache miss.
func (c *DrawCache) Get(ctx context.Context, id uuid.UUID) (*domain.Draw, error) {
	raw, err := c.client.Get(ctx, c.prefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis draw get: %w", err)
	}

	var rec cachedDraw
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode cached draw %s: %w", id, err)
	}

	draw := &domain.Draw{
		ID:        rec.ID,
		Name:      rec.Name,
		HeldOn:    rec.HeldOn,
		CreatedAt: rec.CreatedAt,
		Numbers:   make([]domain.WinningNumber, 0, len(rec.Numbers)),
	}
	for _, n := range rec.Numbers {
		w, err := domain.NewWinningNumber(n.Tier, n.Number)
		if err != nil {
			return nil, fmt.Errorf("decode cached draw %s: %w", id, err)
		}
		draw.Numbers = append(draw.Numbers, w)
	}
	return draw, nil
}

// Set stores the draw for ttl. A zero ttl keeps the entry until evicted.
func (c *DrawCache) Set(ctx context.Context, draw *domain.Draw, ttl time.Duration) error {
	rec := cachedDraw{
		ID:        draw.ID,
		Name:      draw.Name,
		HeldOn:    draw.HeldOn,
		CreatedAt: draw.CreatedAt,
		Numbers:   make([]cachedNumber, len(draw.Numbers)),
	}
	for i, w := range draw.Numbers {
		rec.Numbers[i] = cachedNumber{Tier: w.Tier(), Number: w.Number()}
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode draw %s: %w", draw.ID, err)
	}
	if err := c.client.Set(ctx, c.prefix+draw.ID.String(), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis draw set: %w", err)
	}
	return nil
}

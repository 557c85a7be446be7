package service

import (
	"context"
	"fmt"
	"time"

	"lottery-awards/internal/core/domain"
	"lottery-awards/internal/core/ports"
	"lottery-awards/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// drawLoader reads draws cache-aside: Redis first, PostgreSQL on a miss.
// Cache failures are logged and never fail the read.
type drawLoader struct {
	repo  ports.DrawRepository
	cache ports.DrawCache
	ttl   time.Duration
	log   zerolog.Logger
}

func (l drawLoader) load(ctx context.Context, id uuid.UUID) (*domain.Draw, error) {
	cached, err := l.cache.Get(ctx, id)
	if err != nil {
		l.log.Warn().Err(err).Str("draw_id", id.String()).Msg("draw cache read failed, falling through to DB")
	} else if cached != nil {
		return cached, nil
	}

	draw, err := l.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get draw: %w", err))
	}
	if draw == nil {
		return nil, apperror.ErrDrawNotFound()
	}

	l.store(ctx, draw)
	return draw, nil
}

func (l drawLoader) store(ctx context.Context, draw *domain.Draw) {
	if err := l.cache.Set(ctx, draw, l.ttl); err != nil {
		l.log.Warn().Err(err).Str("draw_id", draw.ID.String()).Msg("failed to cache draw in redis")
	}
}

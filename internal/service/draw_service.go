package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"lottery-awards/internal/core/domain"
	"lottery-awards/internal/core/ports"
	"lottery-awards/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	idempotencyTTL  = 24 * time.Hour
)

// drawService implements ports.DrawService.
type drawService struct {
	repo       ports.DrawRepository
	idempRepo  ports.IdempotencyRepository
	idempCache ports.IdempotencyCache
	auditRepo  ports.AuditRepository
	transactor ports.DBTransactor
	metrics    ports.MetricsRecorder
	draws      drawLoader
	log        zerolog.Logger
}

// NewDrawService creates a new draw service.
func NewDrawService(
	repo ports.DrawRepository,
	cache ports.DrawCache,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	auditRepo ports.AuditRepository,
	transactor ports.DBTransactor,
	metrics ports.MetricsRecorder,
	cacheTTL time.Duration,
	log zerolog.Logger,
) ports.DrawService {
	return &drawService{
		repo:       repo,
		idempRepo:  idempRepo,
		idempCache: idempCache,
		auditRepo:  auditRepo,
		transactor: transactor,
		metrics:    metrics,
		draws:      drawLoader{repo: repo, cache: cache, ttl: cacheTTL, log: log},
		log:        log,
	}
}

// PublishDraw validates the announced numbers and stores them atomically along
// with an audit entry. A request carrying an idempotency key that was already
// used by the same operator returns the draw created the first time.
func (s *drawService) PublishDraw(ctx context.Context, req ports.PublishDrawRequest) (*domain.Draw, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("draw name is required")
	}

	draw := &domain.Draw{
		ID:        uuid.New(),
		Name:      name,
		HeldOn:    req.HeldOn,
		Numbers:   req.Numbers,
		CreatedAt: time.Now().UTC(),
	}
	if err := draw.Validate(); err != nil {
		if errors.Is(err, domain.ErrTierCapExceeded) {
			return nil, apperror.ErrTierCapExceeded(err)
		}
		return nil, apperror.ErrInvalidDraw(err)
	}

	var idempKey string
	if req.IdempotencyKey != "" {
		idempKey = domain.BuildPublishIdempotencyKey(req.OperatorID, req.IdempotencyKey)
		prior, err := s.publishedWithKey(ctx, idempKey)
		if err != nil || prior != nil {
			return prior, err
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.repo.Create(ctx, dbTx, draw); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create draw: %w", err))
	}

	if idempKey != "" {
		rec := &domain.IdempotencyRecord{Key: idempKey, DrawID: draw.ID, CreatedAt: draw.CreatedAt}
		if err := s.idempRepo.Create(ctx, dbTx, rec); err != nil {
			if errors.Is(err, domain.ErrIdempotencyKeyExists) {
				// A concurrent request with the same key committed first.
				_ = dbTx.Rollback(ctx)
				prior, err := s.publishedWithKey(ctx, idempKey)
				if err == nil && prior == nil {
					err = apperror.InternalError(fmt.Errorf("idempotency key %q claimed but not readable", idempKey))
				}
				return prior, err
			}
			return nil, apperror.InternalError(fmt.Errorf("save idempotency key: %w", err))
		}
	}

	entry, err := publishAuditEntry(draw, req)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if err := s.auditRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save audit log: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if idempKey != "" {
		if err := s.idempCache.Set(ctx, idempKey, draw.ID, idempotencyTTL); err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency in redis")
		}
	}
	s.draws.store(ctx, draw)
	s.metrics.DrawPublished(draw)

	s.log.Info().
		Str("draw_id", draw.ID.String()).
		Str("name", draw.Name).
		Str("operator", req.OperatorID).
		Int("numbers", len(draw.Numbers)).
		Msg("draw published")

	return draw, nil
}

// publishedWithKey returns the draw an earlier publish stored under key, or
// nil, nil if the key is unused. Redis is checked first, PostgreSQL second.
func (s *drawService) publishedWithKey(ctx context.Context, key string) (*domain.Draw, error) {
	drawID, err := s.idempCache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
	}

	if drawID == nil {
		rec, err := s.idempRepo.Get(ctx, key)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
		}
		if rec == nil {
			return nil, nil
		}
		drawID = &rec.DrawID
	}

	draw, err := s.draws.load(ctx, *drawID)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("key", key).Str("draw_id", draw.ID.String()).Msg("publish replayed")
	return draw, nil
}

func publishAuditEntry(draw *domain.Draw, req ports.PublishDrawRequest) (*domain.AuditLog, error) {
	details, err := json.Marshal(map[string]interface{}{
		"name":    draw.Name,
		"held_on": draw.HeldOn.Format("2006-01-02"),
		"numbers": len(draw.Numbers),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal audit details: %w", err)
	}
	return &domain.AuditLog{
		ID:           uuid.New(),
		OperatorID:   req.OperatorID,
		Action:       domain.AuditActionPublishDraw,
		ResourceType: "draw",
		ResourceID:   draw.ID.String(),
		Details:      string(details),
		IPAddress:    req.ClientIP,
		CreatedAt:    draw.CreatedAt,
	}, nil
}

// GetDraw returns a draw with its winning numbers.
func (s *drawService) GetDraw(ctx context.Context, id uuid.UUID) (*domain.Draw, error) {
	return s.draws.load(ctx, id)
}

// ListDraws returns a page of draw summaries, most recent first.
func (s *drawService) ListDraws(ctx context.Context, params ports.DrawListParams) ([]ports.DrawSummary, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > maxPageSize {
		params.PageSize = defaultPageSize
	}

	draws, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return draws, total, nil
}

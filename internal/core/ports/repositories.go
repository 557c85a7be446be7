package ports

import (
	"context"
	"time"

	"lottery-awards/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DrawRepository defines persistence operations for published draws.
type DrawRepository interface {
	// Create stores the draw and its winning numbers inside tx.
	Create(ctx context.Context, tx pgx.Tx, draw *domain.Draw) error
	// GetByID returns nil, nil when the draw does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draw, error)
	List(ctx context.Context, params DrawListParams) ([]DrawSummary, int64, error)
}

// DrawListParams holds pagination for listing draws.
type DrawListParams struct {
	Page     int
	PageSize int
}

// DrawSummary is a draw without its winning numbers.
type DrawSummary struct {
	ID          uuid.UUID
	Name        string
	HeldOn      time.Time
	NumberCount int
	CreatedAt   time.Time
}

// DrawCache is the Redis-layer read-through cache for draws (fast path).
type DrawCache interface {
	// Get returns nil, nil on a cache miss.
	Get(ctx context.Context, id uuid.UUID) (*domain.Draw, error)
	Set(ctx context.Context, draw *domain.Draw, ttl time.Duration) error
}

// IdempotencyRepository persists publish idempotency keys (durable layer).
type IdempotencyRepository interface {
	// Create returns domain.ErrIdempotencyKeyExists when the key is already stored.
	Create(ctx context.Context, tx pgx.Tx, rec *domain.IdempotencyRecord) error
	// Get returns nil, nil when the key is unknown.
	Get(ctx context.Context, key string) (*domain.IdempotencyRecord, error)
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	// Get returns nil, nil on a cache miss.
	Get(ctx context.Context, key string) (*uuid.UUID, error)
	Set(ctx context.Context, key string, drawID uuid.UUID, ttl time.Duration) error
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

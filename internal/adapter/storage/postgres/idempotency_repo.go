package postgres

import (
	"context"
	"errors"
	"fmt"

	"lottery-awards/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// IdempotencyRepo implements ports.IdempotencyRepository.
type IdempotencyRepo struct {
	pool Pool
}

// NewIdempotencyRepo creates a new IdempotencyRepo.
func NewIdempotencyRepo(pool Pool) *IdempotencyRepo {
	return &IdempotencyRepo{pool: pool}
}

// Create claims the key for a draw within tx. A key that is already claimed
// yields domain.ErrIdempotencyKeyExists.
func (r *IdempotencyRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.IdempotencyRecord) error {
	query := `INSERT INTO publish_idempotency_keys (key, draw_id, created_at) VALUES ($1, $2, $3)`

	if _, err := tx.Exec(ctx, query, rec.Key, rec.DrawID, rec.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrIdempotencyKeyExists
		}
		return fmt.Errorf("insert idempotency key: %w", err)
	}
	return nil
}

// Get fetches an idempotency record by key.
func (r *IdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyRecord, error) {
	query := `SELECT key, draw_id, created_at FROM publish_idempotency_keys WHERE key = $1`

	rec := &domain.IdempotencyRecord{}
	err := r.pool.QueryRow(ctx, query, key).Scan(&rec.Key, &rec.DrawID, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get idempotency key: %w", err)
	}
	return rec, nil
}

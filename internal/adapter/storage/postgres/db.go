package postgres

import (
	"context"
	"fmt"

	"lottery-awards/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// NewPool opens a pgx connection pool and verifies connectivity.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MinConns = cfg.MinConns
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("dbname", cfg.DBName).
		Int32("max_conns", poolCfg.MaxConns).
		Msg("PostgreSQL connection pool established")

	return pool, nil
}

// schema creates the draw, idempotency and audit tables. Statements are idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS draws (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		held_on    TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS winning_numbers (
		draw_id  UUID NOT NULL REFERENCES draws(id) ON DELETE CASCADE,
		position SMALLINT NOT NULL,
		tier     TEXT NOT NULL CHECK (tier IN ('first', 'second', 'third', 'fourth', 'fifth', 'little')),
		number   INTEGER NOT NULL CHECK (number BETWEEN 0 AND 99999),
		PRIMARY KEY (draw_id, position),
		UNIQUE (draw_id, number)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_draws_held_on ON draws (held_on DESC, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS publish_idempotency_keys (
		key        TEXT PRIMARY KEY,
		draw_id    UUID NOT NULL REFERENCES draws(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id            UUID PRIMARY KEY,
		operator_id   TEXT NOT NULL,
		action        TEXT NOT NULL,
		resource_type TEXT NOT NULL,
		resource_id   TEXT NOT NULL,
		details       JSONB NOT NULL DEFAULT '{}',
		ip_address    TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_logs_operator ON audit_logs (operator_id, created_at DESC)`,
}

// EnsureSchema applies the draw schema.
func EnsureSchema(ctx context.Context, pool Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}

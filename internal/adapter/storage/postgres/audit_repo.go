package postgres

import (
	"context"
	"fmt"

	"lottery-awards/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct{}

// NewAuditRepo creates a PostgreSQL-backed audit repository. Entries are written
// on the caller's transaction, so they commit or roll back with the audited change.
func NewAuditRepo() *AuditRepo {
	return &AuditRepo{}
}

// Create inserts entry within tx.
func (r *AuditRepo) Create(ctx context.Context, tx pgx.Tx, entry *domain.AuditLog) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO audit_logs (id, operator_id, action, resource_type, resource_id, details, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.OperatorID, string(entry.Action), entry.ResourceType,
		entry.ResourceID, entry.Details, entry.IPAddress, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

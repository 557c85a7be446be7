package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionPublishDraw AuditAction = "PUBLISH_DRAW"
)

// AuditLog records who performed an action on which resource.
type AuditLog struct {
	ID           uuid.UUID
	OperatorID   string
	Action       AuditAction
	ResourceType string
	ResourceID   string
	Details      string // JSON object
	IPAddress    string
	CreatedAt    time.Time
}

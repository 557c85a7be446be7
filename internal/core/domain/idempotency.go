package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyRecord maps a client-supplied publish key to the draw it created.
type IdempotencyRecord struct {
	Key       string
	DrawID    uuid.UUID
	CreatedAt time.Time
}

// BuildPublishIdempotencyKey scopes a client key to the operator that sent it.
func BuildPublishIdempotencyKey(operatorID, clientKey string) string {
	return operatorID + ":" + clientKey
}

package ports

import (
	"context"
	"time"

	"lottery-awards/internal/core/domain"

	"github.com/google/uuid"
)

// TokenService issues and validates operator tokens for draw publishing.
type TokenService interface {
	Generate(operatorID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	OperatorID string
}

// MetricsRecorder receives award engine events for monitoring.
type MetricsRecorder interface {
	DrawPublished(draw *domain.Draw)
	TicketChecked(results []domain.DerivedResult, total domain.Amount)
	PayoutSwept(summary domain.PayoutSummary, elapsed time.Duration)
}

// --- Service Ports (Business Logic) ---

// DrawService manages the winning numbers announced for each draw.
type DrawService interface {
	PublishDraw(ctx context.Context, req PublishDrawRequest) (*domain.Draw, error)
	GetDraw(ctx context.Context, id uuid.UUID) (*domain.Draw, error)
	ListDraws(ctx context.Context, params DrawListParams) ([]DrawSummary, int64, error)
}

// PublishDrawRequest holds validated input for publishing a draw.
type PublishDrawRequest struct {
	Name           string
	HeldOn         time.Time
	Numbers        []domain.WinningNumber
	OperatorID     string
	ClientIP       string
	IdempotencyKey string // optional; scoped to OperatorID
}

// AwardService computes prizes for played tickets.
type AwardService interface {
	CheckTicket(ctx context.Context, req CheckTicketRequest) (*TicketCheck, error)
	PayoutReport(ctx context.Context, drawID uuid.UUID, stake *domain.Amount) (*PayoutReport, error)
}

// CheckTicketRequest holds input for checking one ticket.
type CheckTicketRequest struct {
	DrawID uuid.UUID
	Number domain.LotteryNumber
	Stake  *domain.Amount // nil = nominal full share
}

// TicketCheck is the outcome of checking a ticket against a draw.
type TicketCheck struct {
	DrawID  uuid.UUID
	Ticket  domain.PlayedTicket
	Results []domain.DerivedResult
	Total   domain.Amount
}

// PayoutReport is the total payout of a draw across every playable number.
type PayoutReport struct {
	DrawID  uuid.UUID
	Stake   domain.Amount
	Summary domain.PayoutSummary
	Elapsed time.Duration
}

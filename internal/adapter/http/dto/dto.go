package dto

import (
	"time"

	"lottery-awards/internal/core/domain"
	"lottery-awards/internal/core/ports"
)

// DateLayout is the wire format of draw dates.
const DateLayout = "2006-01-02"

// WinningNumberRequest is one announced number in a publish request.
type WinningNumberRequest struct {
	Number *int64 `json:"number" binding:"required,lottery_number"`
	Tier   string `json:"tier" binding:"required,prize_tier"`
}

// PublishDrawRequest is the request body for publishing a draw.
type PublishDrawRequest struct {
	Name    string                 `json:"name" binding:"required,max=100"`
	HeldOn  string                 `json:"held_on" binding:"required,datetime=2006-01-02"`
	Numbers []WinningNumberRequest `json:"numbers" binding:"required,min=1,max=1013,dive"`
}

// CheckTicketRequest is the request body for checking a ticket.
type CheckTicketRequest struct {
	Number     *int64 `json:"number" binding:"required,lottery_number"`
	StakeCents *int64 `json:"stake_cents,omitempty" binding:"omitempty,gt=0"`
}

// PayoutQuery holds the query parameters of a payout report.
type PayoutQuery struct {
	StakeCents *int64 `form:"stake_cents" binding:"omitempty,gt=0"`
}

// ListDrawsQuery holds pagination query parameters.
type ListDrawsQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// AmountResponse renders an amount both exactly and for display.
type AmountResponse struct {
	Cents   int64  `json:"cents"`
	Display string `json:"display"`
}

// NewAmountResponse renders an amount for the wire.
func NewAmountResponse(a domain.Amount) AmountResponse {
	return AmountResponse{Cents: a.Minor(), Display: a.String()}
}

// RuleAwardResponse is the amount one match rule pays.
type RuleAwardResponse struct {
	Rule   string         `json:"rule"`
	Amount AmountResponse `json:"amount"`
}

// PrizeTierResponse is one row of the published prize table, per nominal share.
type PrizeTierResponse struct {
	Tier      string              `json:"tier"`
	WinnerCap int                 `json:"winner_cap"`
	Awards    []RuleAwardResponse `json:"awards"`
}

// PrizeTableResponse is the full prize table.
type PrizeTableResponse struct {
	NominalStake AmountResponse      `json:"nominal_stake"`
	Tiers        []PrizeTierResponse `json:"tiers"`
}

// NewPrizeTableResponse converts the tier specs into the published prize table.
func NewPrizeTableResponse(specs []domain.TierSpec) PrizeTableResponse {
	resp := PrizeTableResponse{
		NominalStake: NewAmountResponse(domain.NominalStake()),
		Tiers:        make([]PrizeTierResponse, 0, len(specs)),
	}
	for _, s := range specs {
		row := PrizeTierResponse{Tier: s.Tier().String(), WinnerCap: s.WinnerCap()}
		for _, rule := range domain.AllRules {
			if base := s.BaseAward(rule); !base.IsZero() {
				row.Awards = append(row.Awards, RuleAwardResponse{Rule: rule.String(), Amount: NewAmountResponse(base)})
			}
		}
		resp.Tiers = append(resp.Tiers, row)
	}
	return resp
}

// WinningNumberResponse is one announced number with its tier.
type WinningNumberResponse struct {
	Number string `json:"number"`
	Tier   string `json:"tier"`
}

// NewWinningNumberResponse converts a winning number, zero-padding it to five digits.
func NewWinningNumberResponse(w domain.WinningNumber) WinningNumberResponse {
	return WinningNumberResponse{Number: w.Number().String(), Tier: w.Tier().String()}
}

// DrawResponse is a draw with every announced number.
type DrawResponse struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	HeldOn    string                  `json:"held_on"`
	CreatedAt string                  `json:"created_at"`
	Numbers   []WinningNumberResponse `json:"numbers"`
}

// NewDrawResponse converts a draw and its numbers in announcement order.
func NewDrawResponse(d *domain.Draw) DrawResponse {
	resp := DrawResponse{
		ID:        d.ID.String(),
		Name:      d.Name,
		HeldOn:    d.HeldOn.Format(DateLayout),
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
		Numbers:   make([]WinningNumberResponse, len(d.Numbers)),
	}
	for i, w := range d.Numbers {
		resp.Numbers[i] = NewWinningNumberResponse(w)
	}
	return resp
}

// DrawSummaryResponse is a draw listed without its numbers.
type DrawSummaryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	HeldOn      string `json:"held_on"`
	NumberCount int    `json:"number_count"`
	CreatedAt   string `json:"created_at"`
}

// DrawListResponse wraps a paginated draw list.
type DrawListResponse struct {
	Items      []DrawSummaryResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}

// NewDrawListResponse builds one page of draw summaries.
func NewDrawListResponse(items []ports.DrawSummary, total int64, page, pageSize int) DrawListResponse {
	resp := DrawListResponse{
		Items:    make([]DrawSummaryResponse, len(items)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	if pageSize > 0 {
		resp.TotalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	for i, s := range items {
		resp.Items[i] = DrawSummaryResponse{
			ID:          s.ID.String(),
			Name:        s.Name,
			HeldOn:      s.HeldOn.Format(DateLayout),
			NumberCount: s.NumberCount,
			CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return resp
}

// DerivedResultResponse lists what a ticket earned against one winning number.
type DerivedResultResponse struct {
	WinningNumber WinningNumberResponse `json:"winning_number"`
	Awards        []RuleAwardResponse   `json:"awards"`
	Total         AmountResponse        `json:"total"`
}

// TicketCheckResponse is the result of checking a ticket against a draw.
type TicketCheckResponse struct {
	DrawID  string                  `json:"draw_id"`
	Number  string                  `json:"number"`
	Stake   AmountResponse          `json:"stake"`
	Results []DerivedResultResponse `json:"results"`
	Total   AmountResponse          `json:"total"`
}

// NewTicketCheckResponse converts a ticket check with its per-number results.
func NewTicketCheckResponse(tc *ports.TicketCheck) TicketCheckResponse {
	resp := TicketCheckResponse{
		DrawID:  tc.DrawID.String(),
		Number:  tc.Ticket.Number().String(),
		Stake:   NewAmountResponse(tc.Ticket.Stake()),
		Results: make([]DerivedResultResponse, 0, len(tc.Results)),
		Total:   NewAmountResponse(tc.Total),
	}
	for _, r := range tc.Results {
		dr := DerivedResultResponse{
			WinningNumber: NewWinningNumberResponse(r.WinningNumber),
			Awards:        make([]RuleAwardResponse, len(r.Awards)),
			Total:         NewAmountResponse(r.Total()),
		}
		for i, a := range r.Awards {
			dr.Awards[i] = RuleAwardResponse{Rule: a.Rule.String(), Amount: NewAmountResponse(a.Amount)}
		}
		resp.Results = append(resp.Results, dr)
	}
	return resp
}

// PayoutReportResponse summarizes the payout of every number in a draw.
type PayoutReportResponse struct {
	DrawID         string         `json:"draw_id"`
	Stake          AmountResponse `json:"stake"`
	NumbersChecked int64          `json:"numbers_checked"`
	WinningTickets int64          `json:"winning_tickets"`
	Total          AmountResponse `json:"total"`
	Largest        AmountResponse `json:"largest"`
	LargestNumber  *string        `json:"largest_number,omitempty"`
	ElapsedMS      int64          `json:"elapsed_ms"`
}

// NewPayoutReportResponse converts a payout report.
func NewPayoutReportResponse(r *ports.PayoutReport) PayoutReportResponse {
	resp := PayoutReportResponse{
		DrawID:         r.DrawID.String(),
		Stake:          NewAmountResponse(r.Stake),
		NumbersChecked: r.Summary.NumbersChecked,
		WinningTickets: r.Summary.WinningTickets,
		Total:          NewAmountResponse(r.Summary.Total),
		Largest:        NewAmountResponse(r.Summary.Largest),
		ElapsedMS:      r.Elapsed.Milliseconds(),
	}
	if !r.Summary.Largest.IsZero() {
		n := r.Summary.LargestNumber.String()
		resp.LargestNumber = &n
	}
	return resp
}

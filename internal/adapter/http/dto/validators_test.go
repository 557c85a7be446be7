package dto

import (
	"testing"
	"time"

	"lottery-awards/internal/core/domain"
	"lottery-awards/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	RegisterValidators(v)
	return v
}

func int64Ptr(v int64) *int64 { return &v }

func TestCheckTicketRequest_Validation(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name  string
		req   CheckTicketRequest
		valid bool
	}{
		{"zero is a valid number", CheckTicketRequest{Number: int64Ptr(0)}, true},
		{"highest number", CheckTicketRequest{Number: int64Ptr(99999)}, true},
		{"with stake", CheckTicketRequest{Number: int64Ptr(12345), StakeCents: int64Ptr(2000)}, true},
		{"missing number", CheckTicketRequest{}, false},
		{"six digits", CheckTicketRequest{Number: int64Ptr(100000)}, false},
		{"negative", CheckTicketRequest{Number: int64Ptr(-1)}, false},
		{"zero stake", CheckTicketRequest{Number: int64Ptr(1), StakeCents: int64Ptr(0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPublishDrawRequest_Validation(t *testing.T) {
	v := newValidator()
	valid := func() PublishDrawRequest {
		return PublishDrawRequest{
			Name:   "Weekly draw",
			HeldOn: "2026-10-17",
			Numbers: []WinningNumberRequest{
				{Number: int64Ptr(12345), Tier: "first"},
				{Number: int64Ptr(7), Tier: "Little"},
			},
		}
	}

	require.NoError(t, v.Struct(valid()))

	tests := []struct {
		name   string
		mutate func(*PublishDrawRequest)
	}{
		{"bad tier", func(r *PublishDrawRequest) { r.Numbers[0].Tier = "jackpot" }},
		{"bad number", func(r *PublishDrawRequest) { r.Numbers[1].Number = int64Ptr(123456) }},
		{"missing number", func(r *PublishDrawRequest) { r.Numbers[1].Number = nil }},
		{"bad date", func(r *PublishDrawRequest) { r.HeldOn = "17/10/2026" }},
		{"no numbers", func(r *PublishDrawRequest) { r.Numbers = nil }},
		{"no name", func(r *PublishDrawRequest) { r.Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			assert.Error(t, v.Struct(req))
		})
	}
}

func TestNewPrizeTableResponse(t *testing.T) {
	resp := NewPrizeTableResponse(domain.PrizeTable())

	assert.Equal(t, "200.00€", resp.NominalStake.Display)
	require.Len(t, resp.Tiers, 6)

	first := resp.Tiers[0]
	assert.Equal(t, "first", first.Tier)
	assert.Equal(t, 1, first.WinnerCap)
	require.Len(t, first.Awards, 5)
	assert.Equal(t, RuleAwardResponse{
		Rule:   "exact_match",
		Amount: AmountResponse{Cents: 400_000_000, Display: "4000000.00€"},
	}, first.Awards[0])

	fourth := resp.Tiers[3]
	require.Len(t, fourth.Awards, 2)
	assert.Equal(t, "same_hundred", fourth.Awards[1].Rule)
}

func TestNewTicketCheckResponse(t *testing.T) {
	drawID := uuid.New()
	w := domain.MustWinningNumber(domain.TierFirst, 12345)
	ticket := domain.MustPlayedTicket(12346, domain.NominalStake())

	resp := NewTicketCheckResponse(&ports.TicketCheck{
		DrawID: drawID,
		Ticket: ticket,
		Results: []domain.DerivedResult{{
			WinningNumber: w,
			Ticket:        ticket,
			Awards: []domain.Award{
				{Rule: domain.RuleAdjacent, Amount: domain.Euros(20_000)},
				{Rule: domain.RuleSameHundred, Amount: domain.Euros(1_000)},
			},
		}},
		Total: domain.Euros(21_000),
	})

	assert.Equal(t, drawID.String(), resp.DrawID)
	assert.Equal(t, "12346", resp.Number)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, WinningNumberResponse{Number: "12345", Tier: "first"}, resp.Results[0].WinningNumber)
	assert.Equal(t, "21000.00€", resp.Results[0].Total.Display)
	assert.Equal(t, int64(2_100_000), resp.Total.Cents)
}

func TestNewPayoutReportResponse(t *testing.T) {
	empty := NewPayoutReportResponse(&ports.PayoutReport{DrawID: uuid.New(), Stake: domain.NominalStake()})
	assert.Nil(t, empty.LargestNumber)

	resp := NewPayoutReportResponse(&ports.PayoutReport{
		DrawID: uuid.New(),
		Stake:  domain.NominalStake(),
		Summary: domain.PayoutSummary{
			NumbersChecked: 100_000,
			WinningTickets: 1,
			Total:          domain.Euros(60_000),
			Largest:        domain.Euros(60_000),
			LargestNumber:  42,
		},
		Elapsed: 250 * time.Millisecond,
	})
	require.NotNil(t, resp.LargestNumber)
	assert.Equal(t, "00042", *resp.LargestNumber)
	assert.Equal(t, int64(250), resp.ElapsedMS)
}

func TestNewPayoutReportResponse_NegativeStakeHasNoLargestNumber(t *testing.T) {
	resp := NewPayoutReportResponse(&ports.PayoutReport{
		DrawID: uuid.New(),
		Stake:  domain.Cents(-20_000),
		Summary: domain.PayoutSummary{
			NumbersChecked: 100_000,
			WinningTickets: 10_090,
			Total:          domain.Euros(-7_137_800),
		},
	})
	assert.Nil(t, resp.LargestNumber)
	assert.Equal(t, int64(0), resp.Largest.Cents)
}

func TestNewDrawListResponse_TotalPages(t *testing.T) {
	resp := NewDrawListResponse(nil, 41, 1, 20)
	assert.Equal(t, 3, resp.TotalPages)
	assert.NotNil(t, resp.Items)
}

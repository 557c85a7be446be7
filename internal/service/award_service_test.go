package service

import (
	"context"
	"math"
	"testing"

	"lottery-awards/internal/core/domain"
	"lottery-awards/internal/core/ports"
	"lottery-awards/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type awardTestDeps struct {
	svc     ports.AwardService
	repo    *mocks.MockDrawRepository
	cache   *mocks.MockDrawCache
	metrics *mocks.MockMetricsRecorder
}

func setupAwardService(t *testing.T, workers int) *awardTestDeps {
	ctrl := gomock.NewController(t)
	d := &awardTestDeps{
		repo:    mocks.NewMockDrawRepository(ctrl),
		cache:   mocks.NewMockDrawCache(ctrl),
		metrics: mocks.NewMockMetricsRecorder(ctrl),
	}
	d.svc = NewAwardService(d.repo, d.cache, d.metrics, testCacheTTL, workers, zerolog.Nop())
	return d
}

func firstPrizeDraw() *domain.Draw {
	return &domain.Draw{
		ID:      uuid.New(),
		Name:    "single first prize",
		Numbers: []domain.WinningNumber{domain.MustWinningNumber(domain.TierFirst, 12345)},
	}
}

func amountPtr(a domain.Amount) *domain.Amount { return &a }

// ==================== CheckTicket Tests ====================

func TestAwardService_CheckTicket_NominalStake(t *testing.T) {
	d := setupAwardService(t, 1)
	ctx := context.Background()
	draw := firstPrizeDraw()

	d.cache.EXPECT().Get(ctx, draw.ID).Return(draw, nil)
	d.metrics.EXPECT().TicketChecked(gomock.Len(1), domain.Euros(21_000))

	check, err := d.svc.CheckTicket(ctx, ports.CheckTicketRequest{DrawID: draw.ID, Number: 12346})
	require.NoError(t, err)
	assert.Equal(t, draw.ID, check.DrawID)
	assert.Equal(t, domain.NominalStake(), check.Ticket.Stake())
	require.Len(t, check.Results, 1)
	assert.Equal(t, []domain.Award{
		{Rule: domain.RuleAdjacent, Amount: domain.Euros(20_000)},
		{Rule: domain.RuleSameHundred, Amount: domain.Euros(1_000)},
	}, check.Results[0].Awards)
	assert.Equal(t, domain.Euros(21_000), check.Total)
}

func TestAwardService_CheckTicket_ScaledStake(t *testing.T) {
	d := setupAwardService(t, 1)
	ctx := context.Background()
	draw := firstPrizeDraw()

	d.cache.EXPECT().Get(ctx, draw.ID).Return(draw, nil)
	d.metrics.EXPECT().TicketChecked(gomock.Any(), domain.Euros(10_500))

	check, err := d.svc.CheckTicket(ctx, ports.CheckTicketRequest{
		DrawID: draw.ID,
		Number: 12346,
		Stake:  amountPtr(domain.Euros(100)),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Euros(10_500), check.Total)
}

func TestAwardService_CheckTicket_NoAward(t *testing.T) {
	d := setupAwardService(t, 1)
	ctx := context.Background()
	draw := firstPrizeDraw()

	d.cache.EXPECT().Get(ctx, draw.ID).Return(draw, nil)
	d.metrics.EXPECT().TicketChecked(gomock.Len(0), domain.Amount{})

	check, err := d.svc.CheckTicket(ctx, ports.CheckTicketRequest{DrawID: draw.ID, Number: 98760})
	require.NoError(t, err)
	assert.Empty(t, check.Results)
	assert.True(t, check.Total.IsZero())
}

func TestAwardService_CheckTicket_NumberOutOfRange(t *testing.T) {
	d := setupAwardService(t, 1)

	check, err := d.svc.CheckTicket(context.Background(), ports.CheckTicketRequest{
		DrawID: uuid.New(),
		Number: domain.MaxLotteryNumber + 1,
	})
	assert.Nil(t, check)
	assertAppError(t, err, "TKT_001")
}

func TestAwardService_CheckTicket_DrawNotFound(t *testing.T) {
	d := setupAwardService(t, 1)
	ctx := context.Background()
	id := uuid.New()

	d.cache.EXPECT().Get(ctx, id).Return(nil, nil)
	d.repo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	_, err := d.svc.CheckTicket(ctx, ports.CheckTicketRequest{DrawID: id, Number: 1})
	assertAppError(t, err, "DRAW_001")
}

func TestAwardService_CheckTicket_Overflow(t *testing.T) {
	d := setupAwardService(t, 1)
	ctx := context.Background()
	draw := firstPrizeDraw()

	d.cache.EXPECT().Get(ctx, draw.ID).Return(draw, nil)

	_, err := d.svc.CheckTicket(ctx, ports.CheckTicketRequest{
		DrawID: draw.ID,
		Number: 12345,
		Stake:  amountPtr(domain.Cents(math.MaxInt64)),
	})
	assertAppError(t, err, "CALC_001")
}

// ==================== PayoutReport Tests ====================

func TestAwardService_PayoutReport_MatchesAcrossWorkerCounts(t *testing.T) {
	for _, workers := range []int{1, 3, 4, 7} {
		d := setupAwardService(t, workers)
		ctx := context.Background()
		draw := firstPrizeDraw()

		d.cache.EXPECT().Get(ctx, draw.ID).Return(draw, nil)
		d.metrics.EXPECT().PayoutSwept(gomock.Any(), gomock.Any())

		report, err := d.svc.PayoutReport(ctx, draw.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.NominalStake(), report.Stake)
		assert.Equal(t, int64(100_000), report.Summary.NumbersChecked, "workers=%d", workers)
		assert.Equal(t, int64(10_090), report.Summary.WinningTickets, "workers=%d", workers)
		assert.Equal(t, domain.Euros(7_137_800), report.Summary.Total, "workers=%d", workers)
		assert.Equal(t, domain.Euros(4_000_000), report.Summary.Largest)
		assert.Equal(t, domain.LotteryNumber(12345), report.Summary.LargestNumber)
	}
}

func TestAwardService_PayoutReport_HalfStake(t *testing.T) {
	d := setupAwardService(t, 2)
	ctx := context.Background()
	draw := firstPrizeDraw()

	d.cache.EXPECT().Get(ctx, draw.ID).Return(draw, nil)
	d.metrics.EXPECT().PayoutSwept(gomock.Any(), gomock.Any())

	report, err := d.svc.PayoutReport(ctx, draw.ID, amountPtr(domain.Euros(100)))
	require.NoError(t, err)
	assert.Equal(t, domain.Euros(3_568_900), report.Summary.Total)
}

func TestAwardService_PayoutReport_Cancelled(t *testing.T) {
	d := setupAwardService(t, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	draw := firstPrizeDraw()

	d.cache.EXPECT().Get(ctx, draw.ID).Return(draw, nil)

	report, err := d.svc.PayoutReport(ctx, draw.ID, nil)
	assert.Nil(t, report)
	assertAppError(t, err, "SYS_001")
}

func TestSplitRange(t *testing.T) {
	tests := []struct {
		workers int
		want    int
	}{
		{1, 1},
		{3, 3},
		{4, 4},
		{7, 7},
	}

	for _, tt := range tests {
		shards := splitRange(domain.MaxLotteryNumber, tt.workers)
		require.Len(t, shards, tt.want)

		assert.Equal(t, domain.LotteryNumber(0), shards[0][0])
		assert.Equal(t, domain.MaxLotteryNumber, shards[len(shards)-1][1])
		for i := 1; i < len(shards); i++ {
			assert.Equal(t, shards[i-1][1]+1, shards[i][0], "shards must be contiguous")
		}
	}
}

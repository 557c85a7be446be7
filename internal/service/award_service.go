package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lottery-awards/internal/core/domain"
	"lottery-awards/internal/core/ports"
	"lottery-awards/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// sweepCancelCheck is how often (in numbers) a sweep shard checks for cancellation.
const sweepCancelCheck = 1024

// awardService implements ports.AwardService.
type awardService struct {
	draws   drawLoader
	metrics ports.MetricsRecorder
	workers int
	log     zerolog.Logger
}

// NewAwardService creates a new award service. sweepWorkers bounds the
// parallelism of payout reports.
func NewAwardService(
	repo ports.DrawRepository,
	cache ports.DrawCache,
	metrics ports.MetricsRecorder,
	cacheTTL time.Duration,
	sweepWorkers int,
	log zerolog.Logger,
) ports.AwardService {
	if sweepWorkers < 1 {
		sweepWorkers = 1
	}
	return &awardService{
		draws:   drawLoader{repo: repo, cache: cache, ttl: cacheTTL, log: log},
		metrics: metrics,
		workers: sweepWorkers,
		log:     log,
	}
}

// CheckTicket derives every award the ticket earns in the draw.
func (s *awardService) CheckTicket(ctx context.Context, req ports.CheckTicketRequest) (*ports.TicketCheck, error) {
	stake := domain.NominalStake()
	if req.Stake != nil {
		stake = *req.Stake
	}

	ticket, err := domain.NewPlayedTicket(req.Number, stake)
	if err != nil {
		return nil, apperror.ErrInvalidTicket(err)
	}

	draw, err := s.draws.load(ctx, req.DrawID)
	if err != nil {
		return nil, err
	}

	results, err := draw.Derive(ticket)
	if err != nil {
		return nil, derivationError(err)
	}
	total := domain.GrandTotal(results)

	s.metrics.TicketChecked(results, total)
	s.log.Debug().
		Str("draw_id", draw.ID.String()).
		Str("number", ticket.Number().String()).
		Int64("stake_cents", stake.Minor()).
		Int("results", len(results)).
		Int64("total_cents", total.Minor()).
		Msg("ticket checked")

	return &ports.TicketCheck{
		DrawID:  draw.ID,
		Ticket:  ticket,
		Results: results,
		Total:   total,
	}, nil
}

// PayoutReport plays every number of the lottery against the draw and returns the
// aggregated payout. The range is split into disjoint shards evaluated in parallel.
func (s *awardService) PayoutReport(ctx context.Context, drawID uuid.UUID, stake *domain.Amount) (*ports.PayoutReport, error) {
	perTicket := domain.NominalStake()
	if stake != nil {
		perTicket = *stake
	}

	draw, err := s.draws.load(ctx, drawID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	shards := splitRange(domain.MaxLotteryNumber, s.workers)
	summaries := make([]domain.PayoutSummary, len(shards))

	g, gctx := errgroup.WithContext(ctx)
	for i, shard := range shards {
		g.Go(func() error {
			summary, err := domain.SweepPayouts(draw.Numbers, shard[0], shard[1], perTicket,
				func(n domain.LotteryNumber, _ domain.Amount) error {
					if n%sweepCancelCheck == 0 {
						return gctx.Err()
					}
					return nil
				})
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, apperror.InternalError(fmt.Errorf("payout sweep: %w", err))
		}
		return nil, derivationError(err)
	}

	var total domain.PayoutSummary
	for _, summary := range summaries {
		total = total.Merge(summary)
	}
	elapsed := time.Since(start)

	s.metrics.PayoutSwept(total, elapsed)
	s.log.Info().
		Str("draw_id", draw.ID.String()).
		Int("workers", len(shards)).
		Int64("winning_tickets", total.WinningTickets).
		Int64("total_cents", total.Total.Minor()).
		Dur("elapsed", elapsed).
		Msg("payout report computed")

	return &ports.PayoutReport{
		DrawID:  draw.ID,
		Stake:   perTicket,
		Summary: total,
		Elapsed: elapsed,
	}, nil
}

// splitRange divides [0, last] into at most n contiguous inclusive ranges.
func splitRange(last domain.LotteryNumber, n int) [][2]domain.LotteryNumber {
	size := (int64(last) + int64(n)) / int64(n)
	var shards [][2]domain.LotteryNumber
	for lo := int64(0); lo <= int64(last); lo += size {
		hi := lo + size - 1
		if hi > int64(last) {
			hi = int64(last)
		}
		shards = append(shards, [2]domain.LotteryNumber{domain.LotteryNumber(lo), domain.LotteryNumber(hi)})
	}
	return shards
}

func derivationError(err error) error {
	if errors.Is(err, domain.ErrAmountOverflow) || errors.Is(err, domain.ErrDivisionByZero) {
		return apperror.ErrPayoutOverflow(err)
	}
	return apperror.InternalError(err)
}

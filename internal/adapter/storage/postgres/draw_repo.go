package postgres

import (
	"context"
	"errors"
	"fmt"

	"lottery-awards/internal/core/domain"
	"lottery-awards/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var winningNumberColumns = []string{"draw_id", "position", "tier", "number"}

// DrawRepo implements ports.DrawRepository.
type DrawRepo struct {
	pool Pool
}

// NewDrawRepo creates a new DrawRepo.
func NewDrawRepo(pool Pool) *DrawRepo {
	return &DrawRepo{pool: pool}
}

// Create inserts the draw row and bulk-copies its winning numbers within tx.
func (r *DrawRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.Draw) error {
	query := `INSERT INTO draws (id, name, held_on, created_at) VALUES ($1, $2, $3, $4)`

	if _, err := tx.Exec(ctx, query, d.ID, d.Name, d.HeldOn, d.CreatedAt); err != nil {
		return fmt.Errorf("insert draw: %w", err)
	}

	rows := make([][]any, len(d.Numbers))
	for i, w := range d.Numbers {
		rows[i] = []any{d.ID, int16(i), w.Tier().String(), int32(w.Number())}
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"winning_numbers"}, winningNumberColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy winning numbers: %w", err)
	}
	if copied != int64(len(rows)) {
		return fmt.Errorf("copy winning numbers: wrote %d of %d rows", copied, len(rows))
	}
	return nil
}

// GetByID fetches a draw with its winning numbers in announcement order.
func (r *DrawRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Draw, error) {
	query := `SELECT id, name, held_on, created_at FROM draws WHERE id = $1`

	d := &domain.Draw{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.HeldOn, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get draw by id: %w", err)
	}

	numbers, err := r.winningNumbers(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Numbers = numbers
	return d, nil
}

func (r *DrawRepo) winningNumbers(ctx context.Context, drawID uuid.UUID) ([]domain.WinningNumber, error) {
	query := `SELECT tier, number FROM winning_numbers WHERE draw_id = $1 ORDER BY position`

	rows, err := r.pool.Query(ctx, query, drawID)
	if err != nil {
		return nil, fmt.Errorf("list winning numbers: %w", err)
	}
	defer rows.Close()

	var numbers []domain.WinningNumber
	for rows.Next() {
		var (
			tierName string
			number   int32
		)
		if err := rows.Scan(&tierName, &number); err != nil {
			return nil, fmt.Errorf("scan winning number row: %w", err)
		}
		w, err := decodeWinningNumber(tierName, number)
		if err != nil {
			return nil, fmt.Errorf("draw %s: %w", drawID, err)
		}
		numbers = append(numbers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate winning number rows: %w", err)
	}
	return numbers, nil
}

func decodeWinningNumber(tierName string, number int32) (domain.WinningNumber, error) {
	tier, err := domain.ParseTier(tierName)
	if err != nil {
		return domain.WinningNumber{}, err
	}
	if number < 0 {
		return domain.WinningNumber{}, fmt.Errorf("%w: %d", domain.ErrNumberOutOfRange, number)
	}
	return domain.NewWinningNumber(tier, domain.LotteryNumber(number))
}

// List returns a page of draws, most recently held first.
func (r *DrawRepo) List(ctx context.Context, params ports.DrawListParams) ([]ports.DrawSummary, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM draws`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count draws: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	query := `SELECT d.id, d.name, d.held_on, d.created_at, COUNT(w.number)
		FROM draws d LEFT JOIN winning_numbers w ON w.draw_id = d.id
		GROUP BY d.id
		ORDER BY d.held_on DESC, d.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, params.PageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list draws: %w", err)
	}
	defer rows.Close()

	var draws []ports.DrawSummary
	for rows.Next() {
		var (
			s     ports.DrawSummary
			count int64
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.HeldOn, &s.CreatedAt, &count); err != nil {
			return nil, 0, fmt.Errorf("scan draw row: %w", err)
		}
		s.NumberCount = int(count)
		draws = append(draws, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate draw rows: %w", err)
	}
	return draws, total, nil
}

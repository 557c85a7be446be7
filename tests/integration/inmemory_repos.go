package integration

import (
	"context"
	"errors"
	"sort"
	"sync"

	"lottery-awards/internal/core/domain"
	"lottery-awards/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// --- In-Memory Draw Repo ---

type inMemoryDrawRepo struct {
	mu    sync.RWMutex
	draws map[uuid.UUID]*domain.Draw
}

func newInMemoryDrawRepo() *inMemoryDrawRepo {
	return &inMemoryDrawRepo{draws: make(map[uuid.UUID]*domain.Draw)}
}

// Create stages the draw on tx; it becomes visible when tx commits.
func (r *inMemoryDrawRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.Draw) error {
	stx, ok := tx.(*stagingTx)
	if !ok {
		return errors.New("in-memory repo needs a staging tx")
	}
	stored := *d
	stored.Numbers = append([]domain.WinningNumber(nil), d.Numbers...)
	stx.onCommit = append(stx.onCommit, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.draws[stored.ID] = &stored
	})
	return nil
}

func (r *inMemoryDrawRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Draw, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.draws[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *inMemoryDrawRepo) List(ctx context.Context, params ports.DrawListParams) ([]ports.DrawSummary, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]ports.DrawSummary, 0, len(r.draws))
	for _, d := range r.draws {
		all = append(all, ports.DrawSummary{
			ID:          d.ID,
			Name:        d.Name,
			HeldOn:      d.HeldOn,
			NumberCount: len(d.Numbers),
			CreatedAt:   d.CreatedAt,
		})
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].HeldOn.Equal(all[j].HeldOn) {
			return all[i].HeldOn.After(all[j].HeldOn)
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := int64(len(all))
	start := (params.Page - 1) * params.PageSize
	if start >= len(all) {
		return []ports.DrawSummary{}, total, nil
	}
	end := start + params.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *inMemoryDrawRepo) remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.draws, id)
}

func (r *inMemoryDrawRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.draws)
}

// --- In-Memory Idempotency Repo ---

type inMemoryIdempotencyRepo struct {
	mu   sync.RWMutex
	keys map[string]*domain.IdempotencyRecord
}

func newInMemoryIdempotencyRepo() *inMemoryIdempotencyRepo {
	return &inMemoryIdempotencyRepo{keys: make(map[string]*domain.IdempotencyRecord)}
}

func (r *inMemoryIdempotencyRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.IdempotencyRecord) error {
	stx, ok := tx.(*stagingTx)
	if !ok {
		return errors.New("in-memory repo needs a staging tx")
	}
	r.mu.RLock()
	_, exists := r.keys[rec.Key]
	r.mu.RUnlock()
	if exists {
		return domain.ErrIdempotencyKeyExists
	}
	stored := *rec
	stx.onCommit = append(stx.onCommit, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.keys[stored.Key] = &stored
	})
	return nil
}

func (r *inMemoryIdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.keys[key]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu      sync.RWMutex
	entries []domain.AuditLog
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, tx pgx.Tx, entry *domain.AuditLog) error {
	stx, ok := tx.(*stagingTx)
	if !ok {
		return errors.New("in-memory repo needs a staging tx")
	}
	stored := *entry
	stx.onCommit = append(stx.onCommit, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.entries = append(r.entries, stored)
	})
	return nil
}

func (r *inMemoryAuditRepo) all() []domain.AuditLog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.AuditLog(nil), r.entries...)
}

// --- In-Memory Transactor ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &stagingTx{}, nil
}

// stagingTx collects writes and applies them on Commit. Only Commit and
// Rollback are implemented; any other pgx.Tx method panics on the nil embed.
type stagingTx struct {
	pgx.Tx
	onCommit []func()
	done     bool
}

func (t *stagingTx) Commit(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	for _, apply := range t.onCommit {
		apply()
	}
	return nil
}

func (t *stagingTx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.onCommit = nil
	return nil
}

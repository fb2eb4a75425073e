// Package board keeps a local view of the deal pipeline and moves deals
// between stages optimistically.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/localcrm/internal/domain"
)

// Source is the remote side of the board.
type Source interface {
	ListDeals(ctx context.Context, f domain.DealFilter) ([]domain.Deal, error)
	ListStages(ctx context.Context) ([]domain.Stage, error)
	PatchDealStage(ctx context.Context, dealID, stageID int64) (*domain.Deal, error)
}

// Column is one stage with the deals currently shown in it.
type Column struct {
	Stage domain.Stage
	Deals []domain.Deal
}

// Board holds the last fetched snapshot of deals and stages plus the stage
// moves that have been applied locally but not yet confirmed.
type Board struct {
	src    Source
	filter domain.DealFilter
	log    *slog.Logger

	mu      sync.Mutex
	stages  []domain.Stage
	deals   []domain.Deal
	pending map[int64]int64 // deal id -> stage id
}

// New creates an empty Board. Call Refresh to load it.
func New(src Source, filter domain.DealFilter, logger *slog.Logger) *Board {
	return &Board{
		src:     src,
		filter:  filter,
		log:     logger.With("component", "board"),
		pending: make(map[int64]int64),
	}
}

// Refresh re-fetches deals and stages and replaces the snapshot. Local moves
// that are still pending are dropped.
func (b *Board) Refresh(ctx context.Context) error {
	var (
		deals  []domain.Deal
		stages []domain.Stage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		deals, err = b.src.ListDeals(gctx, b.filter)
		if err != nil {
			return fmt.Errorf("list deals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stages, err = b.src.ListStages(gctx)
		if err != nil {
			return fmt.Errorf("list stages: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("refresh board: %w", err)
	}

	sort.SliceStable(stages, func(i, j int) bool {
		if stages[i].OrderIndex != stages[j].OrderIndex {
			return stages[i].OrderIndex < stages[j].OrderIndex
		}
		return stages[i].ID < stages[j].ID
	})

	b.mu.Lock()
	b.deals = deals
	b.stages = stages
	clear(b.pending)
	b.mu.Unlock()
	return nil
}

// Move shows the deal in the target stage immediately, then asks the source
// to persist it. On success the refreshed deal replaces the local copy. On
// failure every local change is discarded and the board is re-fetched; the
// original error is returned.
func (b *Board) Move(ctx context.Context, dealID, stageID int64) error {
	b.mu.Lock()
	if b.indexOf(dealID) < 0 {
		b.mu.Unlock()
		return fmt.Errorf("move deal %d: %w", dealID, domain.ErrNotFound)
	}
	b.pending[dealID] = stageID
	b.mu.Unlock()

	updated, err := b.src.PatchDealStage(ctx, dealID, stageID)
	if err != nil {
		b.log.WarnContext(ctx, "stage move rejected, reloading board",
			slog.Int64("deal_id", dealID),
			slog.Int64("stage_id", stageID),
			slog.String("error", err.Error()),
		)
		if rerr := b.Refresh(ctx); rerr != nil {
			b.mu.Lock()
			clear(b.pending)
			b.mu.Unlock()
			return fmt.Errorf("move deal %d: %w (reload failed: %v)", dealID, err, rerr)
		}
		return fmt.Errorf("move deal %d: %w", dealID, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.indexOf(dealID); i >= 0 {
		b.deals[i] = *updated
	}
	if b.pending[dealID] == stageID {
		delete(b.pending, dealID)
	}
	return nil
}

// Deals returns the deals as currently shown, local moves applied.
func (b *Board) Deals() []domain.Deal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.view()
}

// Stages returns the stages in board order.
func (b *Board) Stages() []domain.Stage {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.Stage(nil), b.stages...)
}

// Pending reports how many moves are applied locally but unconfirmed.
func (b *Board) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// Columns groups the shown deals by stage in board order. Deals whose stage
// is not in the snapshot are left out.
func (b *Board) Columns() []Column {
	b.mu.Lock()
	defer b.mu.Unlock()

	cols := make([]Column, len(b.stages))
	pos := make(map[int64]int, len(b.stages))
	for i, s := range b.stages {
		cols[i] = Column{Stage: s, Deals: []domain.Deal{}}
		pos[s.ID] = i
	}
	for _, d := range b.view() {
		if i, ok := pos[d.StageID]; ok {
			cols[i].Deals = append(cols[i].Deals, d)
		}
	}
	return cols
}

// view must be called with mu held.
func (b *Board) view() []domain.Deal {
	out := make([]domain.Deal, len(b.deals))
	copy(out, b.deals)
	for i := range out {
		if s, ok := b.pending[out[i].ID]; ok {
			out[i].StageID = s
		}
	}
	return out
}

func (b *Board) indexOf(dealID int64) int {
	for i := range b.deals {
		if b.deals[i].ID == dealID {
			return i
		}
	}
	return -1
}

// Package dashboard computes the pipeline summary shown on the dashboard.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/localcrm/internal/domain"
)

type dealStats interface {
	Count(ctx context.Context) (int64, error)
	PipelineTotal(ctx context.Context) (float64, error)
	StageTotals(ctx context.Context) ([]domain.StageTotal, error)
}

type counter interface {
	Count(ctx context.Context) (int64, error)
}

// Summary is the dashboard payload.
type Summary struct {
	PipelineTotal float64
	DealCount     int64
	AccountCount  int64
	StageCount    int64
	Stages        []domain.StageTotal
}

// Service aggregates counts across repositories.
type Service struct {
	deals    dealStats
	accounts counter
	stages   counter
	log      *slog.Logger
}

// NewService creates a new Dashboard service.
func NewService(log *slog.Logger, deals dealStats, accounts, stages counter) *Service {
	return &Service{
		deals:    deals,
		accounts: accounts,
		stages:   stages,
		log:      log.With("service", "dashboard"),
	}
}

// Summary runs every aggregate concurrently; the first failure cancels the rest.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var out Summary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.PipelineTotal, err = s.deals.PipelineTotal(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.DealCount, err = s.deals.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.AccountCount, err = s.accounts.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.StageCount, err = s.stages.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Stages, err = s.deals.StageTotals(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &out, nil
}

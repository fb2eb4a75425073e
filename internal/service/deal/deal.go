package deal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/localcrm/internal/domain"
)

// List returns deals matching f, most recently updated first.
func (s *Service) List(ctx context.Context, f domain.DealFilter) ([]domain.Deal, error) {
	deals, err := s.deals.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	return deals, nil
}

// Get returns one deal.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Deal, error) {
	d, err := s.deals.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get deal: %w", err)
	}
	return d, nil
}

// Create validates input, applies defaults and stores a new deal.
func (s *Service) Create(ctx context.Context, input DealInput) (*domain.Deal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params, err := input.params()
	if err != nil {
		return nil, err
	}

	d, err := s.deals.Create(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create deal: %w", err)
	}

	s.log.InfoContext(ctx, "deal created",
		slog.Int64("deal_id", d.ID),
		slog.Int64("stage_id", d.StageID),
		slog.Float64("amount", d.Amount),
	)
	return d, nil
}

// Update overwrites every field of an existing deal, defaults included.
func (s *Service) Update(ctx context.Context, id int64, input DealInput) (*domain.Deal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params, err := input.params()
	if err != nil {
		return nil, err
	}

	d, err := s.deals.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("update deal: %w", err)
	}

	s.log.InfoContext(ctx, "deal updated", slog.Int64("deal_id", d.ID))
	return d, nil
}

// MoveStage moves a deal to another stage. Any stage may follow any other.
func (s *Service) MoveStage(ctx context.Context, id int64, input StageMoveInput) (*domain.Deal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	d, err := s.deals.PatchStage(ctx, id, input.StageID)
	if err != nil {
		return nil, fmt.Errorf("move deal stage: %w", err)
	}

	s.log.InfoContext(ctx, "deal moved",
		slog.Int64("deal_id", d.ID),
		slog.Int64("stage_id", d.StageID),
	)
	return d, nil
}

// Delete removes a deal with its activities and notes.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.deals.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}

	s.log.InfoContext(ctx, "deal deleted", slog.Int64("deal_id", id))
	return nil
}

package stage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/localcrm/internal/domain"
)

// List returns every stage in board order.
func (s *Service) List(ctx context.Context) ([]domain.Stage, error) {
	stages, err := s.stages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	return stages, nil
}

// Get returns one stage.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Stage, error) {
	st, err := s.stages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get stage: %w", err)
	}
	return st, nil
}

// Create validates input and stores a new stage.
func (s *Service) Create(ctx context.Context, input StageInput) (*domain.Stage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	st, err := s.stages.Create(ctx, input.params())
	if err != nil {
		return nil, fmt.Errorf("create stage: %w", err)
	}

	s.log.InfoContext(ctx, "stage created",
		slog.Int64("stage_id", st.ID),
		slog.String("name", st.Name),
	)
	return st, nil
}

// Update overwrites every field of an existing stage.
func (s *Service) Update(ctx context.Context, id int64, input StageInput) (*domain.Stage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	st, err := s.stages.Update(ctx, id, input.params())
	if err != nil {
		return nil, fmt.Errorf("update stage: %w", err)
	}

	s.log.InfoContext(ctx, "stage updated", slog.Int64("stage_id", st.ID))
	return st, nil
}

// Delete removes a stage. Stages that still hold deals cannot be deleted.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.stages.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete stage: %w", err)
	}

	s.log.InfoContext(ctx, "stage deleted", slog.Int64("stage_id", id))
	return nil
}

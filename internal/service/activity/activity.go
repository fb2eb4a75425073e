package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/localcrm/internal/domain"
)

// List returns activities matching f, soonest due first.
func (s *Service) List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error) {
	activities, err := s.activities.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

// Get returns one activity.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return a, nil
}

// Create validates input and stores a new activity.
func (s *Service) Create(ctx context.Context, input ActivityInput) (*domain.Activity, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params, err := input.params()
	if err != nil {
		return nil, err
	}

	a, err := s.activities.Create(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}

	s.log.InfoContext(ctx, "activity created",
		slog.Int64("activity_id", a.ID),
		slog.Int64("deal_id", a.DealID),
		slog.String("type", a.Type),
	)
	return a, nil
}

// Update overwrites every field of an existing activity.
func (s *Service) Update(ctx context.Context, id int64, input ActivityInput) (*domain.Activity, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params, err := input.params()
	if err != nil {
		return nil, err
	}

	a, err := s.activities.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	s.log.InfoContext(ctx, "activity updated",
		slog.Int64("activity_id", a.ID),
		slog.String("status", a.Status),
	)
	return a, nil
}

// Delete removes an activity.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	s.log.InfoContext(ctx, "activity deleted", slog.Int64("activity_id", id))
	return nil
}

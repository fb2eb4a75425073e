package activity

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/localcrm/internal/domain"
)

type activityRepo interface {
	List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error)
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	Create(ctx context.Context, p domain.ActivityParams) (*domain.Activity, error)
	Update(ctx context.Context, id int64, p domain.ActivityParams) (*domain.Activity, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides activity (task) operations.
type Service struct {
	activities activityRepo
	log        *slog.Logger
}

// NewService creates a new Activity service.
func NewService(log *slog.Logger, activities activityRepo) *Service {
	return &Service{
		activities: activities,
		log:        log.With("service", "activity"),
	}
}

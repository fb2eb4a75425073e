package stage

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/localcrm/internal/domain"
)

type stageRepo interface {
	List(ctx context.Context) ([]domain.Stage, error)
	GetByID(ctx context.Context, id int64) (*domain.Stage, error)
	Create(ctx context.Context, p domain.StageParams) (*domain.Stage, error)
	Update(ctx context.Context, id int64, p domain.StageParams) (*domain.Stage, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides pipeline stage management operations.
type Service struct {
	stages stageRepo
	log    *slog.Logger
}

// NewService creates a new Stage service.
func NewService(log *slog.Logger, stages stageRepo) *Service {
	return &Service{
		stages: stages,
		log:    log.With("service", "stage"),
	}
}

package deal

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/localcrm/internal/domain"
)

type dealRepo interface {
	List(ctx context.Context, f domain.DealFilter) ([]domain.Deal, error)
	GetByID(ctx context.Context, id int64) (*domain.Deal, error)
	Create(ctx context.Context, p domain.DealParams) (*domain.Deal, error)
	Update(ctx context.Context, id int64, p domain.DealParams) (*domain.Deal, error)
	PatchStage(ctx context.Context, id, stageID int64) (*domain.Deal, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides deal and pipeline operations.
type Service struct {
	deals dealRepo
	log   *slog.Logger
}

// NewService creates a new Deal service.
func NewService(log *slog.Logger, deals dealRepo) *Service {
	return &Service{
		deals: deals,
		log:   log.With("service", "deal"),
	}
}

package contact

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/localcrm/internal/domain"
)

type contactRepo interface {
	List(ctx context.Context, f domain.ContactFilter) ([]domain.Contact, error)
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
	Create(ctx context.Context, p domain.ContactParams) (*domain.Contact, error)
	Update(ctx context.Context, id int64, p domain.ContactParams) (*domain.Contact, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides contact management operations.
type Service struct {
	contacts contactRepo
	log      *slog.Logger
}

// NewService creates a new Contact service.
func NewService(log *slog.Logger, contacts contactRepo) *Service {
	return &Service{
		contacts: contacts,
		log:      log.With("service", "contact"),
	}
}

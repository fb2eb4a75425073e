package account

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/localcrm/internal/domain"
)

type accountRepo interface {
	List(ctx context.Context, f domain.AccountFilter) ([]domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	Create(ctx context.Context, p domain.AccountParams) (*domain.Account, error)
	Update(ctx context.Context, id int64, p domain.AccountParams) (*domain.Account, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides account management operations.
type Service struct {
	accounts accountRepo
	log      *slog.Logger
}

// NewService creates a new Account service.
func NewService(log *slog.Logger, accounts accountRepo) *Service {
	return &Service{
		accounts: accounts,
		log:      log.With("service", "account"),
	}
}

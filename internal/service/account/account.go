package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/localcrm/internal/domain"
)

// List returns accounts matching f.
func (s *Service) List(ctx context.Context, f domain.AccountFilter) ([]domain.Account, error) {
	accounts, err := s.accounts.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// Get returns one account.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Account, error) {
	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// Create validates input and stores a new account.
func (s *Service) Create(ctx context.Context, input AccountInput) (*domain.Account, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.accounts.Create(ctx, input.params())
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.InfoContext(ctx, "account created",
		slog.Int64("account_id", a.ID),
		slog.String("name", a.Name),
	)
	return a, nil
}

// Update overwrites every field of an existing account.
func (s *Service) Update(ctx context.Context, id int64, input AccountInput) (*domain.Account, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.accounts.Update(ctx, id, input.params())
	if err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}

	s.log.InfoContext(ctx, "account updated", slog.Int64("account_id", a.ID))
	return a, nil
}

// Delete removes an account and everything that belongs to it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted", slog.Int64("account_id", id))
	return nil
}

package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/localcrm/internal/domain"
)

// List returns contacts matching f.
func (s *Service) List(ctx context.Context, f domain.ContactFilter) ([]domain.Contact, error) {
	contacts, err := s.contacts.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// Get returns one contact.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Contact, error) {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// Create validates input and stores a new contact.
func (s *Service) Create(ctx context.Context, input ContactInput) (*domain.Contact, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.contacts.Create(ctx, input.params())
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	s.log.InfoContext(ctx, "contact created",
		slog.Int64("contact_id", c.ID),
		slog.Int64("account_id", c.AccountID),
	)
	return c, nil
}

// Update overwrites every field of an existing contact.
func (s *Service) Update(ctx context.Context, id int64, input ContactInput) (*domain.Contact, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.contacts.Update(ctx, id, input.params())
	if err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}

	s.log.InfoContext(ctx, "contact updated", slog.Int64("contact_id", c.ID))
	return c, nil
}

// Delete removes a contact.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	s.log.InfoContext(ctx, "contact deleted", slog.Int64("contact_id", id))
	return nil
}

package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/internal/service/validate"
)

type noteRepo interface {
	List(ctx context.Context, f domain.NoteFilter) ([]domain.Note, error)
	Create(ctx context.Context, p domain.NoteParams) (*domain.Note, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides note operations. Notes cannot be edited.
type Service struct {
	notes noteRepo
	log   *slog.Logger
}

// NewService creates a new Note service.
func NewService(log *slog.Logger, notes noteRepo) *Service {
	return &Service{
		notes: notes,
		log:   log.With("service", "note"),
	}
}

// NoteInput is the payload of note creation.
type NoteInput struct {
	DealID       int64  `json:"deal_id" validate:"required"`
	AuthorUserID int64  `json:"author_user_id" validate:"required"`
	Body         string `json:"body" validate:"required"`
}

// Validate checks all fields and collects all errors.
func (i NoteInput) Validate() error {
	return validate.Struct(i)
}

// List returns notes matching f, newest first.
func (s *Service) List(ctx context.Context, f domain.NoteFilter) ([]domain.Note, error) {
	notes, err := s.notes.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Create validates input and stores a new note.
func (s *Service) Create(ctx context.Context, input NoteInput) (*domain.Note, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	n, err := s.notes.Create(ctx, domain.NoteParams{
		DealID:       input.DealID,
		AuthorUserID: input.AuthorUserID,
		Body:         input.Body,
	})
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.Int64("note_id", n.ID),
		slog.Int64("deal_id", n.DealID),
	)
	return n, nil
}

// Delete removes a note.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted", slog.Int64("note_id", id))
	return nil
}

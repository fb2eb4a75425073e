// Package note implements the Note repository using PostgreSQL. Notes are
// immutable: they can be created, listed and deleted.
package note

import (
	"context"

	postgres "github.com/heartmarshall/localcrm/internal/adapter/postgres"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/filter"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/record"
	"github.com/heartmarshall/localcrm/internal/domain"
)

var columns = []string{"id", "deal_id", "author_user_id", "body", "created_at"}

// Filters declares the recognized note list filters.
var Filters = filter.Spec[domain.NoteFilter]{
	Table:   "notes",
	Columns: columns,
	Fields: []filter.Field[domain.NoteFilter]{
		{Key: "deal_id", Op: filter.Eq, Columns: []string{"deal_id"}, Value: func(f domain.NoteFilter) string { return f.DealID }},
	},
	OrderBy: []string{"created_at DESC", "id DESC"},
}

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	store *record.Store[domain.Note]
}

// New creates a new note repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		store: record.New[domain.Note](db, record.Config{
			Table:   "notes",
			Entity:  "note",
			Columns: columns,
		}),
	}
}

// List returns notes matching f, newest first.
func (r *Repo) List(ctx context.Context, f domain.NoteFilter) ([]domain.Note, error) {
	return r.store.Select(ctx, Filters.Select(f))
}

// Create inserts a note.
func (r *Repo) Create(ctx context.Context, p domain.NoteParams) (*domain.Note, error) {
	return r.store.Create(ctx, map[string]any{
		"deal_id":        p.DealID,
		"author_user_id": p.AuthorUserID,
		"body":           p.Body,
	})
}

// Delete removes the note.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, id)
}

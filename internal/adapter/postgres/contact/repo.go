// Package contact implements the Contact repository using PostgreSQL.
package contact

import (
	"context"

	postgres "github.com/heartmarshall/localcrm/internal/adapter/postgres"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/filter"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/record"
	"github.com/heartmarshall/localcrm/internal/domain"
)

var columns = []string{
	"id", "account_id", "first_name", "last_name", "email", "phone", "title", "created_at", "updated_at",
}

// Filters declares the recognized contact list filters.
var Filters = filter.Spec[domain.ContactFilter]{
	Table:   "contacts",
	Columns: columns,
	Fields: []filter.Field[domain.ContactFilter]{
		{Key: "account_id", Op: filter.Eq, Columns: []string{"account_id"}, Value: func(f domain.ContactFilter) string { return f.AccountID }},
		{Key: "search", Op: filter.Contains, Columns: []string{"first_name", "last_name", "email"}, Value: func(f domain.ContactFilter) string { return f.Search }},
	},
	OrderBy: []string{"last_name ASC", "id ASC"},
}

// Repo provides contact persistence backed by PostgreSQL.
type Repo struct {
	store *record.Store[domain.Contact]
}

// New creates a new contact repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		store: record.New[domain.Contact](db, record.Config{
			Table:   "contacts",
			Entity:  "contact",
			Columns: columns,
			Touch:   true,
		}),
	}
}

// List returns contacts matching f ordered by last name.
func (r *Repo) List(ctx context.Context, f domain.ContactFilter) ([]domain.Contact, error) {
	return r.store.Select(ctx, Filters.Select(f))
}

// GetByID returns a contact by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	return r.store.Get(ctx, id)
}

// Create inserts a contact. An unknown account_id is rejected by the foreign
// key and returned unclassified.
func (r *Repo) Create(ctx context.Context, p domain.ContactParams) (*domain.Contact, error) {
	return r.store.Create(ctx, values(p))
}

// Update overwrites every writable field of the contact.
func (r *Repo) Update(ctx context.Context, id int64, p domain.ContactParams) (*domain.Contact, error) {
	return r.store.Update(ctx, id, values(p))
}

// Delete removes the contact. Deals that named it as primary contact keep
// existing with no primary contact.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, id)
}

func values(p domain.ContactParams) map[string]any {
	return map[string]any{
		"account_id": p.AccountID,
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"email":      p.Email,
		"phone":      p.Phone,
		"title":      p.Title,
	}
}

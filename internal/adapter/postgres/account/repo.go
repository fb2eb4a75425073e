// Package account implements the Account repository using PostgreSQL.
package account

import (
	"context"

	postgres "github.com/heartmarshall/localcrm/internal/adapter/postgres"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/filter"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/record"
	"github.com/heartmarshall/localcrm/internal/domain"
)

var columns = []string{"id", "name", "industry", "website", "phone", "address", "created_at", "updated_at"}

// Filters declares the recognized account list filters.
var Filters = filter.Spec[domain.AccountFilter]{
	Table:   "accounts",
	Columns: columns,
	Fields: []filter.Field[domain.AccountFilter]{
		{Key: "search", Op: filter.Contains, Columns: []string{"name"}, Value: func(f domain.AccountFilter) string { return f.Search }},
	},
	OrderBy: []string{"name ASC", "id ASC"},
}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	store *record.Store[domain.Account]
}

// New creates a new account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		store: record.New[domain.Account](db, record.Config{
			Table:   "accounts",
			Entity:  "account",
			Columns: columns,
			Touch:   true,
		}),
	}
}

// List returns accounts matching f ordered by name.
func (r *Repo) List(ctx context.Context, f domain.AccountFilter) ([]domain.Account, error) {
	return r.store.Select(ctx, Filters.Select(f))
}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return r.store.Get(ctx, id)
}

// Create inserts an account and returns the stored row.
func (r *Repo) Create(ctx context.Context, p domain.AccountParams) (*domain.Account, error) {
	return r.store.Create(ctx, values(p))
}

// Update overwrites every writable field of the account.
func (r *Repo) Update(ctx context.Context, id int64, p domain.AccountParams) (*domain.Account, error) {
	return r.store.Update(ctx, id, values(p))
}

// Delete removes the account together with its contacts and deals.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, id)
}

// Count returns the number of accounts.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx)
}

func values(p domain.AccountParams) map[string]any {
	return map[string]any{
		"name":     p.Name,
		"industry": p.Industry,
		"website":  p.Website,
		"phone":    p.Phone,
		"address":  p.Address,
	}
}

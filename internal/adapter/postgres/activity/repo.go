// Package activity implements the Activity repository using PostgreSQL.
package activity

import (
	"context"

	postgres "github.com/heartmarshall/localcrm/internal/adapter/postgres"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/filter"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/record"
	"github.com/heartmarshall/localcrm/internal/domain"
)

var columns = []string{
	"id", "deal_id", "type", "subject", "due_date", "status", "assigned_user_id", "created_at", "updated_at",
}

// Filters declares the recognized activity list filters. Activities without
// a due date sort after every dated one.
var Filters = filter.Spec[domain.ActivityFilter]{
	Table:   "activities",
	Columns: columns,
	Fields: []filter.Field[domain.ActivityFilter]{
		{Key: "deal_id", Op: filter.Eq, Columns: []string{"deal_id"}, Value: func(f domain.ActivityFilter) string { return f.DealID }},
	},
	OrderBy: []string{"due_date ASC", "id ASC"},
}

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	store *record.Store[domain.Activity]
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		store: record.New[domain.Activity](db, record.Config{
			Table:   "activities",
			Entity:  "activity",
			Columns: columns,
			Touch:   true,
		}),
	}
}

// List returns activities matching f, soonest due first.
func (r *Repo) List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error) {
	return r.store.Select(ctx, Filters.Select(f))
}

// GetByID returns an activity by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	return r.store.Get(ctx, id)
}

// Create inserts an activity.
func (r *Repo) Create(ctx context.Context, p domain.ActivityParams) (*domain.Activity, error) {
	return r.store.Create(ctx, values(p))
}

// Update overwrites every writable field of the activity.
func (r *Repo) Update(ctx context.Context, id int64, p domain.ActivityParams) (*domain.Activity, error) {
	return r.store.Update(ctx, id, values(p))
}

// Delete removes the activity.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, id)
}

func values(p domain.ActivityParams) map[string]any {
	return map[string]any{
		"deal_id":          p.DealID,
		"type":             p.Type,
		"subject":          p.Subject,
		"due_date":         p.DueDate,
		"status":           p.Status,
		"assigned_user_id": p.AssignedUserID,
	}
}

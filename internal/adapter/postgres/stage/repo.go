// Package stage implements the pipeline Stage repository using PostgreSQL.
package stage

import (
	"context"

	postgres "github.com/heartmarshall/localcrm/internal/adapter/postgres"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/filter"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/record"
	"github.com/heartmarshall/localcrm/internal/domain"
)

var columns = []string{"id", "name", "order_index", "is_won", "is_lost"}

// Filters declares the stage list query. Stages have no filter keys and are
// always listed in board order.
var Filters = filter.Spec[domain.StageFilter]{
	Table:   "stages",
	Columns: columns,
	OrderBy: []string{"order_index ASC", "id ASC"},
}

// Repo provides stage persistence backed by PostgreSQL.
type Repo struct {
	store *record.Store[domain.Stage]
}

// New creates a new stage repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		store: record.New[domain.Stage](db, record.Config{
			Table:   "stages",
			Entity:  "stage",
			Columns: columns,
		}),
	}
}

// List returns every stage in board order.
func (r *Repo) List(ctx context.Context) ([]domain.Stage, error) {
	return r.store.Select(ctx, Filters.Select(domain.StageFilter{}))
}

// GetByID returns a stage by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Stage, error) {
	return r.store.Get(ctx, id)
}

// Create inserts a stage.
func (r *Repo) Create(ctx context.Context, p domain.StageParams) (*domain.Stage, error) {
	return r.store.Create(ctx, values(p))
}

// Update overwrites every writable field of the stage.
func (r *Repo) Update(ctx context.Context, id int64, p domain.StageParams) (*domain.Stage, error) {
	return r.store.Update(ctx, id, values(p))
}

// Delete removes the stage. A stage still referenced by a deal is rejected
// with domain.ErrConflict.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, id)
}

// Count returns the number of stages.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx)
}

func values(p domain.StageParams) map[string]any {
	return map[string]any{
		"name":        p.Name,
		"order_index": p.OrderIndex,
		"is_won":      p.IsWon,
		"is_lost":     p.IsLost,
	}
}

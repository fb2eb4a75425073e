// Package deal implements the Deal repository using PostgreSQL.
package deal

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/localcrm/internal/adapter/postgres"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/filter"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/record"
	"github.com/heartmarshall/localcrm/internal/domain"
)

var columns = []string{
	"id", "account_id", "primary_contact_id", "title", "amount", "currency",
	"stage_id", "owner_user_id", "close_date", "created_at", "updated_at",
}

// Filters declares the recognized deal list filters. start_date and
// end_date bound close_date inclusively; deals with no close date never
// match a date bound.
var Filters = filter.Spec[domain.DealFilter]{
	Table:   "deals",
	Columns: columns,
	Fields: []filter.Field[domain.DealFilter]{
		{Key: "stage_id", Op: filter.Eq, Columns: []string{"stage_id"}, Value: func(f domain.DealFilter) string { return f.StageID }},
		{Key: "owner_user_id", Op: filter.Eq, Columns: []string{"owner_user_id"}, Value: func(f domain.DealFilter) string { return f.OwnerUserID }},
		{Key: "start_date", Op: filter.Gte, Columns: []string{"close_date"}, Value: func(f domain.DealFilter) string { return f.StartDate }},
		{Key: "end_date", Op: filter.Lte, Columns: []string{"close_date"}, Value: func(f domain.DealFilter) string { return f.EndDate }},
		{Key: "search", Op: filter.Contains, Columns: []string{"title"}, Value: func(f domain.DealFilter) string { return f.Search }},
	},
	OrderBy: []string{"updated_at DESC", "id DESC"},
}

// Repo provides deal persistence backed by PostgreSQL.
type Repo struct {
	db    postgres.Querier
	store *record.Store[domain.Deal]
}

// New creates a new deal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		db: db,
		store: record.New[domain.Deal](db, record.Config{
			Table:   "deals",
			Entity:  "deal",
			Columns: columns,
			Touch:   true,
		}),
	}
}

// List returns deals matching f, most recently updated first.
func (r *Repo) List(ctx context.Context, f domain.DealFilter) ([]domain.Deal, error) {
	return r.store.Select(ctx, Filters.Select(f))
}

// GetByID returns a deal by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Deal, error) {
	return r.store.Get(ctx, id)
}

// Create inserts a deal. Unknown account, contact, stage or owner ids and a
// negative amount are rejected by constraints and returned unclassified.
func (r *Repo) Create(ctx context.Context, p domain.DealParams) (*domain.Deal, error) {
	return r.store.Create(ctx, values(p))
}

// Update overwrites every writable field of the deal.
func (r *Repo) Update(ctx context.Context, id int64, p domain.DealParams) (*domain.Deal, error) {
	return r.store.Update(ctx, id, values(p))
}

// PatchStage moves the deal to stageID, touching nothing but stage_id and
// updated_at.
func (r *Repo) PatchStage(ctx context.Context, id, stageID int64) (*domain.Deal, error) {
	return r.store.Update(ctx, id, map[string]any{"stage_id": stageID})
}

// Delete removes the deal with its activities and notes.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, id)
}

// Count returns the number of deals.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx)
}

// PipelineTotal returns the summed amount of every deal.
func (r *Repo) PipelineTotal(ctx context.Context) (float64, error) {
	query, args, err := filter.Builder().
		Select("COALESCE(sum(amount), 0)").
		From("deals").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build pipeline total: %w", err)
	}

	var total float64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("pipeline total: %w", err)
	}
	return total, nil
}

// StageTotals returns deal count and amount for every stage in board order,
// including stages with no deals.
func (r *Repo) StageTotals(ctx context.Context) ([]domain.StageTotal, error) {
	query, args, err := filter.Builder().
		Select("s.id AS stage_id", "count(d.id) AS deal_count", "COALESCE(sum(d.amount), 0) AS amount").
		From("stages s").
		LeftJoin("deals d ON d.stage_id = s.id").
		GroupBy("s.id", "s.order_index").
		OrderBy("s.order_index ASC", "s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stage totals: %w", err)
	}

	totals := []domain.StageTotal{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &totals, query, args...); err != nil {
		return nil, fmt.Errorf("stage totals: %w", err)
	}
	return totals, nil
}

func values(p domain.DealParams) map[string]any {
	return map[string]any{
		"account_id":         p.AccountID,
		"primary_contact_id": p.PrimaryContactID,
		"title":              p.Title,
		"amount":             p.Amount,
		"currency":           p.Currency,
		"stage_id":           p.StageID,
		"owner_user_id":      p.OwnerUserID,
		"close_date":         p.CloseDate,
	}
}

// Package record is the write-then-reread layer shared by every resource
// repository.
//
// Each mutation runs exactly one write statement and then reads the row back
// by primary key, so callers always see the stored representation (defaults,
// timestamps, coerced values) and never the payload they sent.
package record

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/localcrm/internal/adapter/postgres"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/filter"
)

// Config describes the table a Store works on.
type Config struct {
	Table   string
	Entity  string // used in error messages, e.g. "deal"
	Columns []string
	// Touch sets updated_at = now() on every update.
	Touch bool
}

// Store reads and writes rows of one table as values of T. T's fields carry
// `db` tags matching Columns.
type Store[T any] struct {
	db  postgres.Querier
	cfg Config
}

// New creates a Store. db is used whenever the context carries no transaction.
func New[T any](db postgres.Querier, cfg Config) *Store[T] {
	return &Store[T]{db: db, cfg: cfg}
}

func (s *Store[T]) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, s.db)
}

// Get returns the row with the given id or domain.ErrNotFound.
func (s *Store[T]) Get(ctx context.Context, id int64) (*T, error) {
	query, args, err := filter.Builder().
		Select(s.cfg.Columns...).
		From(s.cfg.Table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get %s: %w", s.cfg.Entity, err)
	}

	var row T
	if err := pgxscan.Get(ctx, s.q(ctx), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, s.cfg.Entity, id)
	}
	return &row, nil
}

// Select runs a list query. It returns an empty, non-nil slice when nothing
// matches.
func (s *Store[T]) Select(ctx context.Context, sb squirrel.SelectBuilder) ([]T, error) {
	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", s.cfg.Entity, err)
	}

	rows := []T{}
	if err := pgxscan.Select(ctx, s.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", s.cfg.Entity, err)
	}
	return rows, nil
}

// Create inserts one row, captures the id assigned by storage and returns
// the re-read row.
func (s *Store[T]) Create(ctx context.Context, values map[string]any) (*T, error) {
	query, args, err := filter.Builder().
		Insert(s.cfg.Table).
		SetMap(values).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", s.cfg.Entity, err)
	}

	var id int64
	if err := s.q(ctx).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, s.cfg.Entity, 0)
	}
	return s.Get(ctx, id)
}

// Update overwrites the given columns of one row and returns the re-read
// row. An id that matches nothing yields domain.ErrNotFound.
func (s *Store[T]) Update(ctx context.Context, id int64, values map[string]any) (*T, error) {
	ub := filter.Builder().
		Update(s.cfg.Table).
		SetMap(values)
	if s.cfg.Touch {
		ub = ub.Set("updated_at", squirrel.Expr("now()"))
	}

	query, args, err := ub.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update %s: %w", s.cfg.Entity, err)
	}

	var updated int64
	if err := s.q(ctx).QueryRow(ctx, query, args...).Scan(&updated); err != nil {
		return nil, postgres.MapError(err, s.cfg.Entity, id)
	}
	return s.Get(ctx, updated)
}

// Delete removes the row if it exists. A missing row is not an error.
func (s *Store[T]) Delete(ctx context.Context, id int64) error {
	query, args, err := filter.Builder().
		Delete(s.cfg.Table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", s.cfg.Entity, err)
	}

	if _, err := s.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapDeleteError(err, s.cfg.Entity, id)
	}
	return nil
}

// Count returns the number of rows in the table.
func (s *Store[T]) Count(ctx context.Context) (int64, error) {
	query, args, err := filter.Builder().
		Select("count(*)").
		From(s.cfg.Table).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count %s: %w", s.cfg.Entity, err)
	}

	var n int64
	if err := s.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", s.cfg.Entity, err)
	}
	return n, nil
}

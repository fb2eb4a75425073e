// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/localcrm/internal/adapter/postgres"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/filter"
	"github.com/heartmarshall/localcrm/internal/adapter/postgres/record"
	"github.com/heartmarshall/localcrm/internal/domain"
)

var columns = []string{"id", "email", "password_hash", "name", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db    postgres.Querier
	store *record.Store[domain.User]
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		db: db,
		store: record.New[domain.User](db, record.Config{
			Table:   "users",
			Entity:  "user",
			Columns: columns,
		}),
	}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.store.Get(ctx, id)
}

// GetByEmail returns a user by email address, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query, args, err := filter.Builder().
		Select(columns...).
		From("users").
		Where(squirrel.Eq{"lower(email)": strings.ToLower(email)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user by email: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return &u, nil
}

// Create inserts a new user and returns the persisted row.
func (r *Repo) Create(ctx context.Context, email, passwordHash, name string) (*domain.User, error) {
	return r.store.Create(ctx, map[string]any{
		"email":         email,
		"password_hash": passwordHash,
		"name":          name,
	})
}

// Count returns the number of users.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx)
}

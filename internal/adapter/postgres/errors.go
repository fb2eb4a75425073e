package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/localcrm/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// MapError converts pgx/pgconn errors raised while reading or writing one
// entity to domain errors. Only a missing row and a unique violation are
// classified. Foreign key, check and not-null violations stay unclassified
// and surface as server errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %d: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == codeUniqueViolation {
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrAlreadyExists)
		}
	}

	return fmt.Errorf("%s %d: %w", entity, id, err)
}

// MapDeleteError is MapError for DELETE statements: a foreign key violation
// means another row still references the one being deleted, which is a
// conflict rather than a missing row.
func MapDeleteError(err error, entity string, id int64) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return fmt.Errorf("%s %d: still referenced by %s: %w", entity, id, pgErr.TableName, domain.ErrConflict)
	}
	return MapError(err, entity, id)
}

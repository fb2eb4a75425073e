// Package seeder loads the demo dataset: one administrator, the default
// pipeline stages and a handful of accounts, contacts, deals, activities and
// notes.
package seeder

import (
	"context"
	"fmt"
	"strings"

	postgres "github.com/heartmarshall/localcrm/internal/adapter/postgres"
	"github.com/heartmarshall/localcrm/internal/domain"
)

// Repos are the write contracts consumed by the pipeline. All of them are
// implemented by the postgres repositories and must pick up the transaction
// from the context.
type Repos struct {
	Users interface {
		Create(ctx context.Context, email, passwordHash, name string) (*domain.User, error)
	}
	Stages interface {
		Create(ctx context.Context, p domain.StageParams) (*domain.Stage, error)
	}
	Accounts interface {
		Create(ctx context.Context, p domain.AccountParams) (*domain.Account, error)
	}
	Contacts interface {
		Create(ctx context.Context, p domain.ContactParams) (*domain.Contact, error)
	}
	Deals interface {
		Create(ctx context.Context, p domain.DealParams) (*domain.Deal, error)
	}
	Activities interface {
		Create(ctx context.Context, p domain.ActivityParams) (*domain.Activity, error)
	}
	Notes interface {
		Create(ctx context.Context, p domain.NoteParams) (*domain.Note, error)
	}
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type wiper interface {
	Wipe(ctx context.Context) error
}

// Tables lists every CRM table, children first.
var Tables = []string{"notes", "activities", "deals", "contacts", "accounts", "stages", "users"}

// TableWiper empties every CRM table and resets the identity sequences.
type TableWiper struct {
	db postgres.Querier
}

// NewTableWiper creates a TableWiper.
func NewTableWiper(db postgres.Querier) *TableWiper {
	return &TableWiper{db: db}
}

// Wipe truncates Tables. Inside RunInTx it joins the caller's transaction.
func (w *TableWiper) Wipe(ctx context.Context) error {
	q := postgres.QuerierFromCtx(ctx, w.db)
	if _, err := q.Exec(ctx, "TRUNCATE "+strings.Join(Tables, ", ")+" RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("wipe tables: %w", err)
	}
	return nil
}

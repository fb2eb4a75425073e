package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/localcrm/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/localcrm/internal/adapter/postgres/account"
	activityrepo "github.com/heartmarshall/localcrm/internal/adapter/postgres/activity"
	contactrepo "github.com/heartmarshall/localcrm/internal/adapter/postgres/contact"
	dealrepo "github.com/heartmarshall/localcrm/internal/adapter/postgres/deal"
	noterepo "github.com/heartmarshall/localcrm/internal/adapter/postgres/note"
	stagerepo "github.com/heartmarshall/localcrm/internal/adapter/postgres/stage"
	userrepo "github.com/heartmarshall/localcrm/internal/adapter/postgres/user"
	"github.com/heartmarshall/localcrm/internal/app/seeder"
	"github.com/heartmarshall/localcrm/internal/config"
)

// Seed replaces the contents of the database with the demo dataset.
// bcryptCost <= 0 uses the bcrypt default.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.SeedConfig, bcryptCost int, logger *slog.Logger) error {
	p := seeder.NewPipeline(
		logger,
		postgres.NewTxManager(pool),
		seeder.NewTableWiper(pool),
		seeder.Repos{
			Users:      userrepo.New(pool),
			Stages:     stagerepo.New(pool),
			Accounts:   accountrepo.New(pool),
			Contacts:   contactrepo.New(pool),
			Deals:      dealrepo.New(pool),
			Activities: activityrepo.New(pool),
			Notes:      noterepo.New(pool),
		},
		cfg,
		bcryptCost,
	)
	return p.Run(ctx)
}

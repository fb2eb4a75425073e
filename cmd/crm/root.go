package main

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	postgres "github.com/heartmarshall/localcrm/internal/adapter/postgres"
	"github.com/heartmarshall/localcrm/internal/app"
	"github.com/heartmarshall/localcrm/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "crm",
		Short:         "LocalCRM server and command-line tools",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newBoardCmd(),
	)
	return root
}

// env is what the server-side commands share: configuration, a logger and
// a database pool.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, pool: pool}, nil
}

func (e *env) Close() {
	e.pool.Close()
}

package main

import (
	"github.com/spf13/cobra"

	postgres "github.com/heartmarshall/localcrm/internal/adapter/postgres"
	"github.com/heartmarshall/localcrm/internal/app"
)

func newSeedCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Wipe every table and load the demo dataset",
		Long: `Seed deletes all users, stages, accounts, contacts, deals, activities and
notes, then inserts the demo dataset and the administrator configured under
seed.* (admin@localcrm.test / admin123 by default). It runs in one
transaction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			if migrate {
				m, err := postgres.NewMigrator(e.pool)
				if err != nil {
					return err
				}
				if _, err := m.Up(ctx); err != nil {
					return err
				}
			}
			return app.Seed(ctx, e.pool, e.cfg.Seed, 0, e.logger)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply pending migrations before seeding")
	return cmd
}

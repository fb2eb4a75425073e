package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	postgres "github.com/heartmarshall/localcrm/internal/adapter/postgres"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(
		migrateSubcommand("up", "Apply all pending migrations", func(c *cobra.Command, m *postgres.Migrator, e *env) error {
			applied, err := m.Up(c.Context())
			if err != nil {
				return err
			}
			e.logger.Info("migrations applied", slog.Int("count", len(applied)), slog.Any("versions", applied))
			return nil
		}),
		migrateSubcommand("down", "Roll back the most recent migration", func(c *cobra.Command, m *postgres.Migrator, e *env) error {
			version, err := m.Down(c.Context())
			if err != nil {
				return err
			}
			e.logger.Info("migration rolled back", slog.Int64("version", version))
			return nil
		}),
		migrateSubcommand("status", "List migrations and whether they are applied", func(c *cobra.Command, m *postgres.Migrator, _ *env) error {
			states, err := m.Status(c.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tSTATE\tFILE")
			for _, s := range states {
				state := "pending"
				if s.Applied {
					state = "applied"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, state, s.Path)
			}
			return tw.Flush()
		}),
	)
	return cmd
}

func migrateSubcommand(use, short string, run func(*cobra.Command, *postgres.Migrator, *env) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			m, err := postgres.NewMigrator(e.pool)
			if err != nil {
				return err
			}
			return run(cmd, m, e)
		},
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/localcrm/internal/app"
	"github.com/heartmarshall/localcrm/internal/config"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), cfg, app.NewLogger(cfg.Log))
		},
	}
}

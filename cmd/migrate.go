package main

import (
	"github.com/spf13/cobra"

	"crowdfund/internal/config"
	"crowdfund/internal/db"
)

func migrateCommand(cfg *config.Config) *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply (or with --down revert) the PostgreSQL schema",
		RunE: func(*cobra.Command, []string) error {
			logger := newLogger(*cfg)
			addr := cfg.Psql.Addr.String()
			if down {
				if err := db.MigrateDown(addr); err != nil {
					return err
				}
				logger.Info("migrations reverted")
				return nil
			}
			if err := db.Migrate(addr); err != nil {
				return err
			}
			logger.Info("migrations applied successfully")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "revert all migrations")
	return cmd
}

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"crowdfund/internal/adapter/events"
	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/db"
)

func seedCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo campaigns into PostgreSQL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Funding.Storage != configs.StoragePostgres {
				return errors.New("seed needs FUNDING_STORAGE=postgres; use serve --seed for in-memory storage")
			}
			logger := newLogger(*cfg)
			bus := events.NewBus(nil, logger)
			defer bus.Stop()
			a, err := newApp(cmd.Context(), *cfg, bus, logger)
			if err != nil {
				return err
			}
			defer a.close()
			if err = db.Seed(cmd.Context(), a.access, a.funding, cfg.Funding.RootAccount); err != nil {
				return err
			}
			logger.Info("demo data loaded")
			return nil
		},
	}
}

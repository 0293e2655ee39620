package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"crowdfund/internal/config"
)

const programName = "crowdfund"

// newLogger builds the process logger from the configuration and makes it
// the slog default.
func newLogger(cfg config.Config) *slog.Logger {
	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)
	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, v ...any) {
		logger.Info(fmt.Sprintf(format, v...), slog.String("component", programName))
	})); err != nil {
		logger.Warn("maxprocs", slog.Any("error", err))
	}
	return logger
}

func main() {
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:          programName,
		Short:        "Crowdfunding campaign service",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return nil
		},
	}
	rootCmd.AddCommand(
		serveCommand(&cfg),
		migrateCommand(&cfg),
		seedCommand(&cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}

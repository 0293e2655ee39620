package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"crowdfund/internal/adapter/events"
	httpadapter "crowdfund/internal/adapter/http"
	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/db"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serveRun(cmd.Context(), *cfg, seed)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "load demo data before serving")
	return cmd
}

// serveRun optionally runs migrations, wires the storage backend and serves
// the API until SIGINT or SIGTERM, then shuts the server down gracefully.
func serveRun(ctx context.Context, cfg config.Config, seed bool) error {
	logger := newLogger(cfg)

	if cfg.Funding.Storage == configs.StoragePostgres && cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	bus := events.NewBus(registry, logger)
	defer bus.Stop()
	bus.SubscribeFunc(domain.EventCampaignCompleted, func(evt domain.Event) {
		logger.Info("campaign reached its goal",
			slog.Int64("campaign_id", evt.CampaignID),
			slog.Int64("amount", evt.Amount),
		)
	})

	a, err := newApp(ctx, cfg, bus, logger)
	if err != nil {
		return err
	}
	defer a.close()

	if seed {
		if err = db.Seed(ctx, a.access, a.funding, cfg.Funding.RootAccount); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data loaded")
	}

	metrics := promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	handler := httpadapter.NewHandler(a.funding, a.access, metrics, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
)

// app holds the wired use cases for one process.
type app struct {
	funding *usecase.FundingUseCase
	access  *usecase.AccessUseCase
	close   func()
}

// newApp wires the use cases to the storage backend selected in cfg.
// events receives every committed funding and access event.
func newApp(ctx context.Context, cfg config.Config, events port.EventPublisher, logger *slog.Logger) (*app, error) {
	var (
		repo     port.CampaignRepository
		ids      port.IdentityDirectory
		roles    port.RoleDirectory
		profiles port.ProfileStore
		closeFn  = func() {}
	)
	// Payouts are journaled by the repository; the book stands in for the
	// custody provider that moves the funds.
	transfer := memory.NewPayoutBook()
	switch cfg.Funding.Storage {
	case configs.StoragePostgres:
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		dir := postgres.NewDirectory(pool)
		repo, ids, roles, profiles = postgres.NewCampaignRepository(pool), dir, dir, dir
		closeFn = pool.Close
		logger.Info("using postgres storage", slog.Int("max_conns", int(pool.Config().MaxConns)))
	default:
		dir := memory.NewDirectory()
		repo, ids, roles, profiles = memory.NewCampaignRepository(), dir, dir, dir
		logger.Info("using in-memory storage")
	}

	a := &app{
		funding: usecase.NewFundingUseCase(repo, ids, roles, transfer, events, logger),
		access:  usecase.NewAccessUseCase(ids, roles, profiles, events, logger),
		close:   closeFn,
	}
	if err := a.access.Bootstrap(ctx, cfg.Funding.RootAccount); err != nil {
		a.close()
		return nil, fmt.Errorf("bootstrap root account: %w", err)
	}
	return a, nil
}

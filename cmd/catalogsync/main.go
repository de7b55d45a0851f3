// Command catalogsync runs one catalog sync from the configured source and
// exits non-zero on failure, for cron jobs and manual imports.
//
//	catalogsync -mode replace_all
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghuser/deloculator/pkg/app"
	"github.com/ghuser/deloculator/pkg/cache"
	"github.com/ghuser/deloculator/pkg/config"
	"github.com/ghuser/deloculator/pkg/database"
	"github.com/ghuser/deloculator/pkg/events"
	"github.com/ghuser/deloculator/pkg/logger"
	"github.com/ghuser/deloculator/pkg/telemetry"
	catalogsvcs "github.com/ghuser/deloculator/services/catalog/application/services"
	"github.com/ghuser/deloculator/services/catalog/domain/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	modeFlag := flag.String("mode", cfg.CatalogSyncMode, "reconciliation mode: upsert or replace_all")
	flag.Parse()

	log := logger.NewWithWriter(os.Stderr, cfg)

	mode, err := models.ParseSyncMode(*modeFlag)
	if err != nil {
		log.Error("invalid -mode", "error", err)
		os.Exit(2)
	}

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("sentry disabled", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, mode); err != nil {
		log.Error("catalog sync failed", "error", err)
		telemetry.CaptureSyncFailure(ctx, err, string(mode))
		telemetry.SentryFlush()
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger, mode models.SyncMode) error {
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer pool.Close() //nolint:errcheck

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		return err
	}
	defer eventBus.Close() //nolint:errcheck

	a := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
	}
	if rc, err := cache.NewRedisClient(ctx, cfg.RedisURL); err != nil {
		log.Warn("redis unavailable, syncing without lock", "error", err)
	} else {
		defer rc.Close() //nolint:errcheck
		a.Redis = rc
	}

	res, err := catalogsvcs.New(a).Catalog.Sync(ctx, mode)
	if err != nil {
		return err
	}
	log.Info("catalog sync finished",
		"mode", res.Mode,
		"inserted", res.Inserted,
		"updated", res.Updated,
		"source", cfg.CatalogSource,
	)
	return nil
}

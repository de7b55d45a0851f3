package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.temporal.io/sdk/worker"
	"golang.org/x/sync/errgroup"

	"github.com/ghuser/deloculator/pkg/app"
	"github.com/ghuser/deloculator/pkg/cache"
	"github.com/ghuser/deloculator/pkg/config"
	"github.com/ghuser/deloculator/pkg/database"
	"github.com/ghuser/deloculator/pkg/events"
	"github.com/ghuser/deloculator/pkg/logger"
	"github.com/ghuser/deloculator/pkg/telemetry"
	"github.com/ghuser/deloculator/pkg/workflows"
	catalogsvcs "github.com/ghuser/deloculator/services/catalog/application/services"
	"github.com/ghuser/deloculator/services/catalog/application/subscribers"
	catalogwf "github.com/ghuser/deloculator/services/catalog/application/workflows"
	catalogevents "github.com/ghuser/deloculator/services/catalog/domain/events"
	"github.com/ghuser/deloculator/services/catalog/domain/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	a := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn("redis unavailable, catalog cache and sync lock disabled", "error", err)
	} else {
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
		a.Redis = redisClient
	}

	if cfg.TemporalEnabled {
		temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
		a.TemporalClient = temporalClient
	}

	catalog := catalogsvcs.New(a).Catalog

	g, gctx := errgroup.WithContext(ctx)

	if err := registerSubscribers(gctx, g, a, catalog); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	if a.TemporalClient != nil {
		if err := startTemporalWorker(gctx, g, a, catalog); err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
	}

	if err := g.Wait(); err != nil {
		log.Error("worker stopped with error", "error", err)
	}
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers. Subscriber errors are
// drained in the errgroup until ctx ends.
func registerSubscribers(ctx context.Context, g *errgroup.Group, a *app.Application, catalog *catalogsvcs.CatalogService) error {
	errCh, err := a.EventBus.Subscribe(ctx, catalogevents.TopicCatalogSynced,
		subscribers.HandleCatalogSynced(catalog, a.Logger))
	if err != nil {
		return err
	}

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case err, ok := <-errCh:
				if !ok {
					return nil
				}
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", catalogevents.TopicCatalogSynced,
					"error", err,
				)
			}
		}
	})

	a.Logger.Info("event subscribers registered", "topics", []string{catalogevents.TopicCatalogSynced})
	return nil
}

// startTemporalWorker registers the catalog sync workflow, upserts its cron
// schedule and runs the worker until ctx ends.
func startTemporalWorker(ctx context.Context, g *errgroup.Group, a *app.Application, catalog *catalogsvcs.CatalogService) error {
	cfg := a.Config

	mode, err := models.ParseSyncMode(cfg.CatalogSyncMode)
	if err != nil {
		return err
	}

	w := worker.New(a.TemporalClient.Client, cfg.TemporalTaskQueue, worker.Options{})
	catalogwf.Register(w, &catalogwf.Activities{Catalog: catalog})
	if err := w.Start(); err != nil {
		return err
	}

	if err := a.TemporalClient.UpsertSchedule(ctx, catalogwf.ScheduleOptions(cfg.CatalogSyncCron, cfg.TemporalTaskQueue, mode)); err != nil {
		w.Stop()
		return err
	}
	a.Logger.Info("temporal worker started",
		"task_queue", cfg.TemporalTaskQueue,
		"cron", cfg.CatalogSyncCron,
		"mode", mode,
	)

	g.Go(func() error {
		<-ctx.Done()
		w.Stop()
		return nil
	})
	return nil
}

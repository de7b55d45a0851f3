package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/deloculator/pkg/cache"
	"github.com/ghuser/deloculator/pkg/config"
	"github.com/ghuser/deloculator/pkg/database"
	"github.com/ghuser/deloculator/pkg/events"
	"github.com/ghuser/deloculator/pkg/logger"
	"github.com/ghuser/deloculator/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Each bounded context builds its application services from it in its
// api.<Context>Routes function or, in the worker, directly.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "catalog synced", "inserted", n)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient        // nil when Redis is unavailable; caching and sync locking are then off
	TemporalClient *workflows.TemporalClient // nil unless TEMPORAL_ENABLED
	SessionStore   sessions.Store            // Redis-backed session store; nil in worker process
}

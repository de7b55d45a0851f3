package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/deloculator/pkg/config"
)

// scrubbedHeaders carry credentials that sentry-go does not filter on its own.
var scrubbedHeaders = []string{"X-Telegram-Init-Data"}

// SetupSentry initializes the Sentry SDK and tags every event with the
// service and catalog settings. No-ops if DSN is empty.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentryOptions(cfg)); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTags(sentryTags(cfg))
	})
	return nil
}

func sentryOptions(cfg *config.Config) sentry.ClientOptions {
	return sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		TracesSampleRate: 0.2,
		BeforeSend:       scrubEvent,
	}
}

func sentryTags(cfg *config.Config) map[string]string {
	return map[string]string{
		"service":           cfg.ServiceName,
		"catalog_source":    cfg.CatalogSource,
		"catalog_sync_mode": cfg.CatalogSyncMode,
	}
}

func scrubEvent(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	if event.Request != nil {
		for _, h := range scrubbedHeaders {
			delete(event.Request.Headers, h)
		}
	}
	return event
}

// CaptureSyncFailure reports a failed catalog sync run in mode. The hub
// attached to ctx by SentryMiddleware is used when there is one.
func CaptureSyncFailure(ctx context.Context, err error, mode string) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("sync_mode", mode)
		hub.CaptureException(err)
	})
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware returns a net/http middleware that captures panics and errors.
// Repanic: true so the outer Recovery middleware still handles the 500 response.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return h.Handle
}

package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"

	"github.com/ghuser/deloculator/pkg/config"
)

func TestSetupSentry_NoDSN(t *testing.T) {
	if err := SetupSentry(&config.Config{}); err != nil {
		t.Fatalf("expected no-op without DSN, got %v", err)
	}
}

func TestSentryOptions(t *testing.T) {
	cfg := &config.Config{
		SentryDSN:       "https://key@sentry.example.com/1",
		Environment:     config.EnvProduction,
		ServiceName:     "deloculator",
		ServiceVersion:  "1.4.0",
		CatalogSource:   config.CatalogSourceSheets,
		CatalogSyncMode: "replace_all",
	}

	opts := sentryOptions(cfg)
	if opts.Release != "deloculator@1.4.0" || opts.Environment != config.EnvProduction {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.BeforeSend == nil {
		t.Fatal("expected a BeforeSend scrubber")
	}

	tags := sentryTags(cfg)
	if tags["catalog_source"] != "sheets" || tags["catalog_sync_mode"] != "replace_all" || tags["service"] != "deloculator" {
		t.Fatalf("unexpected tags %v", tags)
	}
}

func TestScrubEvent_DropsTelegramInitData(t *testing.T) {
	event := &sentry.Event{Request: &sentry.Request{Headers: map[string]string{
		"X-Telegram-Init-Data": "user=%7B%22id%22%3A42%7D&hash=abc",
		"Accept":               "application/json",
	}}}

	got := scrubEvent(event, nil)
	if _, ok := got.Request.Headers["X-Telegram-Init-Data"]; ok {
		t.Fatal("init data must not be sent to Sentry")
	}
	if got.Request.Headers["Accept"] != "application/json" {
		t.Fatal("unrelated headers must be kept")
	}
	if scrubEvent(&sentry.Event{}, nil) == nil {
		t.Fatal("events without a request must pass through")
	}
}

func TestCaptureSyncFailure_TagsMode(t *testing.T) {
	var captured *sentry.Event
	client, err := sentry.NewClient(sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			captured = event
			return nil
		},
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	hub := sentry.NewHub(client, sentry.NewScope())
	ctx := sentry.SetHubOnContext(context.Background(), hub)

	CaptureSyncFailure(ctx, errors.New("sheet quota exceeded"), "upsert")

	if captured == nil {
		t.Fatal("expected an event")
	}
	if captured.Tags["sync_mode"] != "upsert" {
		t.Fatalf("expected sync_mode tag, got %v", captured.Tags)
	}
	if len(captured.Exception) == 0 || captured.Exception[0].Value != "sheet quota exceeded" {
		t.Fatalf("unexpected exception %+v", captured.Exception)
	}
}

// Package subscribers reacts to catalog domain events in the worker process.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/deloculator/pkg/logger"
	catalogevents "github.com/ghuser/deloculator/services/catalog/domain/events"
)

// GroupedRefresher rebuilds the cached grouped catalog.
// *services.CatalogService satisfies it.
type GroupedRefresher interface {
	RefreshGrouped(ctx context.Context) error
}

// HandleCatalogSynced returns the catalog.synced handler: it rewarms the
// grouped catalog cache. Handlers must be idempotent; EventBus retries up to
// 3 times on failure.
func HandleCatalogSynced(catalog GroupedRefresher, log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogevents.CatalogSyncedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			// A malformed payload never becomes valid; drop it instead of retrying.
			log.ErrorContext(ctx, "discarding malformed catalog.synced event",
				"message_uuid", msg.UUID, "error", err)
			return nil
		}

		if err := catalog.RefreshGrouped(ctx); err != nil {
			return fmt.Errorf("refresh grouped catalog after sync %s: %w", evt.EventID, err)
		}

		log.InfoContext(ctx, "grouped catalog cache rewarmed",
			"event_id", evt.EventID,
			"mode", evt.Mode,
			"inserted", evt.Inserted,
			"updated", evt.Updated,
		)
		return nil
	}
}

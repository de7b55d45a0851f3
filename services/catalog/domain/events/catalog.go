package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicCatalogSynced is the Watermill topic published when a catalog sync commits.
const TopicCatalogSynced = "catalog.synced"

// CatalogSyncedEvent is published inside the sync transaction, so subscribers
// only ever see it for a committed sync.
type CatalogSyncedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Mode       string    `json:"mode"`
	Inserted   int       `json:"inserted"`
	Updated    int       `json:"updated"`
	OccurredAt time.Time `json:"occurred_at"`
}

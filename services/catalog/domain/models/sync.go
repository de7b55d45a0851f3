package models

import (
	"fmt"
	"strings"

	catalogdomain "github.com/ghuser/deloculator/services/catalog/domain"
)

// SyncMode selects how an incoming product list is merged into the catalog.
type SyncMode string

const (
	// SyncModeUpsert matches entries by key, updating existing identities in
	// place and inserting the rest. Entries missing from the batch are kept.
	SyncModeUpsert SyncMode = "upsert"
	// SyncModeReplaceAll clears the catalog and inserts the batch with fresh identities.
	SyncModeReplaceAll SyncMode = "replace_all"
)

// ParseSyncMode parses a mode name; the empty string selects SyncModeUpsert.
func ParseSyncMode(s string) (SyncMode, error) {
	switch SyncMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", SyncModeUpsert:
		return SyncModeUpsert, nil
	case SyncModeReplaceAll:
		return SyncModeReplaceAll, nil
	default:
		return "", fmt.Errorf("%w: %q", catalogdomain.ErrInvalidSyncMode, s)
	}
}

// SyncPlan is the set of writes that reconciles the catalog with one batch.
type SyncPlan struct {
	Inserts []*CatalogEntry
	Updates []*CatalogEntry
}

// Result returns the counts the plan will produce once applied.
func (p SyncPlan) Result() Result {
	return Result{Inserted: len(p.Inserts), Updated: len(p.Updates)}
}

// Result reports the outcome of one sync.
type Result struct {
	Mode     SyncMode `json:"mode"`
	Inserted int      `json:"inserted"`
	Updated  int      `json:"updated"`
}

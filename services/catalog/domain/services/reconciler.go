// Package services holds the pure catalog rules: reconciliation of an
// incoming product list against the stored catalog and base-name derivation.
// Nothing here performs I/O.
package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ghuser/deloculator/services/catalog/domain/models"
)

// Reconcile plans an identity-preserving upsert of incoming into current.
//
// An incoming entry whose key matches a current entry becomes an update of that
// entry's identity with every mutable field overwritten; any other incoming
// entry becomes an insert with a fresh ID. Current entries missing from
// incoming are left out of the plan. When incoming repeats a key, the last
// occurrence wins and is counted once.
//
// Neither argument is mutated.
func Reconcile(current, incoming []*models.CatalogEntry) models.SyncPlan {
	byKey := make(map[models.Key]*models.CatalogEntry, len(current))
	for _, e := range current {
		byKey[e.Key()] = e
	}

	last := make(map[models.Key]int, len(incoming))
	for i, e := range incoming {
		last[e.Key()] = i
	}

	var plan models.SyncPlan
	for i, in := range incoming {
		key := in.Key()
		if last[key] != i {
			continue
		}
		if existing, ok := byKey[key]; ok {
			updated := *existing
			updated.Overwrite(in)
			plan.Updates = append(plan.Updates, &updated)
			continue
		}
		inserted := *in
		inserted.ID = uuid.New()
		plan.Inserts = append(plan.Inserts, &inserted)
	}
	return plan
}

// Fresh returns copies of entries with new identities, used by replace-all.
// Duplicate keys collapse to the last occurrence as in Reconcile.
func Fresh(entries []*models.CatalogEntry) []*models.CatalogEntry {
	return Reconcile(nil, entries).Inserts
}

// BaseName derives the display name of a product by stripping a trailing
// exact match of productType from the trimmed name. The name is returned
// unchanged when productType is empty or not a suffix.
func BaseName(name, productType string) string {
	trimmed := strings.TrimSpace(name)
	if productType == "" || !strings.HasSuffix(trimmed, productType) {
		return name
	}
	return strings.TrimSpace(strings.TrimSuffix(trimmed, productType))
}

package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrCatalogEntryNotFound indicates the requested catalog entry does not exist.
	ErrCatalogEntryNotFound = errors.New("catalog entry not found")

	// ErrInvalidCatalogEntry indicates an incoming entry violates domain constraints.
	ErrInvalidCatalogEntry = errors.New("invalid catalog entry")

	// ErrCatalogSourceUnavailable wraps any failure to fetch products from the
	// external catalog source. No sync happened when this is returned.
	ErrCatalogSourceUnavailable = errors.New("catalog source unavailable")

	// ErrEmptyCatalogFetch indicates the source returned no products.
	// It is reported as a failed sync, never as an empty catalog.
	ErrEmptyCatalogFetch = errors.New("catalog source returned no products")

	// ErrSyncInProgress indicates another catalog sync holds the sync lock.
	ErrSyncInProgress = errors.New("catalog sync already in progress")

	// ErrInvalidSyncMode indicates an unknown reconciliation mode.
	ErrInvalidSyncMode = errors.New("invalid catalog sync mode")
)

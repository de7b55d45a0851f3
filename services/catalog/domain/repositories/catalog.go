package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/deloculator/services/catalog/domain/models"
)

// MaxSearchLimit caps the number of results a catalog search may return.
const MaxSearchLimit = 100

// CatalogRepository is the persistence boundary of the catalog. ApplyPlan and
// ReplaceAll each commit in a single transaction: either every write of the
// batch is visible afterwards or none is.
type CatalogRepository interface {
	// List returns every entry ordered by product type then name.
	List(ctx context.Context) ([]*models.CatalogEntry, error)
	// FindByID reports found=false when no entry has the given id.
	FindByID(ctx context.Context, id uuid.UUID) (*models.CatalogEntry, bool, error)
	// Search matches query case-insensitively anywhere in the name.
	// limit must be between 1 and MaxSearchLimit.
	Search(ctx context.Context, query string, limit int) ([]*models.CatalogEntry, error)
	// ApplyPlan writes the inserts and updates of one reconciliation.
	ApplyPlan(ctx context.Context, plan models.SyncPlan) error
	// ReplaceAll deletes every entry and inserts entries, returning the number inserted.
	ReplaceAll(ctx context.Context, entries []*models.CatalogEntry) (int, error)
}

// CatalogSource fetches the current product list from the external source of truth.
type CatalogSource interface {
	FetchProducts(ctx context.Context) ([]*models.CatalogEntry, error)
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/deloculator/pkg/database"
	"github.com/ghuser/deloculator/pkg/events"
	domainevents "github.com/ghuser/deloculator/services/catalog/domain/events"
	"github.com/ghuser/deloculator/services/catalog/domain/models"
	"github.com/ghuser/deloculator/services/catalog/domain/repositories"
	"github.com/ghuser/deloculator/services/catalog/infrastructure/persistence/postgres/db"
)

// CatalogRepository implements repositories.CatalogRepository against PostgreSQL.
type CatalogRepository struct {
	db  *database.Database
	bus *events.EventBus
	now func() time.Time
}

// NewCatalogRepository returns a CatalogRepository backed by the given connection pool
// and event bus. The bus is used to publish a CatalogSyncedEvent inside every sync
// transaction; a nil bus disables publishing.
func NewCatalogRepository(database *database.Database, bus *events.EventBus) *CatalogRepository {
	return &CatalogRepository{db: database, bus: bus, now: time.Now}
}

// List returns every entry ordered by product type then name.
func (r *CatalogRepository) List(ctx context.Context) ([]*models.CatalogEntry, error) {
	rows, err := db.New(r.db.DB()).ListCatalogEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("query catalog entries: %w", err)
	}
	return rowsToEntries(rows)
}

// FindByID loads one entry. found is false when no row matches.
func (r *CatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.CatalogEntry, bool, error) {
	row, err := db.New(r.db.DB()).GetCatalogEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query catalog entry: %w", err)
	}
	entry, err := rowToEntry(row)
	if err != nil {
		return nil, false, err
	}
	return entry, true, nil
}

// Search returns up to limit entries whose name contains query, ignoring case.
func (r *CatalogRepository) Search(ctx context.Context, query string, limit int) ([]*models.CatalogEntry, error) {
	if limit < 1 || limit > repositories.MaxSearchLimit {
		return nil, fmt.Errorf("search limit %d out of range 1..%d", limit, repositories.MaxSearchLimit)
	}
	rows, err := db.New(r.db.DB()).SearchCatalogEntries(ctx, db.SearchCatalogEntriesParams{
		Query:      query,
		MaxResults: int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("search catalog entries: %w", err)
	}
	return rowsToEntries(rows)
}

// ApplyPlan writes every insert and update of plan in one transaction together
// with the catalog.synced event. An update whose row has vanished aborts the
// whole batch.
func (r *CatalogRepository) ApplyPlan(ctx context.Context, plan models.SyncPlan) error {
	now := r.now().UTC()
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		for _, e := range plan.Inserts {
			if err := insertEntry(ctx, q, e, now); err != nil {
				return err
			}
		}
		for _, e := range plan.Updates {
			breakdown, err := json.Marshal(e.CostBreakdown)
			if err != nil {
				return fmt.Errorf("marshal cost breakdown: %w", err)
			}
			n, err := q.UpdateCatalogEntry(ctx, db.UpdateCatalogEntryParams{
				ID:            e.ID,
				SalePrice:     e.SalePrice,
				CostPrice:     e.CostPrice,
				CostBreakdown: breakdown,
				UpdatedAt:     now,
			})
			if err != nil {
				return fmt.Errorf("update catalog entry %s: %w", e.ID, err)
			}
			if n == 0 {
				return fmt.Errorf("update catalog entry %s: row no longer exists", e.ID)
			}
			e.UpdatedAt = now
		}
		result := plan.Result()
		result.Mode = models.SyncModeUpsert
		return r.publishSynced(ctx, tx, result, now)
	})
}

// ReplaceAll clears the catalog and inserts entries in one transaction.
func (r *CatalogRepository) ReplaceAll(ctx context.Context, entries []*models.CatalogEntry) (int, error) {
	now := r.now().UTC()
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if _, err := q.DeleteAllCatalogEntries(ctx); err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}
		for _, e := range entries {
			if err := insertEntry(ctx, q, e, now); err != nil {
				return err
			}
		}
		return r.publishSynced(ctx, tx, models.Result{Mode: models.SyncModeReplaceAll, Inserted: len(entries)}, now)
	})
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

func insertEntry(ctx context.Context, q *db.Queries, e *models.CatalogEntry, now time.Time) error {
	breakdown, err := json.Marshal(e.CostBreakdown)
	if err != nil {
		return fmt.Errorf("marshal cost breakdown: %w", err)
	}
	if err := q.InsertCatalogEntry(ctx, db.InsertCatalogEntryParams{
		ID:            e.ID,
		Name:          e.Name,
		ProductType:   e.ProductType,
		SalePrice:     e.SalePrice,
		CostPrice:     e.CostPrice,
		CostBreakdown: breakdown,
		UpdatedAt:     now,
	}); err != nil {
		return fmt.Errorf("insert catalog entry %q: %w", e.Name, err)
	}
	e.UpdatedAt = now
	return nil
}

func (r *CatalogRepository) publishSynced(ctx context.Context, tx *sql.Tx, result models.Result, at time.Time) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.CatalogSyncedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Mode:       string(result.Mode),
		Inserted:   result.Inserted,
		Updated:    result.Updated,
		OccurredAt: at,
	}
	msg, err := events.NewMessage(ctx, event.EventID, event.Version, event)
	if err != nil {
		return fmt.Errorf("build catalog synced event: %w", err)
	}
	if err := r.bus.PublishTx(tx, domainevents.TopicCatalogSynced, msg); err != nil {
		return fmt.Errorf("publish catalog synced: %w", err)
	}
	return nil
}

func rowsToEntries(rows []db.CatalogEntry) ([]*models.CatalogEntry, error) {
	entries := make([]*models.CatalogEntry, 0, len(rows))
	for _, row := range rows {
		e, err := rowToEntry(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// rowToEntry maps a db.CatalogEntry to a domain models.CatalogEntry.
// Components missing from the stored JSON stay zero.
func rowToEntry(row db.CatalogEntry) (*models.CatalogEntry, error) {
	e := &models.CatalogEntry{
		ID:          row.ID,
		Name:        row.Name,
		ProductType: row.ProductType,
		SalePrice:   row.SalePrice,
		CostPrice:   row.CostPrice,
		UpdatedAt:   row.UpdatedAt,
	}
	if len(row.CostBreakdown) > 0 {
		if err := json.Unmarshal(row.CostBreakdown, &e.CostBreakdown); err != nil {
			return nil, fmt.Errorf("decode cost breakdown of %s: %w", row.ID, err)
		}
	}
	return e, nil
}

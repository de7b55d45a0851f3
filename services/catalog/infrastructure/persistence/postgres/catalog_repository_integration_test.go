package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/deloculator/pkg/config"
	"github.com/ghuser/deloculator/pkg/database"
	"github.com/ghuser/deloculator/pkg/events"
	"github.com/ghuser/deloculator/pkg/logger"
	"github.com/ghuser/deloculator/pkg/migrator"
	domainevents "github.com/ghuser/deloculator/services/catalog/domain/events"
	"github.com/ghuser/deloculator/services/catalog/domain/models"
	domainsvcs "github.com/ghuser/deloculator/services/catalog/domain/services"
)

const syncedOutboxTable = `"watermill_` + domainevents.TopicCatalogSynced + `"`

// Integration tests: skipped unless DATABASE_URL is set.
func newIntegrationRepo(t *testing.T) (*CatalogRepository, *database.Database) {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}
	ctx := context.Background()
	log := logger.Discard()

	if err := migrator.RunMigrations(ctx, dsn, os.DirFS("../../../../../migrations/quotes"), log); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	pool, err := database.NewPool(ctx, dsn, log)
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	t.Cleanup(func() { _ = pool.Close() })
	if _, err := pool.DB().ExecContext(ctx, "TRUNCATE catalog_entries"); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	bus, err := events.NewEventBus(&config.Config{DatabaseURL: dsn, ServiceName: "catalog-repo-test"}, log)
	if err != nil {
		t.Fatalf("event bus: %v", err)
	}
	t.Cleanup(func() { _ = bus.Close() })
	// The first plain publish creates the topic table the tx publisher writes to.
	msg, err := events.NewMessage(ctx, uuid.New(), 1, domainevents.CatalogSyncedEvent{})
	if err != nil {
		t.Fatalf("message: %v", err)
	}
	if err := bus.Publish(ctx, domainevents.TopicCatalogSynced, msg); err != nil {
		t.Fatalf("create outbox table: %v", err)
	}

	return NewCatalogRepository(pool, bus), pool
}

func countRows(t *testing.T, pool *database.Database, table string) int {
	t.Helper()
	var n int
	if err := pool.DB().QueryRowContext(context.Background(), "SELECT count(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func newEntry(name, typ, sale string) *models.CatalogEntry {
	return &models.CatalogEntry{
		ID:          uuid.New(),
		Name:        name,
		ProductType: typ,
		SalePrice:   decimal.RequireFromString(sale),
		CostPrice:   decimal.RequireFromString("1"),
	}
}

func TestCatalogRepository_ApplyPlanIsAtomic(t *testing.T) {
	repo, pool := newIntegrationRepo(t)
	ctx := context.Background()
	outbox := countRows(t, pool, syncedOutboxTable)

	plan := models.SyncPlan{Inserts: []*models.CatalogEntry{
		newEntry("Chair Model X Chair", "Chair", "250"),
		newEntry("Table A Table", "Table", "400"),
		newEntry("Chair Model X Chair", "Chair", "260"),
	}}
	if err := repo.ApplyPlan(ctx, plan); err == nil {
		t.Fatal("expected unique violation on the third insert")
	}
	if n := countRows(t, pool, "catalog_entries"); n != 0 {
		t.Fatalf("failed batch left %d rows behind", n)
	}
	if n := countRows(t, pool, syncedOutboxTable); n != outbox {
		t.Fatalf("failed batch published %d events", n-outbox)
	}

	plan.Inserts = plan.Inserts[:2]
	if err := repo.ApplyPlan(ctx, plan); err != nil {
		t.Fatalf("ApplyPlan: %v", err)
	}
	if n := countRows(t, pool, "catalog_entries"); n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}
	if n := countRows(t, pool, syncedOutboxTable); n != outbox+1 {
		t.Fatalf("expected one catalog.synced event, got %d", n-outbox)
	}
}

func TestCatalogRepository_UpsertKeepsIdentity(t *testing.T) {
	repo, _ := newIntegrationRepo(t)
	ctx := context.Background()

	current, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	first := domainsvcs.Reconcile(current, []*models.CatalogEntry{newEntry("Sofa Lux Sofa", "Sofa", "900")})
	if err := repo.ApplyPlan(ctx, first); err != nil {
		t.Fatalf("ApplyPlan: %v", err)
	}

	current, _ = repo.List(ctx)
	second := domainsvcs.Reconcile(current, []*models.CatalogEntry{newEntry("Sofa Lux Sofa", "Sofa", "999.995")})
	if err := repo.ApplyPlan(ctx, second); err != nil {
		t.Fatalf("ApplyPlan: %v", err)
	}

	after, _ := repo.List(ctx)
	if len(after) != 1 || after[0].ID != current[0].ID {
		t.Fatalf("expected the stored identity to survive, got %+v", after)
	}
	if !after[0].SalePrice.Equal(decimal.RequireFromString("999.995")) {
		t.Fatalf("sale price not stored exactly: %s", after[0].SalePrice)
	}
}

func TestCatalogRepository_ReplaceAllIsAtomic(t *testing.T) {
	repo, pool := newIntegrationRepo(t)
	ctx := context.Background()

	if _, err := repo.ReplaceAll(ctx, []*models.CatalogEntry{newEntry("Stool Stool", "Stool", "50")}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	outbox := countRows(t, pool, syncedOutboxTable)

	_, err := repo.ReplaceAll(ctx, []*models.CatalogEntry{
		newEntry("Bench Bench", "Bench", "80"),
		newEntry("Bench Bench", "Bench", "90"),
	})
	if err == nil {
		t.Fatal("expected unique violation")
	}
	entries, _ := repo.List(ctx)
	if len(entries) != 1 || entries[0].Name != "Stool Stool" {
		t.Fatalf("failed replace must keep the previous catalog, got %+v", entries)
	}
	if n := countRows(t, pool, syncedOutboxTable); n != outbox {
		t.Fatalf("failed replace published %d events", n-outbox)
	}

	n, err := repo.ReplaceAll(ctx, []*models.CatalogEntry{newEntry("Bench Bench", "Bench", "80")})
	if err != nil || n != 1 {
		t.Fatalf("ReplaceAll = %d, %v", n, err)
	}
	entries, _ = repo.List(ctx)
	if len(entries) != 1 || entries[0].Name != "Bench Bench" {
		t.Fatalf("expected only the new batch, got %+v", entries)
	}
}

func TestCatalogRepository_Search(t *testing.T) {
	repo, _ := newIntegrationRepo(t)
	ctx := context.Background()
	if _, err := repo.ReplaceAll(ctx, []*models.CatalogEntry{
		newEntry("Chair Model X Chair", "Chair", "250"),
		newEntry("Armchair Soft Chair", "Chair", "300"),
		newEntry("Table A Table", "Table", "400"),
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	found, err := repo.Search(ctx, "CHAIR", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 case-insensitive matches, got %d", len(found))
	}
	if _, err := repo.Search(ctx, "chair", 0); err == nil {
		t.Fatal("expected error for limit 0")
	}
}

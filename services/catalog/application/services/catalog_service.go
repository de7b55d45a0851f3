package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	pkgcache "github.com/ghuser/deloculator/pkg/cache"
	"github.com/ghuser/deloculator/pkg/logger"
	catalogdomain "github.com/ghuser/deloculator/services/catalog/domain"
	"github.com/ghuser/deloculator/services/catalog/domain/models"
	"github.com/ghuser/deloculator/services/catalog/domain/repositories"
	domainsvcs "github.com/ghuser/deloculator/services/catalog/domain/services"
)

const (
	syncLockKey = "catalog-sync"
	// syncLockTTL outlives the slowest expected fetch plus write.
	syncLockTTL = 2 * time.Minute

	// DefaultSearchLimit is used when a search does not ask for a limit.
	DefaultSearchLimit = 20
)

// Locker serializes catalog syncs across processes.
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error)
}

// GroupedCache holds the grouped catalog listing.
type GroupedCache interface {
	GetGrouped(ctx context.Context) ([]pkgcache.CachedCatalogEntry, error)
	SetGrouped(ctx context.Context, entries []pkgcache.CachedCatalogEntry) error
	Invalidate(ctx context.Context) error
}

// CatalogService runs catalog syncs and serves catalog reads.
// The locker and cache are optional; nil disables them.
type CatalogService struct {
	repo   repositories.CatalogRepository
	source repositories.CatalogSource
	locker Locker
	cache  GroupedCache
	log    logger.Logger

	syncInserted metric.Int64Counter
	syncUpdated  metric.Int64Counter
}

// NewCatalogService returns a CatalogService wired with its collaborators.
func NewCatalogService(
	repo repositories.CatalogRepository,
	source repositories.CatalogSource,
	locker Locker,
	cache GroupedCache,
	log logger.Logger,
) *CatalogService {
	inserted, updated := syncCounters(otel.Meter("github.com/ghuser/deloculator/services/catalog"), log)
	return &CatalogService{
		repo:         repo,
		source:       source,
		locker:       locker,
		cache:        cache,
		log:          log,
		syncInserted: inserted,
		syncUpdated:  updated,
	}
}

// syncCounters creates the sync counters on meter. A counter the meter cannot
// create is logged and replaced by a no-op one.
func syncCounters(meter metric.Meter, log logger.Logger) (inserted, updated metric.Int64Counter) {
	counter := func(name, desc string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			log.Warn("create catalog sync counter, using no-op", "counter", name, "error", err)
			c, _ = noop.Meter{}.Int64Counter(name)
		}
		return c
	}
	return counter("catalog.sync.inserted", "Catalog entries inserted by sync"),
		counter("catalog.sync.updated", "Catalog entries updated by sync")
}

// Sync fetches the product list from the source and merges it into the
// catalog with the given mode. Storage is not touched when the fetch fails or
// returns nothing. Only one sync runs at a time; a concurrent call fails with
// ErrSyncInProgress.
func (s *CatalogService) Sync(ctx context.Context, mode models.SyncMode) (models.Result, error) {
	mode, err := models.ParseSyncMode(string(mode))
	if err != nil {
		return models.Result{}, err
	}

	if s.locker != nil {
		release, err := s.locker.Obtain(ctx, syncLockKey, syncLockTTL)
		if errors.Is(err, pkgcache.ErrLockHeld) {
			return models.Result{}, catalogdomain.ErrSyncInProgress
		}
		if err != nil {
			return models.Result{}, fmt.Errorf("lock catalog sync: %w", err)
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				s.log.WarnContext(ctx, "release catalog sync lock", "error", err)
			}
		}()
	}

	incoming, err := s.source.FetchProducts(ctx)
	if err != nil {
		if !errors.Is(err, catalogdomain.ErrCatalogSourceUnavailable) {
			err = fmt.Errorf("%w: %w", catalogdomain.ErrCatalogSourceUnavailable, err)
		}
		s.log.ErrorContext(ctx, "catalog fetch failed, sync skipped", "error", err)
		return models.Result{}, err
	}
	if len(incoming) == 0 {
		s.log.WarnContext(ctx, "catalog source returned no products, sync skipped")
		return models.Result{}, catalogdomain.ErrEmptyCatalogFetch
	}

	var result models.Result
	switch mode {
	case models.SyncModeReplaceAll:
		n, err := s.repo.ReplaceAll(ctx, domainsvcs.Fresh(incoming))
		if err != nil {
			return models.Result{}, fmt.Errorf("replace catalog: %w", err)
		}
		result = models.Result{Inserted: n}
	default:
		current, err := s.repo.List(ctx)
		if err != nil {
			return models.Result{}, fmt.Errorf("load catalog: %w", err)
		}
		plan := domainsvcs.Reconcile(current, incoming)
		if err := s.repo.ApplyPlan(ctx, plan); err != nil {
			return models.Result{}, fmt.Errorf("apply catalog plan: %w", err)
		}
		result = plan.Result()
	}
	result.Mode = mode

	attrs := metric.WithAttributes(attribute.String("mode", string(mode)))
	s.syncInserted.Add(ctx, int64(result.Inserted), attrs)
	s.syncUpdated.Add(ctx, int64(result.Updated), attrs)
	s.log.InfoContext(ctx, "catalog synced", "mode", mode, "inserted", result.Inserted, "updated", result.Updated)

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.WarnContext(ctx, "invalidate grouped catalog cache", "error", err)
		}
	}
	return result, nil
}

// Grouped returns every entry with its base name, read through the cache.
func (s *CatalogService) Grouped(ctx context.Context) ([]pkgcache.CachedCatalogEntry, error) {
	if s.cache != nil {
		cached, err := s.cache.GetGrouped(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, pkgcache.ErrCacheMiss) {
			s.log.WarnContext(ctx, "read grouped catalog cache", "error", err)
		}
	}
	return s.buildGrouped(ctx)
}

// RefreshGrouped rebuilds the cached grouped listing from storage.
func (s *CatalogService) RefreshGrouped(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		return err
	}
	_, err := s.buildGrouped(ctx)
	return err
}

func (s *CatalogService) buildGrouped(ctx context.Context) ([]pkgcache.CachedCatalogEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	grouped := make([]pkgcache.CachedCatalogEntry, len(entries))
	for i, e := range entries {
		grouped[i] = pkgcache.CachedCatalogEntry{
			ID:          e.ID,
			Name:        e.Name,
			BaseName:    domainsvcs.BaseName(e.Name, e.ProductType),
			ProductType: e.ProductType,
			SalePrice:   e.SalePrice,
			CostPrice:   e.CostPrice,
		}
	}
	if s.cache != nil {
		if err := s.cache.SetGrouped(ctx, grouped); err != nil {
			s.log.WarnContext(ctx, "write grouped catalog cache", "error", err)
		}
	}
	return grouped, nil
}

// Search finds entries whose name contains query. A limit of 0 means
// DefaultSearchLimit; larger limits are capped at MaxSearchLimit.
func (s *CatalogService) Search(ctx context.Context, query string, limit int) ([]*models.CatalogEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultSearchLimit
	case limit > repositories.MaxSearchLimit:
		limit = repositories.MaxSearchLimit
	}
	entries, err := s.repo.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search catalog: %w", err)
	}
	return entries, nil
}

// Get returns one catalog entry.
func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*models.CatalogEntry, error) {
	entry, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get catalog entry: %w", err)
	}
	if !found {
		return nil, catalogdomain.ErrCatalogEntryNotFound
	}
	return entry, nil
}

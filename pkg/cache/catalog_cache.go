package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	// CatalogCacheTTL bounds how stale the grouped catalog can get if an
	// invalidation event is lost.
	CatalogCacheTTL = time.Hour

	catalogGroupedKey = "catalog:grouped"
)

// ErrCacheMiss is returned by CatalogCache.GetGrouped when nothing is cached.
var ErrCacheMiss = errors.New("cache miss")

// CachedCatalogEntry is the read model of the grouped catalog listing.
type CachedCatalogEntry struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	BaseName    string          `json:"base_name"`
	ProductType string          `json:"product_type"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	CostPrice   decimal.Decimal `json:"cost_price"`
}

// CatalogCache stores the grouped catalog listing as one JSON document.
// Key format: "catalog:grouped"
type CatalogCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewCatalogCache creates a new CatalogCache backed by the given RedisClient.
func NewCatalogCache(r *RedisClient) *CatalogCache {
	return &CatalogCache{client: r, ttl: CatalogCacheTTL}
}

// GetGrouped returns the cached listing, or ErrCacheMiss.
func (c *CatalogCache) GetGrouped(ctx context.Context) ([]CachedCatalogEntry, error) {
	data, err := c.client.Client().Get(ctx, catalogGroupedKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var entries []CachedCatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return entries, nil
}

// SetGrouped replaces the cached listing.
func (c *CatalogCache) SetGrouped(ctx context.Context, entries []CachedCatalogEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, catalogGroupedKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached listing.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Client().Del(ctx, catalogGroupedKey).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Package memory provides an in-process catalog store for tests and local tooling.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/deloculator/services/catalog/domain/models"
	"github.com/ghuser/deloculator/services/catalog/domain/repositories"
)

var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository is an in-memory repositories.CatalogRepository. Batches
// are validated before any write, so a failing batch leaves the store as it was.
type CatalogRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]models.CatalogEntry
	now     func() time.Time
}

// NewCatalogRepository returns an empty store.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		entries: map[uuid.UUID]models.CatalogEntry{},
		now:     time.Now,
	}
}

func (m *CatalogRepository) List(_ context.Context) ([]*models.CatalogEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sorted(), nil
}

func (m *CatalogRepository) sorted() []*models.CatalogEntry {
	out := make([]*models.CatalogEntry, 0, len(m.entries))
	for _, e := range m.entries {
		c := e
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductType != out[j].ProductType {
			return out[i].ProductType < out[j].ProductType
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (m *CatalogRepository) FindByID(_ context.Context, id uuid.UUID) (*models.CatalogEntry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[id]
	if !ok {
		return nil, false, nil
	}
	return &e, true, nil
}

func (m *CatalogRepository) Search(_ context.Context, query string, limit int) ([]*models.CatalogEntry, error) {
	if limit < 1 || limit > repositories.MaxSearchLimit {
		return nil, fmt.Errorf("search limit %d out of range", limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := strings.ToLower(query)
	var out []*models.CatalogEntry
	for _, e := range m.sorted() {
		if strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (m *CatalogRepository) ApplyPlan(_ context.Context, plan models.SyncPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range plan.Updates {
		if _, ok := m.entries[u.ID]; !ok {
			return fmt.Errorf("update catalog entry %s: not found", u.ID)
		}
	}
	now := m.now().UTC()
	for _, e := range plan.Inserts {
		c := *e
		c.UpdatedAt = now
		m.entries[c.ID] = c
	}
	for _, e := range plan.Updates {
		c := *e
		c.UpdatedAt = now
		m.entries[c.ID] = c
	}
	return nil
}

func (m *CatalogRepository) ReplaceAll(_ context.Context, entries []*models.CatalogEntry) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	m.entries = make(map[uuid.UUID]models.CatalogEntry, len(entries))
	for _, e := range entries {
		c := *e
		c.UpdatedAt = now
		m.entries[c.ID] = c
	}
	return len(entries), nil
}

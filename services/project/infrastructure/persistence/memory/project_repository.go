// Package memory provides an in-process project store for tests and local tooling.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	projectdomain "github.com/ghuser/deloculator/services/project/domain"
	"github.com/ghuser/deloculator/services/project/domain/models"
	"github.com/ghuser/deloculator/services/project/domain/repositories"
)

var _ repositories.ProjectRepository = (*ProjectRepository)(nil)

// ProjectRepository is an in-memory repositories.ProjectRepository. It stores
// copies, so callers never share state with the store.
type ProjectRepository struct {
	mu       sync.Mutex
	projects map[uuid.UUID]*models.Project
}

// NewProjectRepository returns an empty store.
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{projects: map[uuid.UUID]*models.Project{}}
}

func clone(p *models.Project) *models.Project {
	c := *p
	c.Items = make([]*models.Item, len(p.Items))
	for i, it := range p.Items {
		item := *it
		c.Items[i] = &item
	}
	return &c
}

func (m *ProjectRepository) Save(_ context.Context, p *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects[p.ID] = clone(p)
	return nil
}

func (m *ProjectRepository) FindByID(_ context.Context, id uuid.UUID) (*models.Project, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return nil, false, nil
	}
	return clone(p), true, nil
}

func (m *ProjectRepository) List(_ context.Context, includeArchived bool) ([]*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Project
	for _, p := range m.projects {
		if p.IsArchived && !includeArchived {
			continue
		}
		out = append(out, clone(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *ProjectRepository) Update(_ context.Context, p *models.Project) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.projects[p.ID]
	if !ok {
		return false, nil
	}
	items := stored.Items
	*stored = *clone(p)
	stored.Items = items
	return true, nil
}

func (m *ProjectRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.projects[id]
	delete(m.projects, id)
	return ok, nil
}

func (m *ProjectRepository) AppendItem(_ context.Context, item *models.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[item.ProjectID]
	if !ok {
		return projectdomain.ErrProjectNotFound
	}
	c := *item
	p.Items = append(p.Items, &c)
	return nil
}

func (m *ProjectRepository) RemoveItem(_ context.Context, projectID, itemID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[projectID]
	if !ok {
		return false, nil
	}
	for i, it := range p.Items {
		if it.ID == itemID {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *ProjectRepository) UpdateItemQuantity(_ context.Context, projectID, itemID uuid.UUID, quantity int) (*models.Item, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[projectID]
	if !ok {
		return nil, false, nil
	}
	it, ok := p.Item(itemID)
	if !ok {
		return nil, false, nil
	}
	it.Quantity = quantity
	c := *it
	return &c, true, nil
}

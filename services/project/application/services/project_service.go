package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/deloculator/pkg/logger"
	"github.com/ghuser/deloculator/services/project/application/export"
	projectdomain "github.com/ghuser/deloculator/services/project/domain"
	"github.com/ghuser/deloculator/services/project/domain/models"
	"github.com/ghuser/deloculator/services/project/domain/repositories"
	domainsvcs "github.com/ghuser/deloculator/services/project/domain/services"
)

// CreateProjectInput carries the fields of a new project.
type CreateProjectInput struct {
	Name        string
	Client      string
	DiscountPct decimal.Decimal
	TaxPct      decimal.Decimal
	Notes       string
}

// AddItemInput carries the fields of a new project item.
type AddItemInput struct {
	Name      string
	ItemType  string
	UnitPrice decimal.Decimal
	UnitCost  decimal.Decimal
	Quantity  int
}

// ProjectService orchestrates project and item use cases. It loads and saves
// aggregates through the repository and prices them with the domain pricing
// service; it holds no business rules of its own.
type ProjectService struct {
	repo repositories.ProjectRepository
	log  logger.Logger
}

// NewProjectService returns a ProjectService wired with the given repository.
func NewProjectService(repo repositories.ProjectRepository, log logger.Logger) *ProjectService {
	return &ProjectService{repo: repo, log: log}
}

// Create validates and persists a new, empty project.
func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (*domainsvcs.Quote, error) {
	project, err := models.NewProject(in.Name, in.Client, in.DiscountPct, in.TaxPct, in.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, project); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	s.log.InfoContext(ctx, "project created", "project_id", project.ID)
	return quote(project), nil
}

// Get returns a priced project or ErrProjectNotFound.
func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*domainsvcs.Quote, error) {
	project, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return quote(project), nil
}

// List returns priced projects, newest first.
func (s *ProjectService) List(ctx context.Context, includeArchived bool) ([]*domainsvcs.Quote, error) {
	projects, err := s.repo.List(ctx, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	quotes := make([]*domainsvcs.Quote, len(projects))
	for i, p := range projects {
		quotes[i] = quote(p)
	}
	return quotes, nil
}

// Update applies a partial update. The patched project is validated before
// anything is written.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, patch models.ProjectPatch) (*domainsvcs.Quote, error) {
	project, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return quote(project), nil
	}
	if err := project.Apply(patch); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	if !updated {
		return nil, projectdomain.ErrProjectNotFound
	}
	return quote(project), nil
}

// Delete removes a project and its items.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if !deleted {
		return projectdomain.ErrProjectNotFound
	}
	s.log.InfoContext(ctx, "project deleted", "project_id", id)
	return nil
}

// AddItem appends a validated item to an existing project.
func (s *ProjectService) AddItem(ctx context.Context, projectID uuid.UUID, in AddItemInput) (*models.Item, error) {
	if _, err := s.load(ctx, projectID); err != nil {
		return nil, err
	}
	item, err := models.NewItem(projectID, in.Name, in.ItemType, in.UnitPrice, in.UnitCost, in.Quantity)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AppendItem(ctx, item); err != nil {
		return nil, fmt.Errorf("append item: %w", err)
	}
	return item, nil
}

// UpdateItemQuantity sets the quantity of an item in the given project.
func (s *ProjectService) UpdateItemQuantity(ctx context.Context, projectID, itemID uuid.UUID, quantity int) (*models.Item, error) {
	if err := models.ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	item, found, err := s.repo.UpdateItemQuantity(ctx, projectID, itemID, quantity)
	if err != nil {
		return nil, fmt.Errorf("update item quantity: %w", err)
	}
	if !found {
		return nil, projectdomain.ErrItemNotFound
	}
	return item, nil
}

// RemoveItem deletes an item from the given project.
func (s *ProjectService) RemoveItem(ctx context.Context, projectID, itemID uuid.UUID) error {
	removed, err := s.repo.RemoveItem(ctx, projectID, itemID)
	if err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	if !removed {
		return projectdomain.ErrItemNotFound
	}
	return nil
}

// Export renders a priced project in the requested format.
func (s *ProjectService) Export(ctx context.Context, id uuid.UUID, format export.Format) (*export.Document, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	doc, err := export.Render(*q, format)
	if err != nil {
		return nil, fmt.Errorf("render %s export: %w", format, err)
	}
	return doc, nil
}

func (s *ProjectService) load(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if !found {
		return nil, projectdomain.ErrProjectNotFound
	}
	return project, nil
}

func quote(p *models.Project) *domainsvcs.Quote {
	q := domainsvcs.NewQuote(p)
	return &q
}

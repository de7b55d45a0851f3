package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/deloculator/services/project/domain/models"
)

// ProjectRepository is the persistence interface for the Project aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Absence is reported through the found/deleted booleans, never as an error.
type ProjectRepository interface {
	// Save inserts a new project together with any items it already holds.
	Save(ctx context.Context, project *models.Project) error

	// FindByID loads a project with its items in insertion order.
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, bool, error)

	// List returns projects with their items, newest first.
	// Archived projects are included only when includeArchived is set.
	List(ctx context.Context, includeArchived bool) ([]*models.Project, error)

	// Update persists the project's own fields. Items are not touched.
	Update(ctx context.Context, project *models.Project) (bool, error)

	// Delete removes the project and, by cascade, its items.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// AppendItem adds the item after the project's existing items.
	AppendItem(ctx context.Context, item *models.Item) error

	// RemoveItem deletes the item if it belongs to projectID.
	RemoveItem(ctx context.Context, projectID, itemID uuid.UUID) (bool, error)

	// UpdateItemQuantity sets the quantity of an item that belongs to
	// projectID and returns the updated item.
	UpdateItemQuantity(ctx context.Context, projectID, itemID uuid.UUID, quantity int) (*models.Item, bool, error)
}

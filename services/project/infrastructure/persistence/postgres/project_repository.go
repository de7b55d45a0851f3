package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/deloculator/pkg/database"
	projectdomain "github.com/ghuser/deloculator/services/project/domain"
	"github.com/ghuser/deloculator/services/project/domain/models"
	"github.com/ghuser/deloculator/services/project/infrastructure/persistence/postgres/db"
)

const foreignKeyViolation = "23503"

// ProjectRepository implements repositories.ProjectRepository against PostgreSQL.
type ProjectRepository struct {
	db *database.Database
}

// NewProjectRepository returns a ProjectRepository backed by the given connection pool.
func NewProjectRepository(database *database.Database) *ProjectRepository {
	return &ProjectRepository{db: database}
}

// Save inserts the project and its items in one transaction.
func (r *ProjectRepository) Save(ctx context.Context, project *models.Project) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.InsertProject(ctx, db.InsertProjectParams{
			ID:          project.ID,
			Name:        project.Name,
			Client:      project.Client,
			DiscountPct: project.DiscountPct,
			TaxPct:      project.TaxPct,
			Notes:       project.Notes,
			IsArchived:  project.IsArchived,
			CreatedAt:   project.CreatedAt,
		}); err != nil {
			return fmt.Errorf("insert project: %w", err)
		}
		for _, item := range project.Items {
			if err := q.InsertProjectItem(ctx, itemParams(item)); err != nil {
				return fmt.Errorf("insert project item: %w", err)
			}
		}
		return nil
	})
}

// FindByID loads a project and its items. found is false when no row matches.
func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, bool, error) {
	q := db.New(r.db.DB())
	row, err := q.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query project: %w", err)
	}

	rows, err := q.ListProjectItems(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("query project items: %w", err)
	}

	project := rowToProject(row)
	for _, ir := range rows {
		project.Items = append(project.Items, rowToItem(ir))
	}
	return project, true, nil
}

// List returns projects newest first with their items attached.
func (r *ProjectRepository) List(ctx context.Context, includeArchived bool) ([]*models.Project, error) {
	q := db.New(r.db.DB())
	rows, err := q.ListProjects(ctx, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	itemRows, err := q.ListItemsOfListedProjects(ctx, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("query project items: %w", err)
	}
	byProject := make(map[uuid.UUID][]*models.Item, len(rows))
	for _, ir := range itemRows {
		byProject[ir.ProjectID] = append(byProject[ir.ProjectID], rowToItem(ir))
	}

	projects := make([]*models.Project, len(rows))
	for i, row := range rows {
		p := rowToProject(row)
		p.Items = byProject[p.ID]
		projects[i] = p
	}
	return projects, nil
}

// Update persists the project's own fields; last write wins.
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) (bool, error) {
	q := db.New(r.db.DB())
	n, err := q.UpdateProject(ctx, db.UpdateProjectParams{
		ID:          project.ID,
		Name:        project.Name,
		Client:      project.Client,
		DiscountPct: project.DiscountPct,
		TaxPct:      project.TaxPct,
		Notes:       project.Notes,
		IsArchived:  project.IsArchived,
	})
	if err != nil {
		return false, fmt.Errorf("update project: %w", err)
	}
	return n > 0, nil
}

// Delete removes a project; its items go with it via ON DELETE CASCADE.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	q := db.New(r.db.DB())
	n, err := q.DeleteProject(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return n > 0, nil
}

// AppendItem inserts the item at the end of its project's item list. The
// project row is locked so concurrent appends get distinct positions.
// Returns ErrProjectNotFound when the project does not exist.
func (r *ProjectRepository) AppendItem(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if _, err := q.LockProject(ctx, item.ProjectID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return projectdomain.ErrProjectNotFound
			}
			return fmt.Errorf("lock project: %w", err)
		}
		if err := q.InsertProjectItem(ctx, itemParams(item)); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
				return projectdomain.ErrProjectNotFound
			}
			return fmt.Errorf("insert project item: %w", err)
		}
		return nil
	})
}

// RemoveItem deletes an item scoped to its project.
func (r *ProjectRepository) RemoveItem(ctx context.Context, projectID, itemID uuid.UUID) (bool, error) {
	q := db.New(r.db.DB())
	n, err := q.DeleteProjectItem(ctx, db.DeleteProjectItemParams{
		ID:        itemID,
		ProjectID: projectID,
	})
	if err != nil {
		return false, fmt.Errorf("delete project item: %w", err)
	}
	return n > 0, nil
}

// UpdateItemQuantity sets an item's quantity and returns the stored item.
func (r *ProjectRepository) UpdateItemQuantity(ctx context.Context, projectID, itemID uuid.UUID, quantity int) (*models.Item, bool, error) {
	q := db.New(r.db.DB())
	row, err := q.UpdateProjectItemQuantity(ctx, db.UpdateProjectItemQuantityParams{
		ID:        itemID,
		ProjectID: projectID,
		Quantity:  int32(quantity),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("update item quantity: %w", err)
	}
	return rowToItem(row), true, nil
}

func itemParams(item *models.Item) db.InsertProjectItemParams {
	return db.InsertProjectItemParams{
		ID:        item.ID,
		ProjectID: item.ProjectID,
		Name:      item.Name,
		ItemType:  item.ItemType,
		UnitPrice: item.UnitPrice,
		UnitCost:  item.UnitCost,
		Quantity:  int32(item.Quantity),
	}
}

// rowToProject maps a db.Project to a domain models.Project without items.
func rowToProject(row db.Project) *models.Project {
	return &models.Project{
		ID:          row.ID,
		Name:        row.Name,
		Client:      row.Client,
		DiscountPct: row.DiscountPct,
		TaxPct:      row.TaxPct,
		Notes:       row.Notes,
		IsArchived:  row.IsArchived,
		CreatedAt:   row.CreatedAt,
	}
}

// rowToItem maps a db.ProjectItem to a domain models.Item.
func rowToItem(row db.ProjectItem) *models.Item {
	return &models.Item{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		Name:      row.Name,
		ItemType:  row.ItemType,
		UnitPrice: row.UnitPrice,
		UnitCost:  row.UnitCost,
		Quantity:  int(row.Quantity),
	}
}

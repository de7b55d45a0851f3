package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/deloculator/pkg/logger"
	"github.com/ghuser/deloculator/services/project/application/export"
	projectdomain "github.com/ghuser/deloculator/services/project/domain"
	"github.com/ghuser/deloculator/services/project/domain/models"
	"github.com/ghuser/deloculator/services/project/infrastructure/persistence/memory"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newService() (*ProjectService, *memory.ProjectRepository) {
	repo := memory.NewProjectRepository()
	return NewProjectService(repo, logger.Discard()), repo
}

func createProject(t *testing.T, svc *ProjectService) uuid.UUID {
	t.Helper()
	q, err := svc.Create(context.Background(), CreateProjectInput{
		Name:        "Kitchen",
		Client:      "ACME",
		DiscountPct: d("15"),
		TaxPct:      d("10"),
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return q.Project.ID
}

func TestProjectService_Create(t *testing.T) {
	svc, _ := newService()

	q, err := svc.Create(context.Background(), CreateProjectInput{Name: "Kitchen", DiscountPct: d("0"), TaxPct: d("0")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.Summary.Revenue.IsZero() || len(q.Project.Items) != 0 {
		t.Fatalf("new project must be empty: %+v", q.Summary)
	}

	_, err = svc.Create(context.Background(), CreateProjectInput{Name: "Kitchen", DiscountPct: d("120")})
	if !errors.Is(err, projectdomain.ErrInvalidProject) {
		t.Fatalf("expected ErrInvalidProject, got %v", err)
	}
}

func TestProjectService_ItemsAndSummary(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	id := createProject(t, svc)

	for _, in := range []AddItemInput{
		{Name: "Chair", UnitPrice: d("250.00"), UnitCost: d("120.00"), Quantity: 3},
		{Name: "Table", UnitPrice: d("180.50"), UnitCost: d("85.25"), Quantity: 2},
		{Name: "Shelf", UnitPrice: d("99.99"), UnitCost: d("45.00"), Quantity: 5},
	} {
		if _, err := svc.AddItem(ctx, id, in); err != nil {
			t.Fatalf("add item: %v", err)
		}
	}

	q, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !q.Summary.Revenue.Equal(d("1232.37675")) {
		t.Fatalf("revenue: got %s", q.Summary.Revenue)
	}
	if q.Project.Items[0].Name != "Chair" || q.Project.Items[2].Name != "Shelf" {
		t.Fatal("items must keep insertion order")
	}
}

func TestProjectService_AddItem_Errors(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	id := createProject(t, svc)

	_, err := svc.AddItem(ctx, uuid.New(), AddItemInput{Name: "Chair", Quantity: 1})
	if !errors.Is(err, projectdomain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}

	_, err = svc.AddItem(ctx, id, AddItemInput{Name: "Chair", Quantity: 0})
	if !errors.Is(err, projectdomain.ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
}

func TestProjectService_UpdateItemQuantity(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	id := createProject(t, svc)
	item, err := svc.AddItem(ctx, id, AddItemInput{Name: "Chair", UnitPrice: d("10"), UnitCost: d("4"), Quantity: 1})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	got, err := svc.UpdateItemQuantity(ctx, id, item.ID, 4)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if got.Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", got.Quantity)
	}

	if _, err := svc.UpdateItemQuantity(ctx, id, item.ID, 0); !errors.Is(err, projectdomain.ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
	if _, err := svc.UpdateItemQuantity(ctx, id, item.ID, models.MaxQuantity+1); !errors.Is(err, projectdomain.ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem above MaxQuantity, got %v", err)
	}
	if _, err := svc.UpdateItemQuantity(ctx, uuid.New(), item.ID, 2); !errors.Is(err, projectdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound for foreign project, got %v", err)
	}
}

func TestProjectService_RemoveItem(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	id := createProject(t, svc)
	item, _ := svc.AddItem(ctx, id, AddItemInput{Name: "Chair", UnitPrice: d("10"), UnitCost: d("4"), Quantity: 1})

	if err := svc.RemoveItem(ctx, id, item.ID); err != nil {
		t.Fatalf("remove item: %v", err)
	}
	if err := svc.RemoveItem(ctx, id, item.ID); !errors.Is(err, projectdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound on second remove, got %v", err)
	}
}

func TestProjectService_Update(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	id := createProject(t, svc)

	discount := d("100")
	q, err := svc.Update(ctx, id, models.ProjectPatch{DiscountPct: &discount})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if q.Project.Name != "Kitchen" || !q.Project.TaxPct.Equal(d("10")) {
		t.Fatalf("unpatched fields changed: %+v", q.Project)
	}

	bad := d("-1")
	if _, err := svc.Update(ctx, id, models.ProjectPatch{TaxPct: &bad}); !errors.Is(err, projectdomain.ErrInvalidProject) {
		t.Fatalf("expected ErrInvalidProject, got %v", err)
	}
	stored, _ := svc.Get(ctx, id)
	if !stored.Project.TaxPct.Equal(d("10")) {
		t.Fatal("rejected patch must not be persisted")
	}

	if _, err := svc.Update(ctx, uuid.New(), models.ProjectPatch{DiscountPct: &discount}); !errors.Is(err, projectdomain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_ListHidesArchived(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	createProject(t, svc)
	archivedID := createProject(t, svc)
	archived := true
	if _, err := svc.Update(ctx, archivedID, models.ProjectPatch{IsArchived: &archived}); err != nil {
		t.Fatalf("archive: %v", err)
	}

	active, err := svc.List(ctx, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active project, got %d", len(active))
	}

	all, _ := svc.List(ctx, true)
	if len(all) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(all))
	}
}

func TestProjectService_Delete(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	id := createProject(t, svc)

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, id); !errors.Is(err, projectdomain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, id); !errors.Is(err, projectdomain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound on second delete, got %v", err)
	}
}

func TestProjectService_Export(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	id := createProject(t, svc)

	doc, err := svc.Export(ctx, id, export.FormatText)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if doc.ContentType != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", doc.ContentType)
	}

	if _, err := svc.Export(ctx, uuid.New(), export.FormatText); !errors.Is(err, projectdomain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

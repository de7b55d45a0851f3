package xlsx

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ghuser/deloculator/pkg/logger"
	catalogdomain "github.com/ghuser/deloculator/services/catalog/domain"
)

const sheet = "Справочник Изделий"

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	for i, r := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &r); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestFetchProducts(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"#", "", "Name", "Type"},
		{"1", "", "Model X", "Chair", "100", "20", "", "", "", "", "", "", "", "", "", "", "120", "250"},
		{"2", "", "Table A", "Table", "", "", "", "", "", "", "", "", "", "", "", "", "200", "400"},
	})

	entries, err := New(path, sheet, logger.Discard()).FetchProducts(context.Background())
	if err != nil {
		t.Fatalf("FetchProducts: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries (header skipped), got %d", len(entries))
	}
	if entries[0].Name != "Model X Chair" || entries[0].CostBreakdown.Metal.String() != "20" {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}
	if entries[1].Key().Name != "Table A Table" || entries[1].SalePrice.String() != "400" {
		t.Fatalf("unexpected second entry %+v", entries[1])
	}
}

func TestFetchProducts_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.xlsx"), sheet, logger.Discard()).FetchProducts(context.Background())
	if !errors.Is(err, catalogdomain.ErrCatalogSourceUnavailable) {
		t.Fatalf("expected ErrCatalogSourceUnavailable, got %v", err)
	}
}

func TestFetchProducts_MissingSheet(t *testing.T) {
	path := writeWorkbook(t, [][]any{{"#"}})
	_, err := New(path, "Other", logger.Discard()).FetchProducts(context.Background())
	if !errors.Is(err, catalogdomain.ErrCatalogSourceUnavailable) {
		t.Fatalf("expected ErrCatalogSourceUnavailable, got %v", err)
	}
}

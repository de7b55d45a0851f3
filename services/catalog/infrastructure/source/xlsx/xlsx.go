// Package xlsx reads the product catalog from a local Excel workbook laid out
// like the catalog spreadsheet.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ghuser/deloculator/pkg/logger"
	catalogdomain "github.com/ghuser/deloculator/services/catalog/domain"
	"github.com/ghuser/deloculator/services/catalog/domain/models"
	"github.com/ghuser/deloculator/services/catalog/infrastructure/source"
)

// Source implements repositories.CatalogSource over an .xlsx file.
type Source struct {
	path      string
	sheetName string
	log       logger.Logger
}

// New returns a Source reading sheetName from the workbook at path.
func New(path, sheetName string, log logger.Logger) *Source {
	return &Source{path: path, sheetName: sheetName, log: log}
}

// FetchProducts reads every row below the header. A missing workbook or sheet
// is reported as ErrCatalogSourceUnavailable.
func (s *Source) FetchProducts(ctx context.Context) ([]*models.CatalogEntry, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", catalogdomain.ErrCatalogSourceUnavailable, s.path, err)
	}
	defer f.Close() //nolint:errcheck

	rows, err := f.GetRows(s.sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", catalogdomain.ErrCatalogSourceUnavailable, s.sheetName, err)
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}

	entries, rejected := source.ParseRows(rows)
	for _, err := range rejected {
		s.log.WarnContext(ctx, "skipping catalog row", "file", s.path, "error", err)
	}
	s.log.InfoContext(ctx, "fetched catalog from workbook", "file", s.path, "products", len(entries))
	return entries, nil
}

// Package source holds the row layout shared by every catalog source: the
// "Справочник Изделий" sheet, read from column A of row 2 onwards.
package source

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ghuser/deloculator/services/catalog/domain/models"
)

// Column indexes, zero-based from column A.
const (
	colName          = 2  // C
	colType          = 3  // D
	colFirstCostPart = 4  // E..P, in models.CostComponentNames order
	colCost          = 16 // Q
	colSalePrice     = 17 // R
)

// Columns is the A1 column span read from the sheet.
const Columns = "A2:R"

// ParseRows converts sheet rows into catalog entries. Rows without a name are
// skipped silently; rows that fail validation are skipped and reported in
// rejected. The stored name is "<name> <type>" so that the same model in two
// product types stays distinct.
func ParseRows(rows [][]string) (entries []*models.CatalogEntry, rejected []error) {
	for i, row := range rows {
		name := strings.TrimSpace(cell(row, colName))
		if name == "" {
			continue
		}
		productType := strings.TrimSpace(cell(row, colType))
		if productType != "" {
			name = strings.TrimSpace(name + " " + productType)
		}

		var breakdown models.CostBreakdown
		for j, c := range breakdown.Parts() {
			*c = ParsePrice(cell(row, colFirstCostPart+j))
		}

		entry, err := models.NewCatalogEntry(
			name,
			productType,
			ParsePrice(cell(row, colSalePrice)),
			ParsePrice(cell(row, colCost)),
			breakdown,
		)
		if err != nil {
			rejected = append(rejected, fmt.Errorf("row %d: %w", i+2, err))
			continue
		}
		entries = append(entries, entry)
	}
	return entries, rejected
}

// ParsePrice reads a spreadsheet money cell such as "1 234,50 ₽". Blank or
// unreadable cells count as zero.
func ParsePrice(v string) decimal.Decimal {
	cleaned := strings.NewReplacer(" ", "", " ", "", ",", ".", "₽", "").Replace(v)
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

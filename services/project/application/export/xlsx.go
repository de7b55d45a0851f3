package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ghuser/deloculator/services/project/domain/services"
)

const quoteSheet = "Quote"

// XLSX renders q as a single-sheet workbook. Money cells hold exact decimal
// strings with two fractional digits.
func XLSX(q services.Quote) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName("Sheet1", quoteSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	p := q.Project
	rows := [][]any{
		{"Project", p.Name},
		{"Client", p.Client},
		{"Date", p.CreatedAt.Format("2006-01-02")},
		{},
		{"#", "Item", "Type", "Quantity", "Unit price", "Unit cost", "Subtotal", "Cost"},
	}
	headerRow := len(rows)
	for i, item := range p.Items {
		line := q.Lines[i]
		rows = append(rows, []any{
			i + 1, item.Name, item.ItemType, item.Quantity,
			money(item.UnitPrice), money(item.UnitCost),
			money(line.Subtotal), money(line.Cost),
		})
	}

	s := q.Summary
	rows = append(rows,
		[]any{},
		[]any{"Subtotal", money(s.Subtotal)},
		[]any{"Discount, %", p.DiscountPct.String()},
		[]any{"Tax, %", p.TaxPct.String()},
		[]any{"Revenue", money(s.Revenue)},
		[]any{"Total cost", money(s.TotalCost)},
		[]any{"Profit", money(s.Profit)},
		[]any{"Margin, %", s.Margin.StringFixed(2)},
	)
	if p.Notes != "" {
		rows = append(rows, []any{"Notes", p.Notes})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(quoteSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	if err := f.SetRowStyle(quoteSheet, headerRow, headerRow, bold); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}
	if err := f.SetColWidth(quoteSheet, "B", "B", 40); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

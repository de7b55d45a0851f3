// Package services contains stateless domain services for the project bounded context.
// Pricing is pure: it reads a Project snapshot and never mutates it, so it is
// safe to call concurrently and any number of times.
package services

import (
	"github.com/shopspring/decimal"

	"github.com/ghuser/deloculator/services/project/domain/models"
)

var hundred = decimal.NewFromInt(100)

// Summary holds the derived money values of a project.
type Summary struct {
	Subtotal  decimal.Decimal
	Revenue   decimal.Decimal
	TotalCost decimal.Decimal
	Profit    decimal.Decimal
	Margin    decimal.Decimal // percent of revenue; 0 when revenue is 0
}

// LineTotals holds the derived money values of one item.
type LineTotals struct {
	Subtotal decimal.Decimal
	Cost     decimal.Decimal
	Profit   decimal.Decimal
}

// LineSummary returns the per-item totals. A loss-leader item yields a
// negative Profit.
func LineSummary(item *models.Item) LineTotals {
	subtotal := item.LineSubtotal()
	cost := item.LineCost()
	return LineTotals{
		Subtotal: subtotal,
		Cost:     cost,
		Profit:   subtotal.Sub(cost),
	}
}

// Summarize computes the project totals:
//
//	subtotal   = Σ unit_price × quantity
//	revenue    = subtotal × (1 − discount/100) × (1 − tax/100)
//	total_cost = Σ unit_cost × quantity
//	profit     = revenue − total_cost
//	margin     = profit / revenue × 100, or 0 when revenue is 0
//
// Tax is a deduction from revenue, applied after the discount.
// Inputs are assumed valid; see models.NewProject and models.NewItem.
func Summarize(p *models.Project) Summary {
	subtotal := decimal.Zero
	totalCost := decimal.Zero
	for _, item := range p.Items {
		subtotal = subtotal.Add(item.LineSubtotal())
		totalCost = totalCost.Add(item.LineCost())
	}

	revenue := subtotal.
		Mul(decimal.NewFromInt(1).Sub(p.DiscountPct.Shift(-2))).
		Mul(decimal.NewFromInt(1).Sub(p.TaxPct.Shift(-2)))
	profit := revenue.Sub(totalCost)

	margin := decimal.Zero
	if !revenue.IsZero() {
		margin = profit.Div(revenue).Mul(hundred)
	}

	return Summary{
		Subtotal:  subtotal,
		Revenue:   revenue,
		TotalCost: totalCost,
		Profit:    profit,
		Margin:    margin,
	}
}

// Quote is a project snapshot paired with its derived values, ready for
// presentation. Lines is parallel to Project.Items.
type Quote struct {
	Project *models.Project
	Summary Summary
	Lines   []LineTotals
}

// NewQuote prices p once so that presenters never compute money themselves.
func NewQuote(p *models.Project) Quote {
	lines := make([]LineTotals, len(p.Items))
	for i, item := range p.Items {
		lines[i] = LineSummary(item)
	}
	return Quote{
		Project: p,
		Summary: Summarize(p),
		Lines:   lines,
	}
}

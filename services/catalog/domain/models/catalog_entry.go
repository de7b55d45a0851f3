package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogdomain "github.com/ghuser/deloculator/services/catalog/domain"
)

// CostBreakdown splits a product's cost price into its production components.
// Every component defaults to zero.
type CostBreakdown struct {
	Materials  decimal.Decimal `json:"materials"`
	Metal      decimal.Decimal `json:"metal"`
	Powder     decimal.Decimal `json:"powder"`
	CNC        decimal.Decimal `json:"cnc"`
	Carpentry  decimal.Decimal `json:"carpentry"`
	Painting   decimal.Decimal `json:"painting"`
	Upholstery decimal.Decimal `json:"upholstery"`
	Components decimal.Decimal `json:"components"`
	Box        decimal.Decimal `json:"box"`
	Logistics  decimal.Decimal `json:"logistics"`
	Assembly   decimal.Decimal `json:"assembly"`
	Other      decimal.Decimal `json:"other"`
}

// CostComponentNames lists the breakdown components in sheet column order.
var CostComponentNames = [12]string{
	"materials", "metal", "powder", "cnc", "carpentry", "painting",
	"upholstery", "components", "box", "logistics", "assembly", "other",
}

// Parts returns pointers to the breakdown fields in CostComponentNames order.
func (b *CostBreakdown) Parts() [12]*decimal.Decimal {
	return [12]*decimal.Decimal{
		&b.Materials, &b.Metal, &b.Powder, &b.CNC, &b.Carpentry, &b.Painting,
		&b.Upholstery, &b.Components, &b.Box, &b.Logistics, &b.Assembly, &b.Other,
	}
}

// Total sums all components.
func (b CostBreakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.Parts() {
		total = total.Add(*c)
	}
	return total
}

// Validate rejects negative components.
func (b CostBreakdown) Validate() error {
	for i, c := range b.Parts() {
		if c.IsNegative() {
			return fmt.Errorf("%w: %s cost must be non-negative", catalogdomain.ErrInvalidCatalogEntry, CostComponentNames[i])
		}
	}
	return nil
}

// Key identifies a catalog entry. It is unique across the catalog.
type Key struct {
	Name        string
	ProductType string
}

// CatalogEntry is one product of the reference catalog.
type CatalogEntry struct {
	ID            uuid.UUID
	Name          string
	ProductType   string
	SalePrice     decimal.Decimal
	CostPrice     decimal.Decimal
	CostBreakdown CostBreakdown
	UpdatedAt     time.Time
}

// NewCatalogEntry builds an unsaved entry. The ID is assigned when the entry is
// first inserted, never before.
func NewCatalogEntry(name, productType string, salePrice, costPrice decimal.Decimal, breakdown CostBreakdown) (*CatalogEntry, error) {
	e := &CatalogEntry{
		Name:          strings.TrimSpace(name),
		ProductType:   strings.TrimSpace(productType),
		SalePrice:     salePrice,
		CostPrice:     costPrice,
		CostBreakdown: breakdown,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the entry invariants.
func (e *CatalogEntry) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: name is required", catalogdomain.ErrInvalidCatalogEntry)
	}
	if e.SalePrice.IsNegative() || e.CostPrice.IsNegative() {
		return fmt.Errorf("%w: prices must be non-negative", catalogdomain.ErrInvalidCatalogEntry)
	}
	return e.CostBreakdown.Validate()
}

// Key returns the entry's natural key.
func (e *CatalogEntry) Key() Key {
	return Key{Name: e.Name, ProductType: e.ProductType}
}

// Overwrite copies every mutable field from src. Identity and key are kept.
func (e *CatalogEntry) Overwrite(src *CatalogEntry) {
	e.SalePrice = src.SalePrice
	e.CostPrice = src.CostPrice
	e.CostBreakdown = src.CostBreakdown
}

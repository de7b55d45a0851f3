package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/deloculator/services/catalog/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"catalog entry not found"`
} // @name CatalogErrorResponse

// CatalogEntryResponse is one catalog product.
type CatalogEntryResponse struct {
	ID            uuid.UUID            `json:"id"             example:"123e4567-e89b-12d3-a456-426614174000"`
	Name          string               `json:"name"           example:"Chair Model X Chair"`
	ProductType   string               `json:"product_type"   example:"Chair"`
	SalePrice     decimal.Decimal      `json:"sale_price"     swaggertype:"string" example:"250.00"`
	CostPrice     decimal.Decimal      `json:"cost_price"     swaggertype:"string" example:"120.00"`
	CostBreakdown models.CostBreakdown `json:"cost_breakdown"`
	UpdatedAt     time.Time            `json:"updated_at"     example:"2026-01-28T10:30:00Z"`
} // @name CatalogEntryResponse

// GroupedEntryResponse is a catalog product with its display base name.
type GroupedEntryResponse struct {
	ID          uuid.UUID       `json:"id"           example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string          `json:"name"         example:"Chair Model X Chair"`
	BaseName    string          `json:"base_name"    example:"Chair Model X"`
	ProductType string          `json:"product_type" example:"Chair"`
	SalePrice   decimal.Decimal `json:"sale_price"   swaggertype:"string" example:"250.00"`
	CostPrice   decimal.Decimal `json:"cost_price"   swaggertype:"string" example:"120.00"`
} // @name GroupedEntryResponse

// SyncResponse reports the outcome of a catalog sync.
type SyncResponse struct {
	Status   string `json:"status"   example:"success"`
	Mode     string `json:"mode"     example:"upsert"`
	Inserted int    `json:"inserted" example:"3"`
	Updated  int    `json:"updated"  example:"120"`
	Count    int    `json:"count"    example:"123"`
} // @name SyncResponse

func toEntryResponse(e *models.CatalogEntry) CatalogEntryResponse {
	return CatalogEntryResponse{
		ID:            e.ID,
		Name:          e.Name,
		ProductType:   e.ProductType,
		SalePrice:     e.SalePrice,
		CostPrice:     e.CostPrice,
		CostBreakdown: e.CostBreakdown,
		UpdatedAt:     e.UpdatedAt,
	}
}

package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/deloculator/pkg/httpx"
	"github.com/ghuser/deloculator/services/project/domain/models"
	domainsvcs "github.com/ghuser/deloculator/services/project/domain/services"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"project not found"`
} // @name ErrorResponse

// ItemResponse is one project line with its derived totals.
type ItemResponse struct {
	ID        uuid.UUID       `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string          `json:"name"       example:"Chair Model X Chair"`
	ItemType  string          `json:"item_type"  example:"Chair"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"250.00"`
	UnitCost  decimal.Decimal `json:"unit_cost"  swaggertype:"string" example:"120.00"`
	Quantity  int             `json:"quantity"   example:"3"`
	Subtotal  decimal.Decimal `json:"subtotal"   swaggertype:"string" example:"750.00"`
	TotalCost decimal.Decimal `json:"total_cost" swaggertype:"string" example:"360.00"`
} // @name ItemResponse

// SummaryResponse carries the derived money values of a project.
type SummaryResponse struct {
	Subtotal  decimal.Decimal `json:"subtotal"   swaggertype:"string" example:"1610.95"`
	Revenue   decimal.Decimal `json:"revenue"    swaggertype:"string" example:"1232.37675"`
	TotalCost decimal.Decimal `json:"total_cost" swaggertype:"string" example:"755.50"`
	Profit    decimal.Decimal `json:"profit"     swaggertype:"string" example:"476.87675"`
	Margin    decimal.Decimal `json:"margin"     swaggertype:"string" example:"38.70"`
} // @name SummaryResponse

// ProjectResponse is a project with its items and summary.
type ProjectResponse struct {
	ID          uuid.UUID       `json:"id"           example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string          `json:"name"         example:"Kitchen for ACME"`
	Client      string          `json:"client"       example:"ACME"`
	DiscountPct decimal.Decimal `json:"discount_pct" swaggertype:"string" example:"15"`
	TaxPct      decimal.Decimal `json:"tax_pct"      swaggertype:"string" example:"10"`
	Notes       string          `json:"notes"        example:"Delivery in May"`
	IsArchived  bool            `json:"is_archived"  example:"false"`
	CreatedAt   time.Time       `json:"created_at"   example:"2026-01-28T10:30:00Z"`
	Items       []ItemResponse  `json:"items"`
	Summary     SummaryResponse `json:"summary"`
} // @name ProjectResponse

func toProjectResponse(q *domainsvcs.Quote) ProjectResponse {
	p := q.Project
	items := make([]ItemResponse, len(p.Items))
	for i, item := range p.Items {
		items[i] = toItemResponse(item, q.Lines[i])
	}
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Client:      p.Client,
		DiscountPct: p.DiscountPct,
		TaxPct:      p.TaxPct,
		Notes:       p.Notes,
		IsArchived:  p.IsArchived,
		CreatedAt:   p.CreatedAt,
		Items:       items,
		Summary: SummaryResponse{
			Subtotal:  q.Summary.Subtotal,
			Revenue:   q.Summary.Revenue,
			TotalCost: q.Summary.TotalCost,
			Profit:    q.Summary.Profit,
			Margin:    q.Summary.Margin.Round(2),
		},
	}
}

func toItemResponse(item *models.Item, line domainsvcs.LineTotals) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		ItemType:  item.ItemType,
		UnitPrice: item.UnitPrice,
		UnitCost:  item.UnitCost,
		Quantity:  item.Quantity,
		Subtotal:  line.Subtotal,
		TotalCost: line.Cost,
	}
}

// pathUUID parses a UUID URL parameter, writing 400 when it is malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

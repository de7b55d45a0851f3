package handlers

import (
	"net/http"

	"github.com/ghuser/deloculator/pkg/errhttp"
	"github.com/ghuser/deloculator/pkg/httpx"
	appsvcs "github.com/ghuser/deloculator/services/catalog/application/services"
)

// GetGroupedHandler handles GET /catalog/grouped requests.
type GetGroupedHandler struct {
	svc *appsvcs.Services
}

// NewGetGroupedHandler returns a GetGroupedHandler backed by the given services.
func NewGetGroupedHandler(svc *appsvcs.Services) *GetGroupedHandler {
	return &GetGroupedHandler{svc: svc}
}

// Execute returns the whole catalog with base names for product pickers.
//
//	@Summary	Grouped catalog
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}		GroupedEntryResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/catalog/grouped [get]
func (h *GetGroupedHandler) Execute(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.svc.Catalog.Grouped(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]GroupedEntryResponse, len(grouped))
	for i, g := range grouped {
		resp[i] = GroupedEntryResponse{
			ID:          g.ID,
			Name:        g.Name,
			BaseName:    g.BaseName,
			ProductType: g.ProductType,
			SalePrice:   g.SalePrice,
			CostPrice:   g.CostPrice,
		}
	}
	httpx.JSON(w, http.StatusOK, resp)
}

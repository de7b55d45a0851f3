package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/deloculator/pkg/errhttp"
	"github.com/ghuser/deloculator/pkg/httpx"
	appsvcs "github.com/ghuser/deloculator/services/catalog/application/services"
)

// GetEntryHandler handles GET /catalog/{id} requests.
type GetEntryHandler struct {
	svc *appsvcs.Services
}

// NewGetEntryHandler returns a GetEntryHandler backed by the given services.
func NewGetEntryHandler(svc *appsvcs.Services) *GetEntryHandler {
	return &GetEntryHandler{svc: svc}
}

// Execute returns one catalog entry with its cost breakdown.
//
//	@Summary	Get catalog entry
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		string	true	"Catalog entry ID"
//	@Success	200	{object}	CatalogEntryResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/catalog/{id} [get]
func (h *GetEntryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id")
		return
	}

	entry, err := h.svc.Catalog.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toEntryResponse(entry))
}

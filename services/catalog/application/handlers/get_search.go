package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/deloculator/pkg/errhttp"
	"github.com/ghuser/deloculator/pkg/httpx"
	appsvcs "github.com/ghuser/deloculator/services/catalog/application/services"
	"github.com/ghuser/deloculator/services/catalog/domain/repositories"
)

// GetSearchHandler handles GET /catalog/search requests.
type GetSearchHandler struct {
	svc *appsvcs.Services
}

// NewGetSearchHandler returns a GetSearchHandler backed by the given services.
func NewGetSearchHandler(svc *appsvcs.Services) *GetSearchHandler {
	return &GetSearchHandler{svc: svc}
}

// Execute searches catalog names case-insensitively.
//
//	@Summary	Search catalog
//	@Tags		catalog
//	@Produce	json
//	@Param		q		query		string	false	"Substring of the product name"
//	@Param		limit	query		int		false	"Maximum results (1-100)"	default(20)
//	@Success	200		{array}		CatalogEntryResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/catalog/search [get]
func (h *GetSearchHandler) Execute(w http.ResponseWriter, r *http.Request) {
	limit := appsvcs.DefaultSearchLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > repositories.MaxSearchLimit {
			httpx.JSONError(w, http.StatusBadRequest, "limit must be an integer between 1 and 100")
			return
		}
		limit = n
	}

	entries, err := h.svc.Catalog.Search(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]CatalogEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toEntryResponse(e)
	}
	httpx.JSON(w, http.StatusOK, resp)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/ghuser/deloculator/pkg/errhttp"
	"github.com/ghuser/deloculator/pkg/httpx"
	"github.com/ghuser/deloculator/pkg/telemetry"
	appsvcs "github.com/ghuser/deloculator/services/catalog/application/services"
	catalogdomain "github.com/ghuser/deloculator/services/catalog/domain"
	"github.com/ghuser/deloculator/services/catalog/domain/models"
)

// PostSyncHandler handles POST /catalog/sync requests.
type PostSyncHandler struct {
	svc *appsvcs.Services
}

// NewPostSyncHandler returns a PostSyncHandler backed by the given services.
func NewPostSyncHandler(svc *appsvcs.Services) *PostSyncHandler {
	return &PostSyncHandler{svc: svc}
}

// Execute fetches the product list from the catalog source and merges it.
//
//	@Summary		Sync catalog
//	@Description	upsert keeps identities and leaves missing products alone; replace_all rebuilds the catalog
//	@Tags			catalog
//	@Produce		json
//	@Param			mode	query		string	false	"upsert (default) or replace_all"
//	@Success		200		{object}	SyncResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/catalog/sync [post]
func (h *PostSyncHandler) Execute(w http.ResponseWriter, r *http.Request) {
	mode, err := models.ParseSyncMode(r.URL.Query().Get("mode"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	res, err := h.svc.Catalog.Sync(r.Context(), mode)
	if err != nil {
		if !errors.Is(err, catalogdomain.ErrSyncInProgress) {
			telemetry.CaptureSyncFailure(r.Context(), err, string(mode))
		}
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, SyncResponse{
		Status:   "success",
		Mode:     string(res.Mode),
		Inserted: res.Inserted,
		Updated:  res.Updated,
		Count:    res.Inserted + res.Updated,
	})
}

package handlers

import (
	"net/http"

	"github.com/ghuser/deloculator/pkg/errhttp"
	"github.com/ghuser/deloculator/pkg/httpx"
	appsvcs "github.com/ghuser/deloculator/services/project/application/services"
)

// DeleteItemHandler handles DELETE /projects/{id}/items/{itemID} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute removes one item from a project.
//
//	@Summary	Remove item
//	@Tags		items
//	@Param		id		path	string	true	"Project ID"
//	@Param		itemID	path	string	true	"Item ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/projects/{id}/items/{itemID} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}
	if err := h.svc.Project.RemoveItem(r.Context(), projectID, itemID); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}

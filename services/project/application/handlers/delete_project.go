package handlers

import (
	"net/http"

	"github.com/ghuser/deloculator/pkg/errhttp"
	"github.com/ghuser/deloculator/pkg/httpx"
	appsvcs "github.com/ghuser/deloculator/services/project/application/services"
)

// DeleteProjectHandler handles DELETE /projects/{id} requests.
type DeleteProjectHandler struct {
	svc *appsvcs.Services
}

// NewDeleteProjectHandler returns a DeleteProjectHandler backed by the given services.
func NewDeleteProjectHandler(svc *appsvcs.Services) *DeleteProjectHandler {
	return &DeleteProjectHandler{svc: svc}
}

// Execute deletes a project and its items.
//
//	@Summary	Delete project
//	@Tags		projects
//	@Param		id	path	string	true	"Project ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/projects/{id} [delete]
func (h *DeleteProjectHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Project.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}

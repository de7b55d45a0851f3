package handlers

import (
	"net/http"

	"github.com/ghuser/deloculator/pkg/errhttp"
	"github.com/ghuser/deloculator/pkg/httpx"
	appsvcs "github.com/ghuser/deloculator/services/project/application/services"
)

// GetProjectHandler handles GET /projects/{id} requests.
type GetProjectHandler struct {
	svc *appsvcs.Services
}

// NewGetProjectHandler returns a GetProjectHandler backed by the given services.
func NewGetProjectHandler(svc *appsvcs.Services) *GetProjectHandler {
	return &GetProjectHandler{svc: svc}
}

// Execute returns one project with items and summary.
//
//	@Summary	Get project
//	@Tags		projects
//	@Produce	json
//	@Param		id	path		string	true	"Project ID"
//	@Success	200	{object}	ProjectResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/projects/{id} [get]
func (h *GetProjectHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	q, err := h.svc.Project.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProjectResponse(q))
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/deloculator/pkg/errhttp"
	"github.com/ghuser/deloculator/pkg/httpx"
	appsvcs "github.com/ghuser/deloculator/services/project/application/services"
)

// ListProjectsHandler handles GET /projects requests.
type ListProjectsHandler struct {
	svc *appsvcs.Services
}

// NewListProjectsHandler returns a ListProjectsHandler backed by the given services.
func NewListProjectsHandler(svc *appsvcs.Services) *ListProjectsHandler {
	return &ListProjectsHandler{svc: svc}
}

// Execute lists projects newest first.
//
//	@Summary		List projects
//	@Description	Lists projects with items and summaries, newest first
//	@Tags			projects
//	@Produce		json
//	@Param			include_archived	query		bool	false	"Include archived projects"
//	@Success		200					{array}		ProjectResponse
//	@Failure		400					{object}	ErrorResponse
//	@Failure		401					{object}	ErrorResponse
//	@Router			/projects [get]
func (h *ListProjectsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	includeArchived := false
	if v := r.URL.Query().Get("include_archived"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "include_archived must be a boolean")
			return
		}
		includeArchived = b
	}

	quotes, err := h.svc.Project.List(r.Context(), includeArchived)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]ProjectResponse, len(quotes))
	for i, q := range quotes {
		resp[i] = toProjectResponse(q)
	}
	httpx.JSON(w, http.StatusOK, resp)
}

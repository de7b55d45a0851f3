package handlers

import (
	"net/http"

	"github.com/ghuser/deloculator/pkg/errhttp"
	"github.com/ghuser/deloculator/pkg/httpx"
	"github.com/ghuser/deloculator/services/project/application/export"
	appsvcs "github.com/ghuser/deloculator/services/project/application/services"
)

// GetExportHandler handles GET /projects/{id}/export requests.
type GetExportHandler struct {
	svc *appsvcs.Services
}

// NewGetExportHandler returns a GetExportHandler backed by the given services.
func NewGetExportHandler(svc *appsvcs.Services) *GetExportHandler {
	return &GetExportHandler{svc: svc}
}

// Execute renders a project as a downloadable document.
//
//	@Summary	Export project
//	@Tags		projects
//	@Produce	plain
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param		id		path		string	true	"Project ID"
//	@Param		format	query		string	false	"text (default) or xlsx"
//	@Success	200		{file}		file
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/projects/{id}/export [get]
func (h *GetExportHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	doc, err := h.svc.Project.Export(r.Context(), id, format)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.Attachment(w, doc.ContentType, doc.Filename, doc.Body)
}

package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ghuser/deloculator/pkg/errhttp"
	"github.com/ghuser/deloculator/pkg/httpx"
	pkgvalidator "github.com/ghuser/deloculator/pkg/validator"
	appsvcs "github.com/ghuser/deloculator/services/project/application/services"
	"github.com/ghuser/deloculator/services/project/domain/models"
)

// UpdateProjectRequest is the request body for PUT /projects/{id}.
// Omitted fields keep their current values.
type UpdateProjectRequest struct {
	Name        *string          `json:"name"         validate:"omitempty,min=1,max=255" example:"Kitchen v2"`
	Client      *string          `json:"client"       validate:"omitempty,max=255" example:"ACME"`
	DiscountPct *decimal.Decimal `json:"discount_pct" validate:"omitempty,dgte=0,dlte=100" swaggertype:"string" example:"20"`
	TaxPct      *decimal.Decimal `json:"tax_pct"      validate:"omitempty,dgte=0" swaggertype:"string" example:"10"`
	Notes       *string          `json:"notes"        validate:"omitempty,max=4000"`
	IsArchived  *bool            `json:"is_archived"  example:"true"`
} // @name UpdateProjectRequest

// PutProjectHandler handles PUT /projects/{id} requests.
type PutProjectHandler struct {
	svc *appsvcs.Services
}

// NewPutProjectHandler returns a PutProjectHandler backed by the given services.
func NewPutProjectHandler(svc *appsvcs.Services) *PutProjectHandler {
	return &PutProjectHandler{svc: svc}
}

// Execute applies a partial update to a project.
//
//	@Summary		Update project
//	@Description	Changes only the fields present in the body
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Project ID"
//	@Param			request	body		UpdateProjectRequest	true	"Fields to change"
//	@Success		200		{object}	ProjectResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/projects/{id} [put]
func (h *PutProjectHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateProjectRequest](w, r)
	if !ok {
		return
	}

	q, err := h.svc.Project.Update(r.Context(), id, models.ProjectPatch{
		Name:        req.Name,
		Client:      req.Client,
		DiscountPct: req.DiscountPct,
		TaxPct:      req.TaxPct,
		Notes:       req.Notes,
		IsArchived:  req.IsArchived,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProjectResponse(q))
}

package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ghuser/deloculator/pkg/errhttp"
	"github.com/ghuser/deloculator/pkg/httpx"
	pkgvalidator "github.com/ghuser/deloculator/pkg/validator"
	appsvcs "github.com/ghuser/deloculator/services/project/application/services"
)

// CreateProjectRequest is the request body for POST /projects.
// Percentages accept JSON strings or numbers and are kept as exact decimals.
type CreateProjectRequest struct {
	Name        string          `json:"name"         validate:"required,max=255" example:"Kitchen for ACME"`
	Client      string          `json:"client"       validate:"max=255" example:"ACME"`
	DiscountPct decimal.Decimal `json:"discount_pct" validate:"dgte=0,dlte=100" swaggertype:"string" example:"15"`
	TaxPct      decimal.Decimal `json:"tax_pct"      validate:"dgte=0" swaggertype:"string" example:"10"`
	Notes       string          `json:"notes"        validate:"max=4000" example:"Delivery in May"`
} // @name CreateProjectRequest

// PostProjectHandler handles POST /projects requests.
type PostProjectHandler struct {
	svc *appsvcs.Services
}

// NewPostProjectHandler returns a PostProjectHandler backed by the given services.
func NewPostProjectHandler(svc *appsvcs.Services) *PostProjectHandler {
	return &PostProjectHandler{svc: svc}
}

// Execute creates a new, empty project.
//
//	@Summary		Create project
//	@Description	Creates a project with no items
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProjectRequest	true	"Project creation request"
//	@Success		201		{object}	ProjectResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/projects [post]
func (h *PostProjectHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateProjectRequest](w, r)
	if !ok {
		return
	}

	q, err := h.svc.Project.Create(r.Context(), appsvcs.CreateProjectInput{
		Name:        req.Name,
		Client:      req.Client,
		DiscountPct: req.DiscountPct,
		TaxPct:      req.TaxPct,
		Notes:       req.Notes,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toProjectResponse(q))
}

package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ghuser/deloculator/pkg/errhttp"
	"github.com/ghuser/deloculator/pkg/httpx"
	pkgvalidator "github.com/ghuser/deloculator/pkg/validator"
	appsvcs "github.com/ghuser/deloculator/services/project/application/services"
	domainsvcs "github.com/ghuser/deloculator/services/project/domain/services"
)

// AddItemRequest is the request body for POST /projects/{id}/items.
type AddItemRequest struct {
	Name      string          `json:"name"       validate:"required,max=255" example:"Chair Model X Chair"`
	ItemType  string          `json:"item_type"  validate:"max=100" example:"Chair"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"dgte=0" swaggertype:"string" example:"250.00"`
	UnitCost  decimal.Decimal `json:"unit_cost"  validate:"dgte=0" swaggertype:"string" example:"120.00"`
	// Quantity defaults to 1 when omitted.
	Quantity *int `json:"quantity" validate:"omitempty,gte=1,lte=2147483647" example:"3"`
} // @name AddItemRequest

// PostItemHandler handles POST /projects/{id}/items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute appends an item to a project.
//
//	@Summary		Add item
//	@Description	Appends an item at the end of the project's item list
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Project ID"
//	@Param			request	body		AddItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/projects/{id}/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AddItemRequest](w, r)
	if !ok {
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item, err := h.svc.Project.AddItem(r.Context(), projectID, appsvcs.AddItemInput{
		Name:      req.Name,
		ItemType:  req.ItemType,
		UnitPrice: req.UnitPrice,
		UnitCost:  req.UnitCost,
		Quantity:  quantity,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item, domainsvcs.LineSummary(item)))
}

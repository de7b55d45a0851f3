package handlers

import (
	"net/http"

	"github.com/ghuser/deloculator/pkg/errhttp"
	"github.com/ghuser/deloculator/pkg/httpx"
	pkgvalidator "github.com/ghuser/deloculator/pkg/validator"
	appsvcs "github.com/ghuser/deloculator/services/project/application/services"
	domainsvcs "github.com/ghuser/deloculator/services/project/domain/services"
)

// UpdateItemRequest is the request body for PATCH /projects/{id}/items/{itemID}.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1,lte=2147483647" example:"5"`
} // @name UpdateItemRequest

// PatchItemHandler handles PATCH /projects/{id}/items/{itemID} requests.
type PatchItemHandler struct {
	svc *appsvcs.Services
}

// NewPatchItemHandler returns a PatchItemHandler backed by the given services.
func NewPatchItemHandler(svc *appsvcs.Services) *PatchItemHandler {
	return &PatchItemHandler{svc: svc}
}

// Execute changes the quantity of one item.
//
//	@Summary	Update item quantity
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Project ID"
//	@Param		itemID	path		string				true	"Item ID"
//	@Param		request	body		UpdateItemRequest	true	"New quantity"
//	@Success	200		{object}	ItemResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/projects/{id}/items/{itemID} [patch]
func (h *PatchItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Project.UpdateItemQuantity(r.Context(), projectID, itemID, req.Quantity)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(item, domainsvcs.LineSummary(item)))
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/beerstock/pkg/errhttp"
	"github.com/ghuser/beerstock/pkg/httpx"
	pkgvalidator "github.com/ghuser/beerstock/pkg/validator"
	"github.com/ghuser/beerstock/services/beer/application/dto"
	appsvcs "github.com/ghuser/beerstock/services/beer/application/services"
)

// DecrementStockHandler handles PATCH /beers/{id}/decrement requests.
type DecrementStockHandler struct {
	svc *appsvcs.Services
}

// NewDecrementStockHandler returns a DecrementStockHandler backed by the given services.
func NewDecrementStockHandler(svc *appsvcs.Services) *DecrementStockHandler {
	return &DecrementStockHandler{svc: svc}
}

// Execute lowers a beer's stock quantity.
//
//	@Summary		Decrement stock
//	@Description	Lowers the stored quantity; fails when the result would drop below zero
//	@Tags			beers
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Beer id"	format(uuid)
//	@Param			request	body		dto.QuantityDTO	true	"Amount to remove"
//	@Success		200		{object}	dto.BeerDTO
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/beers/{id}/decrement [patch]
func (h *DecrementStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[dto.QuantityDTO](w, r)
	if !ok {
		return
	}

	beer, err := h.svc.Beer.Decrement(r.Context(), id, req.Quantity)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, beer)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/beerstock/pkg/errhttp"
	"github.com/ghuser/beerstock/pkg/httpx"
	appsvcs "github.com/ghuser/beerstock/services/beer/application/services"
)

// DeleteBeerHandler handles DELETE /beers/{id} requests.
type DeleteBeerHandler struct {
	svc *appsvcs.Services
}

// NewDeleteBeerHandler returns a DeleteBeerHandler backed by the given services.
func NewDeleteBeerHandler(svc *appsvcs.Services) *DeleteBeerHandler {
	return &DeleteBeerHandler{svc: svc}
}

// Execute removes a beer from the catalog.
//
//	@Summary		Delete beer
//	@Description	Removes a beer by id
//	@Tags			beers
//	@Param			id	path	string	true	"Beer id"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/beers/{id} [delete]
func (h *DeleteBeerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	if err := h.svc.Beer.DeleteByID(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/beerstock/pkg/errhttp"
	"github.com/ghuser/beerstock/pkg/httpx"
	appsvcs "github.com/ghuser/beerstock/services/beer/application/services"
)

// GetBeerHandler handles GET /beers/{name} requests.
type GetBeerHandler struct {
	svc *appsvcs.Services
}

// NewGetBeerHandler returns a GetBeerHandler backed by the given services.
func NewGetBeerHandler(svc *appsvcs.Services) *GetBeerHandler {
	return &GetBeerHandler{svc: svc}
}

// Execute retrieves a beer by its unique name.
//
//	@Summary		Find beer by name
//	@Description	Retrieves a single beer by its unique name
//	@Tags			beers
//	@Produce		json
//	@Param			name	path		string	true	"Beer name"
//	@Success		200		{object}	dto.BeerDTO
//	@Failure		404		{object}	ErrorResponse
//	@Router			/beers/{name} [get]
func (h *GetBeerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	beer, err := h.svc.Beer.FindByName(r.Context(), name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, beer)
}

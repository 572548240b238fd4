package handlers

import (
	"net/http"

	"github.com/ghuser/beerstock/pkg/errhttp"
	"github.com/ghuser/beerstock/pkg/httpx"
	appsvcs "github.com/ghuser/beerstock/services/beer/application/services"
)

// ListBeersHandler handles GET /beers requests.
type ListBeersHandler struct {
	svc *appsvcs.Services
}

// NewListBeersHandler returns a ListBeersHandler backed by the given services.
func NewListBeersHandler(svc *appsvcs.Services) *ListBeersHandler {
	return &ListBeersHandler{svc: svc}
}

// Execute lists every beer in the catalog.
//
//	@Summary		List beers
//	@Description	Lists all registered beers; an empty catalog yields an empty array
//	@Tags			beers
//	@Produce		json
//	@Success		200	{array}		dto.BeerDTO
//	@Failure		500	{object}	ErrorResponse
//	@Router			/beers [get]
func (h *ListBeersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	beers, err := h.svc.Beer.ListAll(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, beers)
}

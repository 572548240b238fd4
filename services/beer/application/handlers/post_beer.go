package handlers

import (
	"net/http"

	"github.com/ghuser/beerstock/pkg/errhttp"
	"github.com/ghuser/beerstock/pkg/httpx"
	pkgvalidator "github.com/ghuser/beerstock/pkg/validator"
	"github.com/ghuser/beerstock/services/beer/application/dto"
	appsvcs "github.com/ghuser/beerstock/services/beer/application/services"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"beer not found"`
} // @name ErrorResponse

// PostBeerHandler handles POST /beers requests.
type PostBeerHandler struct {
	svc *appsvcs.Services
}

// NewPostBeerHandler returns a PostBeerHandler backed by the given services.
func NewPostBeerHandler(svc *appsvcs.Services) *PostBeerHandler {
	return &PostBeerHandler{svc: svc}
}

// Execute registers a new beer in the catalog.
//
//	@Summary		Create beer
//	@Description	Registers a new beer. The name must be unique across the catalog.
//	@Tags			beers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BeerDTO	true	"Beer to register"
//	@Success		201		{object}	dto.BeerDTO
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/beers [post]
func (h *PostBeerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[dto.BeerDTO](w, r)
	if !ok {
		return
	}

	beer, err := h.svc.Beer.Create(r.Context(), *req)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, beer)
}

// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/beerstock/pkg/httpx"
	beerdomain "github.com/ghuser/beerstock/services/beer/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, beerdomain.ErrBeerNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, beerdomain.ErrBeerAlreadyRegistered):
		return http.StatusConflict // 409
	case errors.Is(err, beerdomain.ErrBeerStockExceeded):
		return http.StatusBadRequest // 400
	case errors.Is(err, beerdomain.ErrInvalidQuantity),
		errors.Is(err, beerdomain.ErrInvalidBeer):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}

package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/beerstock/pkg/app"
	"github.com/ghuser/beerstock/services/beer/application/handlers"
	appsvcs "github.com/ghuser/beerstock/services/beer/application/services"
)

// BeerRoutes registers beer endpoints on the provided chi router.
func BeerRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/beers", func(r chi.Router) {
			r.Post("/", handlers.NewPostBeerHandler(svcs).Execute)
			r.Get("/", handlers.NewListBeersHandler(svcs).Execute)
			r.Get("/{name}", handlers.NewGetBeerHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteBeerHandler(svcs).Execute)
			r.Patch("/{id}/increment", handlers.NewIncrementStockHandler(svcs).Execute)
			r.Patch("/{id}/decrement", handlers.NewDecrementStockHandler(svcs).Execute)
		})
	})
}

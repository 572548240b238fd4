package services

import (
	"github.com/ghuser/beerstock/pkg/app"
	"github.com/ghuser/beerstock/pkg/cache"
	"github.com/ghuser/beerstock/services/beer/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Beer *BeerService
}

// New wires all beer application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewBeerRepository(a.Db, a.EventBus)
	beerCache := cache.NewBeerCache(a.Redis)
	return &Services{
		Beer: NewBeerService(repo, beerCache),
	}
}

package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/beerstock/services/beer/domain/models"
)

// BeerRepository is the persistence interface for the Beer aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Lookups return domain.ErrBeerNotFound when no row matches. Save returns
// domain.ErrBeerAlreadyRegistered when the unique name constraint is violated.
type BeerRepository interface {
	// FindByName retrieves a beer by its unique name.
	FindByName(ctx context.Context, name string) (*models.Beer, error)

	// FindByID retrieves a beer by id.
	FindByID(ctx context.Context, id uuid.UUID) (*models.Beer, error)

	// FindAll retrieves every stored beer in insertion order.
	FindAll(ctx context.Context) ([]*models.Beer, error)

	// Save inserts or updates a beer and returns the persisted state.
	Save(ctx context.Context, beer *models.Beer) (*models.Beer, error)

	// DeleteByID removes a beer by id.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

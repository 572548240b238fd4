package dto

import (
	"fmt"

	"github.com/ghuser/beerstock/services/beer/domain"
	"github.com/ghuser/beerstock/services/beer/domain/models"
)

// ToModel converts a transfer object into a Beer aggregate.
// The conversion is lossless: every DTO field maps onto exactly one
// aggregate field. Structural violations surface as ErrInvalidBeer.
func ToModel(d BeerDTO) (*models.Beer, error) {
	name, err := models.NewBeerName(d.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidBeer, err)
	}

	beerType, err := models.ParseBeerType(d.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidBeer, err)
	}

	return &models.Beer{
		ID:        d.ID,
		Name:      name,
		Brand:     d.Brand,
		Max:       d.Max,
		Quantity:  d.Quantity,
		Type:      beerType,
		CreatedAt: d.CreatedAt,
	}, nil
}

// ToDTO converts a Beer aggregate into its transfer object, field for field.
// ToModel(ToDTO(b)) reproduces b exactly for any valid aggregate.
func ToDTO(b *models.Beer) BeerDTO {
	return BeerDTO{
		ID:        b.ID,
		Name:      b.Name.String(),
		Brand:     b.Brand,
		Max:       b.Max,
		Quantity:  b.Quantity,
		Type:      b.Type.String(),
		CreatedAt: b.CreatedAt,
	}
}

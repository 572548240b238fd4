// Package services contains stateless domain services for the beer bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/beerstock/services/beer/domain/models"
)

// ValidateName enforces business rules for BeerName beyond the structural
// constraints enforced by the BeerName constructor (length 1–200).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - Must not be only whitespace characters
func ValidateName(name models.BeerName) error {
	s := name.String()

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("beer name must not be only whitespace")
	}

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("beer name must not have leading or trailing whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("beer name must not contain control characters")
		}
	}

	return nil
}

// ValidateBeerForCreation performs cross-field validation on a fully-constructed
// Beer aggregate before it is persisted. Structural per-field constraints are
// assumed satisfied; this adds the checks that span multiple fields,
// in particular the stock bound 0 <= Quantity <= Max.
func ValidateBeerForCreation(beer *models.Beer) error {
	if beer == nil {
		return fmt.Errorf("beer cannot be nil")
	}

	if beer.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	if err := ValidateName(beer.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if beer.Max <= 0 {
		return fmt.Errorf("max stock must be positive, got %d", beer.Max)
	}

	if beer.Quantity < 0 || beer.Quantity > beer.Max {
		return fmt.Errorf("quantity %d outside the [0, %d] bound", beer.Quantity, beer.Max)
	}

	if _, err := models.ParseBeerType(beer.Type.String()); err != nil {
		return fmt.Errorf("invalid type: %w", err)
	}

	return nil
}

package models

import "fmt"

// BeerName is a value object representing a valid beer name.
// Names are the uniqueness key for the catalog, so structural rules live here.
type BeerName string

const (
	minBeerNameLength = 1
	maxBeerNameLength = 200
)

// NewBeerName constructs a valid BeerName or returns an error if constraints are violated.
func NewBeerName(s string) (BeerName, error) {
	if len(s) < minBeerNameLength {
		return "", fmt.Errorf("beer name must be at least %d character", minBeerNameLength)
	}
	if len(s) > maxBeerNameLength {
		return "", fmt.Errorf("beer name must not exceed %d characters", maxBeerNameLength)
	}
	return BeerName(s), nil
}

// String returns the underlying string value.
func (n BeerName) String() string {
	return string(n)
}

package models

import "fmt"

// BeerType is the category tag of a catalog entry.
type BeerType string

// Supported beer types. The set is closed; ParseBeerType rejects anything else.
const (
	TypeLager  BeerType = "lager"
	TypeAle    BeerType = "ale"
	TypeIPA    BeerType = "ipa"
	TypeStout  BeerType = "stout"
	TypePorter BeerType = "porter"
	TypeWheat  BeerType = "wheat"
)

// BeerTypes lists all valid types in a stable order.
var BeerTypes = []BeerType{TypeLager, TypeAle, TypeIPA, TypeStout, TypePorter, TypeWheat}

// ParseBeerType validates s against the closed set of beer types.
func ParseBeerType(s string) (BeerType, error) {
	for _, t := range BeerTypes {
		if s == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown beer type %q", s)
}

// String returns the underlying string value.
func (t BeerType) String() string {
	return string(t)
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Beer is the core aggregate for this bounded context: a catalog entry
// with a bounded stock quantity.
//
// Invariants: 0 <= Quantity <= Max on every mutation; Name is unique
// among all stored beers; ID is immutable once assigned.
type Beer struct {
	ID        uuid.UUID
	Name      BeerName // uniqueness key across the whole catalog
	Brand     string
	Max       int // inclusive upper stock bound
	Quantity  int
	Type      BeerType
	CreatedAt time.Time
}

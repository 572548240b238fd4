package domain

import "errors"

// Sentinel errors for the beer domain. Use errors.Is() to check these;
// callers wrap them with the offending name or id for context.
var (
	// ErrBeerNotFound indicates no beer matches the given name or id.
	ErrBeerNotFound = errors.New("beer not found")

	// ErrBeerAlreadyRegistered indicates a beer with the same name already exists.
	ErrBeerAlreadyRegistered = errors.New("beer already registered")

	// ErrBeerStockExceeded indicates a stock mutation would leave the
	// quantity outside the [0, max] bound.
	ErrBeerStockExceeded = errors.New("beer stock exceeded")

	// ErrInvalidQuantity indicates a non-positive increment or decrement amount.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidBeer indicates the beer violates structural domain constraints.
	ErrInvalidBeer = errors.New("invalid beer")
)

// Package dto defines the transfer objects exchanged at the beer service
// boundary and the lossless mapping between them and the domain aggregate.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// BeerDTO is the validated external representation of a Beer.
// Structural validation (go-playground/validator tags) runs at the HTTP
// boundary before a DTO reaches the service layer.
type BeerDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"     validate:"required,min=1,max=200"                         example:"Brahma"`
	Brand     string    `json:"brand"    validate:"required,min=1,max=200"                         example:"Ambev"`
	Max       int       `json:"max"      validate:"required,gt=0,lte=500"                          example:"50"`
	Quantity  int       `json:"quantity" validate:"gte=0,lte=500"                                  example:"10"`
	Type      string    `json:"type"     validate:"required,oneof=lager ale ipa stout porter wheat" example:"lager"`
	CreatedAt time.Time `json:"created_at,omitzero"`
} // @name BeerDTO

// QuantityDTO is the request body for stock increment and decrement operations.
type QuantityDTO struct {
	Quantity int `json:"quantity" validate:"required,gte=1" example:"10"`
} // @name QuantityDTO

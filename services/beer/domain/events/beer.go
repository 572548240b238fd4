package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the beer repository.
const (
	// TopicBeerCreated is published when a new beer is persisted.
	TopicBeerCreated = "beer.created"

	// TopicBeerStockChanged is published when a stored beer's quantity changes.
	TopicBeerStockChanged = "beer.stock_changed"

	// TopicBeerDeleted is published when a beer is removed from the catalog.
	TopicBeerDeleted = "beer.deleted"
)

// BeerCreatedEvent is published after a new Beer is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicBeerCreated).
type BeerCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	BeerID     uuid.UUID `json:"beer_id"`
	Name       string    `json:"name"`
	Brand      string    `json:"brand"`
	Max        int       `json:"max"`
	Quantity   int       `json:"quantity"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BeerStockChangedEvent is published after an increment or decrement is persisted.
type BeerStockChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	BeerID     uuid.UUID `json:"beer_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"` // quantity after the change
	OccurredAt time.Time `json:"occurred_at"`
}

// BeerDeletedEvent is published after a beer is removed.
type BeerDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	BeerID     uuid.UUID `json:"beer_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/beerstock/services/beer/domain/events"
)

func TestBeerCreatedEvent_JSONRoundTrip(t *testing.T) {
	original := events.BeerCreatedEvent{
		EventID:    uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		Version:    1,
		BeerID:     uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Name:       "Brahma",
		Brand:      "Ambev",
		Max:        50,
		Quantity:   10,
		Type:       "lager",
		OccurredAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.BeerCreatedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	if decoded.EventID != original.EventID {
		t.Errorf("EventID: got %v, want %v", decoded.EventID, original.EventID)
	}
	if decoded.BeerID != original.BeerID {
		t.Errorf("BeerID: got %v, want %v", decoded.BeerID, original.BeerID)
	}
	if decoded.Name != original.Name {
		t.Errorf("Name: got %q, want %q", decoded.Name, original.Name)
	}
	if decoded.Max != original.Max || decoded.Quantity != original.Quantity {
		t.Errorf("stock: got %d/%d, want %d/%d",
			decoded.Quantity, decoded.Max, original.Quantity, original.Max)
	}
	if decoded.Type != original.Type {
		t.Errorf("Type: got %q, want %q", decoded.Type, original.Type)
	}
	if !decoded.OccurredAt.Equal(original.OccurredAt) {
		t.Errorf("OccurredAt: got %v, want %v", decoded.OccurredAt, original.OccurredAt)
	}
}

func TestBeerCreatedEvent_JSONFieldNames(t *testing.T) {
	evt := events.BeerCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		BeerID:     uuid.New(),
		Name:       "Brahma",
		Brand:      "Ambev",
		Max:        50,
		Quantity:   10,
		Type:       "lager",
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "beer_id", "name", "brand", "max", "quantity", "type", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestBeerStockChangedEvent_JSONRoundTrip(t *testing.T) {
	original := events.BeerStockChangedEvent{
		EventID:    uuid.New(),
		Version:    1,
		BeerID:     uuid.New(),
		Name:       "Brahma",
		Quantity:   42,
		OccurredAt: time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.BeerStockChangedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	if decoded.BeerID != original.BeerID || decoded.Quantity != original.Quantity {
		t.Errorf("got %v/%d, want %v/%d",
			decoded.BeerID, decoded.Quantity, original.BeerID, original.Quantity)
	}
}

func TestTopics_Values(t *testing.T) {
	if events.TopicBeerCreated != "beer.created" {
		t.Errorf("expected %q, got %q", "beer.created", events.TopicBeerCreated)
	}
	if events.TopicBeerStockChanged != "beer.stock_changed" {
		t.Errorf("expected %q, got %q", "beer.stock_changed", events.TopicBeerStockChanged)
	}
	if events.TopicBeerDeleted != "beer.deleted" {
		t.Errorf("expected %q, got %q", "beer.deleted", events.TopicBeerDeleted)
	}
}

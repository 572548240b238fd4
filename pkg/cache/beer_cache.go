package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// BeerCacheTTL is the time-to-live for cached beers.
	BeerCacheTTL = 24 * time.Hour

	beerCacheKeyPrefix = "beer"
)

// CachedBeer is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash, keyed by the unique beer name since
// name lookup is the hot read path.
type CachedBeer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Max       int       `json:"max"`
	Quantity  int       `json:"quantity"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// BeerCache provides structured read/write operations for beer cache entries.
// Key format: "beer:{name}"
type BeerCache struct {
	client *RedisClient
}

// NewBeerCache creates a new BeerCache backed by the given RedisClient.
func NewBeerCache(r *RedisClient) *BeerCache {
	return &BeerCache{client: r}
}

// Get retrieves a cached beer by name.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *BeerCache) Get(ctx context.Context, name string) (*CachedBeer, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(name)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	max, err := strconv.Atoi(vals["max"])
	if err != nil {
		return nil, fmt.Errorf("cache parse max: %w", err)
	}
	quantity, err := strconv.Atoi(vals["quantity"])
	if err != nil {
		return nil, fmt.Errorf("cache parse quantity: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	return &CachedBeer{
		ID:        id,
		Name:      vals["name"],
		Brand:     vals["brand"],
		Max:       max,
		Quantity:  quantity,
		Type:      vals["type"],
		CreatedAt: createdAt,
	}, nil
}

// Set writes a cached beer as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *BeerCache) Set(ctx context.Context, beer *CachedBeer) error {
	key := c.key(beer.Name)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", beer.ID.String(),
		"name", beer.Name,
		"brand", beer.Brand,
		"max", strconv.Itoa(beer.Max),
		"quantity", strconv.Itoa(beer.Quantity),
		"type", beer.Type,
		"created_at", beer.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, BeerCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// SetQuantity updates only the quantity field of an existing cache entry.
// No-op when the entry is absent so a stale partial hash is never created.
func (c *BeerCache) SetQuantity(ctx context.Context, name string, quantity int) error {
	key := c.key(name)
	exists, err := c.client.Client().Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("cache exists: %w", err)
	}
	if exists == 0 {
		return nil
	}
	if err := c.client.Client().HSet(ctx, key, "quantity", strconv.Itoa(quantity)).Err(); err != nil {
		return fmt.Errorf("cache set quantity: %w", err)
	}
	return nil
}

// Delete removes a cached beer.
func (c *BeerCache) Delete(ctx context.Context, name string) error {
	if err := c.client.Client().Del(ctx, c.key(name)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "beer:{name}"
func (c *BeerCache) key(name string) string {
	return fmt.Sprintf("%s:%s", beerCacheKeyPrefix, name)
}

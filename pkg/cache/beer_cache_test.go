package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/beerstock/pkg/config"
)

// Integration tests — skipped unless REDIS_URL is set.
func TestBeerCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(&config.Config{RedisURL: redisURL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	bc := NewBeerCache(rc)
	ctx := context.Background()

	beer := &CachedBeer{
		ID:        uuid.New(),
		Name:      "cache-test-" + uuid.NewString(),
		Brand:     "Ambev",
		Max:       50,
		Quantity:  10,
		Type:      "lager",
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	defer bc.Delete(ctx, beer.Name) //nolint:errcheck

	t.Run("Get_Missing_ReturnsRedisNil", func(t *testing.T) {
		_, err := bc.Get(ctx, "no-such-beer-"+uuid.NewString())
		if !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil, got %v", err)
		}
	})

	t.Run("Set_Then_Get_RoundTrips", func(t *testing.T) {
		if err := bc.Set(ctx, beer); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		got, err := bc.Get(ctx, beer.Name)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.ID != beer.ID || got.Quantity != beer.Quantity || got.Type != beer.Type {
			t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, beer)
		}
		if !got.CreatedAt.Equal(beer.CreatedAt) {
			t.Fatalf("CreatedAt: got %v, want %v", got.CreatedAt, beer.CreatedAt)
		}
	})

	t.Run("SetQuantity_UpdatesExistingEntry", func(t *testing.T) {
		if err := bc.SetQuantity(ctx, beer.Name, 42); err != nil {
			t.Fatalf("SetQuantity failed: %v", err)
		}
		got, err := bc.Get(ctx, beer.Name)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Quantity != 42 {
			t.Fatalf("expected quantity 42, got %d", got.Quantity)
		}
	})

	t.Run("SetQuantity_AbsentEntry_NoOp", func(t *testing.T) {
		name := "absent-" + uuid.NewString()
		if err := bc.SetQuantity(ctx, name, 7); err != nil {
			t.Fatalf("SetQuantity failed: %v", err)
		}
		if _, err := bc.Get(ctx, name); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected entry to remain absent, got %v", err)
		}
	})

	t.Run("Delete_RemovesEntry", func(t *testing.T) {
		if err := bc.Delete(ctx, beer.Name); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := bc.Get(ctx, beer.Name); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after delete, got %v", err)
		}
	})
}

package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/beerstock/pkg/app"
	"github.com/ghuser/beerstock/pkg/cache"
	"github.com/ghuser/beerstock/pkg/config"
	"github.com/ghuser/beerstock/pkg/database"
	"github.com/ghuser/beerstock/pkg/events"
	"github.com/ghuser/beerstock/pkg/logger"
	"github.com/ghuser/beerstock/pkg/telemetry"
	beerEvents "github.com/ghuser/beerstock/services/beer/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all beer event handlers that maintain the Redis
// read-model cache: warm on create, patch quantity on stock change, evict on delete.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	beerCache := cache.NewBeerCache(a.Redis)

	topics := map[string]func(context.Context, *message.Message) error{
		beerEvents.TopicBeerCreated:      handleBeerCreated(a, beerCache),
		beerEvents.TopicBeerStockChanged: handleBeerStockChanged(a, beerCache),
		beerEvents.TopicBeerDeleted:      handleBeerDeleted(a, beerCache),
	}

	names := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		names = append(names, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", names)
	return nil
}

// handleBeerCreated warms the cache so the first FindByName after creation
// is served from Redis. Handlers must be idempotent — EventBus retries up
// to 3× on failure.
func handleBeerCreated(a *app.Application, beerCache *cache.BeerCache) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt beerEvents.BeerCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := beerCache.Set(ctx, &cache.CachedBeer{
			ID:        evt.BeerID,
			Name:      evt.Name,
			Brand:     evt.Brand,
			Max:       evt.Max,
			Quantity:  evt.Quantity,
			Type:      evt.Type,
			CreatedAt: evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for beer.created",
				"beer_id", evt.BeerID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed", "beer_id", evt.BeerID, "name", evt.Name)
		}

		return nil
	}
}

// handleBeerStockChanged patches the cached quantity in place. A missing
// cache entry is left missing; the next read warms it from the repository.
func handleBeerStockChanged(a *app.Application, beerCache *cache.BeerCache) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt beerEvents.BeerStockChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := beerCache.SetQuantity(ctx, evt.Name, evt.Quantity); err != nil {
			a.Logger.WarnContext(ctx, "cache update failed for beer.stock_changed",
				"beer_id", evt.BeerID, "error", err)
		}
		return nil
	}
}

// handleBeerDeleted evicts the cache entry for a removed beer.
func handleBeerDeleted(a *app.Application, beerCache *cache.BeerCache) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt beerEvents.BeerDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := beerCache.Delete(ctx, evt.Name); err != nil {
			a.Logger.WarnContext(ctx, "cache evict failed for beer.deleted",
				"beer_id", evt.BeerID, "error", err)
		}
		return nil
	}
}

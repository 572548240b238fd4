package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/beerstock/pkg/database"
	"github.com/ghuser/beerstock/pkg/events"
	beerdomain "github.com/ghuser/beerstock/services/beer/domain"
	domainevents "github.com/ghuser/beerstock/services/beer/domain/events"
	"github.com/ghuser/beerstock/services/beer/domain/models"
)

const uniqueViolation = "23505"

// BeerRepository implements repositories.BeerRepository against PostgreSQL.
type BeerRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewBeerRepository returns a BeerRepository backed by the given connection pool
// and event bus. The bus publishes beer lifecycle events in the same transaction
// as the row change; pass nil to disable event publishing.
func NewBeerRepository(database *database.Database, bus *events.EventBus) *BeerRepository {
	return &BeerRepository{db: database, bus: bus}
}

const findByNameQuery = `
SELECT id, name, brand, max_quantity, quantity, beer_type, created_at
FROM beers
WHERE name = $1`

// FindByName retrieves a beer by its unique name.
// Returns ErrBeerNotFound when no beer carries that name.
func (r *BeerRepository) FindByName(ctx context.Context, name string) (*models.Beer, error) {
	return r.scanBeer(r.db.DB().QueryRowContext(ctx, findByNameQuery, name))
}

const findByIDQuery = `
SELECT id, name, brand, max_quantity, quantity, beer_type, created_at
FROM beers
WHERE id = $1`

// FindByID retrieves a beer by id. Returns ErrBeerNotFound when absent.
func (r *BeerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Beer, error) {
	return r.scanBeer(r.db.DB().QueryRowContext(ctx, findByIDQuery, id))
}

const findAllQuery = `
SELECT id, name, brand, max_quantity, quantity, beer_type, created_at
FROM beers
ORDER BY created_at, id`

// FindAll retrieves every stored beer in insertion order.
func (r *BeerRepository) FindAll(ctx context.Context) ([]*models.Beer, error) {
	rows, err := r.db.DB().QueryContext(ctx, findAllQuery)
	if err != nil {
		return nil, fmt.Errorf("query beers: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	beers := make([]*models.Beer, 0)
	for rows.Next() {
		beer, err := scanBeerRow(rows)
		if err != nil {
			return nil, err
		}
		beers = append(beers, beer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate beers: %w", err)
	}
	return beers, nil
}

const upsertQuery = `
INSERT INTO beers (id, name, brand, max_quantity, quantity, beer_type, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE
SET brand = EXCLUDED.brand,
    max_quantity = EXCLUDED.max_quantity,
    quantity = EXCLUDED.quantity,
    beer_type = EXCLUDED.beer_type
RETURNING id, name, brand, max_quantity, quantity, beer_type, created_at, (xmax = 0) AS inserted`

// Save inserts or updates a beer and returns the persisted state.
// Inserts publish BeerCreatedEvent, updates publish BeerStockChangedEvent,
// both within the row's transaction. Returns ErrBeerAlreadyRegistered when
// the unique name constraint is violated.
func (r *BeerRepository) Save(ctx context.Context, beer *models.Beer) (*models.Beer, error) {
	var saved *models.Beer
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, upsertQuery,
			beer.ID,
			beer.Name.String(),
			beer.Brand,
			beer.Max,
			beer.Quantity,
			beer.Type.String(),
			beer.CreatedAt,
		)

		var (
			b        models.Beer
			name     string
			beerType string
			inserted bool
		)
		if err := row.Scan(&b.ID, &name, &b.Brand, &b.Max, &b.Quantity, &beerType, &b.CreatedAt, &inserted); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return fmt.Errorf("%w: %q", beerdomain.ErrBeerAlreadyRegistered, beer.Name)
			}
			return fmt.Errorf("upsert beer: %w", err)
		}
		b.Name = models.BeerName(name)
		b.Type = models.BeerType(beerType)
		saved = &b

		if r.bus == nil {
			return nil
		}
		if inserted {
			return r.publishCreated(tx, saved)
		}
		return r.publishStockChanged(tx, saved)
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

const deleteQuery = `DELETE FROM beers WHERE id = $1 RETURNING name`

// DeleteByID removes a beer by id and publishes BeerDeletedEvent in the same
// transaction. Returns ErrBeerNotFound when no row matches.
func (r *BeerRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var name string
		if err := tx.QueryRowContext(ctx, deleteQuery, id).Scan(&name); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: id %s", beerdomain.ErrBeerNotFound, id)
			}
			return fmt.Errorf("delete beer: %w", err)
		}

		if r.bus == nil {
			return nil
		}
		return r.publishDeleted(tx, id, name)
	})
}

func (r *BeerRepository) publishCreated(tx *sql.Tx, beer *models.Beer) error {
	event := domainevents.BeerCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		BeerID:     beer.ID,
		Name:       beer.Name.String(),
		Brand:      beer.Brand,
		Max:        beer.Max,
		Quantity:   beer.Quantity,
		Type:       beer.Type.String(),
		OccurredAt: beer.CreatedAt,
	}
	return r.publish(tx, domainevents.TopicBeerCreated, event.EventID, event)
}

func (r *BeerRepository) publishStockChanged(tx *sql.Tx, beer *models.Beer) error {
	event := domainevents.BeerStockChangedEvent{
		EventID:    uuid.New(),
		Version:    1,
		BeerID:     beer.ID,
		Name:       beer.Name.String(),
		Quantity:   beer.Quantity,
		OccurredAt: time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicBeerStockChanged, event.EventID, event)
}

func (r *BeerRepository) publishDeleted(tx *sql.Tx, id uuid.UUID, name string) error {
	event := domainevents.BeerDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		BeerID:     id,
		Name:       name,
		OccurredAt: time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicBeerDeleted, event.EventID, event)
}

func (r *BeerRepository) publish(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	if err := p.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *BeerRepository) scanBeer(row *sql.Row) (*models.Beer, error) {
	beer, err := scanBeerRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, beerdomain.ErrBeerNotFound
		}
		return nil, err
	}
	return beer, nil
}

func scanBeerRow(row rowScanner) (*models.Beer, error) {
	var (
		b        models.Beer
		name     string
		beerType string
	)
	if err := row.Scan(&b.ID, &name, &b.Brand, &b.Max, &b.Quantity, &beerType, &b.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan beer: %w", err)
	}
	b.Name = models.BeerName(name)
	b.Type = models.BeerType(beerType)
	return &b, nil
}

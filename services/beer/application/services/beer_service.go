package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	pkgcache "github.com/ghuser/beerstock/pkg/cache"
	"github.com/ghuser/beerstock/services/beer/application/dto"
	beerdomain "github.com/ghuser/beerstock/services/beer/domain"
	"github.com/ghuser/beerstock/services/beer/domain/models"
	"github.com/ghuser/beerstock/services/beer/domain/repositories"
	domainsvcs "github.com/ghuser/beerstock/services/beer/domain/services"
)

// BeerService owns all business rules over the beer catalog: creation with
// a unique-name guarantee, lookup, listing, deletion, and bounded stock
// mutation. It is stateless; every operation is one lookup plus at most one
// write against the repository, validated before anything is persisted.
// Name lookups are served from Redis cache when available.
type BeerService struct {
	repo  repositories.BeerRepository
	cache *pkgcache.BeerCache
}

// NewBeerService returns a BeerService wired with the given repository and
// cache. A nil cache disables read-through caching.
func NewBeerService(repo repositories.BeerRepository, beerCache *pkgcache.BeerCache) *BeerService {
	return &BeerService{repo: repo, cache: beerCache}
}

// Create registers a new beer. The name must not already be taken:
// duplicates fail with ErrBeerAlreadyRegistered before any write is issued.
// The id is assigned here and is immutable afterwards.
func (s *BeerService) Create(ctx context.Context, in dto.BeerDTO) (*dto.BeerDTO, error) {
	_, err := s.repo.FindByName(ctx, in.Name)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %q", beerdomain.ErrBeerAlreadyRegistered, in.Name)
	case !errors.Is(err, beerdomain.ErrBeerNotFound):
		return nil, fmt.Errorf("lookup beer by name: %w", err)
	}

	beer, err := dto.ToModel(in)
	if err != nil {
		return nil, err
	}
	beer.ID = uuid.New()
	beer.CreatedAt = time.Now().UTC()

	if err := domainsvcs.ValidateBeerForCreation(beer); err != nil {
		return nil, fmt.Errorf("%w: %w", beerdomain.ErrInvalidBeer, err)
	}

	saved, err := s.repo.Save(ctx, beer)
	if err != nil {
		return nil, fmt.Errorf("save beer: %w", err)
	}

	out := dto.ToDTO(saved)
	return &out, nil
}

// FindByName retrieves a beer by its unique name using a read-through
// cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query the repository.
//  3. Asynchronously warm the cache with the repository result.
//
// Fails with ErrBeerNotFound when no beer carries the name.
func (s *BeerService) FindByName(ctx context.Context, name string) (*dto.BeerDTO, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, name); err == nil {
			out := cachedToDTO(cached)
			return &out, nil
		}
		// redis.Nil or a cache failure: fall through to the repository.
	}

	beer, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, beerdomain.ErrBeerNotFound) {
			return nil, fmt.Errorf("%w: %q", beerdomain.ErrBeerNotFound, name)
		}
		return nil, fmt.Errorf("find beer by name: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), beerToCached(beer))
		}()
	}

	out := dto.ToDTO(beer)
	return &out, nil
}

// ListAll returns every stored beer in repository order. An empty catalog
// yields an empty slice, never an error.
func (s *BeerService) ListAll(ctx context.Context) ([]dto.BeerDTO, error) {
	beers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list beers: %w", err)
	}

	out := make([]dto.BeerDTO, 0, len(beers))
	for _, b := range beers {
		out = append(out, dto.ToDTO(b))
	}
	return out, nil
}

// DeleteByID removes a beer. The lookup runs first: an unknown id fails with
// ErrBeerNotFound and no delete is issued.
func (s *BeerService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	beer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, beerdomain.ErrBeerNotFound) {
			return fmt.Errorf("%w: %s", beerdomain.ErrBeerNotFound, id)
		}
		return fmt.Errorf("find beer: %w", err)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete beer: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), beer.Name.String())
	}
	return nil
}

// Increment raises the stored quantity by quantity (> 0). The result must
// stay within the inclusive max bound: new == max passes, new > max fails
// with ErrBeerStockExceeded and nothing is persisted.
func (s *BeerService) Increment(ctx context.Context, id uuid.UUID, quantity int) (*dto.BeerDTO, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: increment must be positive, got %d", beerdomain.ErrInvalidQuantity, quantity)
	}

	beer, err := s.findForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	newQuantity := beer.Quantity + quantity
	if newQuantity > beer.Max {
		return nil, fmt.Errorf("%w: beer %s: %d exceeds max %d",
			beerdomain.ErrBeerStockExceeded, id, newQuantity, beer.Max)
	}

	return s.saveQuantity(ctx, beer, newQuantity)
}

// Decrement lowers the stored quantity by quantity (> 0), mirroring
// Increment with an inclusive zero floor: new == 0 passes, new < 0 fails
// with ErrBeerStockExceeded and nothing is persisted.
func (s *BeerService) Decrement(ctx context.Context, id uuid.UUID, quantity int) (*dto.BeerDTO, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: decrement must be positive, got %d", beerdomain.ErrInvalidQuantity, quantity)
	}

	beer, err := s.findForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	newQuantity := beer.Quantity - quantity
	if newQuantity < 0 {
		return nil, fmt.Errorf("%w: beer %s: %d below zero floor",
			beerdomain.ErrBeerStockExceeded, id, newQuantity)
	}

	return s.saveQuantity(ctx, beer, newQuantity)
}

func (s *BeerService) findForUpdate(ctx context.Context, id uuid.UUID) (*models.Beer, error) {
	beer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, beerdomain.ErrBeerNotFound) {
			return nil, fmt.Errorf("%w: %s", beerdomain.ErrBeerNotFound, id)
		}
		return nil, fmt.Errorf("find beer: %w", err)
	}
	return beer, nil
}

func (s *BeerService) saveQuantity(ctx context.Context, beer *models.Beer, newQuantity int) (*dto.BeerDTO, error) {
	beer.Quantity = newQuantity
	saved, err := s.repo.Save(ctx, beer)
	if err != nil {
		return nil, fmt.Errorf("save beer: %w", err)
	}

	out := dto.ToDTO(saved)
	return &out, nil
}

func beerToCached(b *models.Beer) *pkgcache.CachedBeer {
	return &pkgcache.CachedBeer{
		ID:        b.ID,
		Name:      b.Name.String(),
		Brand:     b.Brand,
		Max:       b.Max,
		Quantity:  b.Quantity,
		Type:      b.Type.String(),
		CreatedAt: b.CreatedAt,
	}
}

func cachedToDTO(c *pkgcache.CachedBeer) dto.BeerDTO {
	return dto.BeerDTO{
		ID:        c.ID,
		Name:      c.Name,
		Brand:     c.Brand,
		Max:       c.Max,
		Quantity:  c.Quantity,
		Type:      c.Type,
		CreatedAt: c.CreatedAt,
	}
}

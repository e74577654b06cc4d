package repositories

import (
	"context"

	"github.com/SscSPs/beers_api/internal/core/domain"
)

// BeerReader defines read operations for catalog data
type BeerReader interface {
	// FindBeerByID retrieves a beer by its ID. Returns apperrors.ErrNotFound when absent.
	FindBeerByID(ctx context.Context, beerID int) (*domain.BeerItem, error)

	// FindBeers retrieves one page of beers, ordered as requested.
	FindBeers(ctx context.Context, page domain.PageRequest) (*domain.BeerPage, error)
}

// BeerWriter defines write operations for catalog data
type BeerWriter interface {
	// SaveBeer persists a new beer and returns it with its assigned ID.
	SaveBeer(ctx context.Context, beer domain.BeerItem) (*domain.BeerItem, error)
}

// BeerRepositoryFacade combines all beer-related repository interfaces
type BeerRepositoryFacade interface {
	BeerReader
	BeerWriter
}

package services

import (
	"context"

	"github.com/SscSPs/beers_api/internal/core/domain"
	"github.com/SscSPs/beers_api/internal/dto"
)

// BeerReaderSvc defines read operations for the catalog
type BeerReaderSvc interface {
	// GetBeerByID retrieves a beer by its ID.
	GetBeerByID(ctx context.Context, beerID int) (*domain.BeerItem, error)

	// ListBeers retrieves one page of the catalog.
	ListBeers(ctx context.Context, page domain.PageRequest) (*domain.BeerPage, error)
}

// BeerWriterSvc defines write operations for the catalog
type BeerWriterSvc interface {
	// CreateBeer validates and persists a new beer.
	CreateBeer(ctx context.Context, req dto.CreateBeerRequest) (*domain.BeerItem, error)
}

// BeerSvcFacade combines all beer-related service interfaces
type BeerSvcFacade interface {
	BeerReaderSvc
	BeerWriterSvc
}

// BoxPriceSvc prices a box of beers in a requested currency.
type BoxPriceSvc interface {
	// BoxPrice prices quantity units of beer converted into targetCurrency.
	BoxPrice(ctx context.Context, beer domain.BeerItem, quantity int, targetCurrency string) (*domain.BoxPrice, error)

	// GetBoxPrice looks the beer up by ID and prices it.
	GetBoxPrice(ctx context.Context, beerID int, quantity int, targetCurrency string) (*domain.BoxPrice, error)
}

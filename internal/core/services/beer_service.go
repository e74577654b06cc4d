package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/beers_api/internal/apperrors"
	"github.com/SscSPs/beers_api/internal/core/domain"
	portsrepo "github.com/SscSPs/beers_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/beers_api/internal/core/ports/services"
	"github.com/SscSPs/beers_api/internal/dto"
	"github.com/shopspring/decimal"
)

type beerService struct {
	BaseService
	beerRepo  portsrepo.BeerRepositoryFacade
	supported domain.SupportedCurrencySet
}

// NewBeerService creates a new catalog service.
func NewBeerService(beerRepo portsrepo.BeerRepositoryFacade, supported domain.SupportedCurrencySet) portssvc.BeerSvcFacade {
	return &beerService{beerRepo: beerRepo, supported: supported}
}

func (s *beerService) CreateBeer(ctx context.Context, req dto.CreateBeerRequest) (*domain.BeerItem, error) {
	name := strings.TrimSpace(req.Name)
	brewery := strings.TrimSpace(req.Brewery)
	country := strings.TrimSpace(req.Country)
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))

	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name must not be blank", apperrors.ErrValidation)
	case brewery == "":
		return nil, fmt.Errorf("%w: brewery must not be blank", apperrors.ErrValidation)
	case country == "":
		return nil, fmt.Errorf("%w: country must not be blank", apperrors.ErrValidation)
	case currency == "":
		return nil, fmt.Errorf("%w: currency must not be blank", apperrors.ErrValidation)
	case req.Price == nil:
		return nil, fmt.Errorf("%w: price is required", apperrors.ErrValidation)
	case req.Price.LessThanOrEqual(decimal.Zero):
		return nil, fmt.Errorf("%w: price must be positive", apperrors.ErrValidation)
	}

	// Also enforced at binding time.
	if !s.supported.Contains(currency) {
		return nil, fmt.Errorf("%w: Currency '%s' is not available", apperrors.ErrInvalidCurrency, req.Currency)
	}

	now := time.Now().UTC()
	beer := domain.BeerItem{
		Name:     name,
		Brewery:  brewery,
		Country:  country,
		Price:    *req.Price,
		Currency: currency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.beerRepo.SaveBeer(ctx, beer)
	if err != nil {
		s.LogError(ctx, err, "Failed to save beer in repository", slog.String("name", name))
		return nil, fmt.Errorf("failed to create beer in service: %w", err)
	}

	s.LogInfo(ctx, "Beer created successfully in service", slog.Int("beer_id", saved.ID))
	return saved, nil
}

func (s *beerService) GetBeerByID(ctx context.Context, beerID int) (*domain.BeerItem, error) {
	beer, err := s.beerRepo.FindBeerByID(ctx, beerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find beer by ID in repository", slog.Int("beer_id", beerID))
		}
		return nil, err
	}
	s.LogDebug(ctx, "Beer retrieved successfully from service", slog.Int("beer_id", beer.ID))
	return beer, nil
}

func (s *beerService) ListBeers(ctx context.Context, page domain.PageRequest) (*domain.BeerPage, error) {
	result, err := s.beerRepo.FindBeers(ctx, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to list beers from repository",
			slog.Int("page", page.Page), slog.Int("size", page.Size))
		return nil, fmt.Errorf("failed to list beers: %w", err)
	}
	if result.Items == nil {
		result.Items = []domain.BeerItem{}
	}
	s.LogDebug(ctx, "Beers listed successfully from service", slog.Int("count", len(result.Items)))
	return result, nil
}

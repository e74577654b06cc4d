package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SscSPs/beers_api/internal/apperrors"
	"github.com/SscSPs/beers_api/internal/core/domain"
	portssvc "github.com/SscSPs/beers_api/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type boxPriceService struct {
	BaseService
	beers     portssvc.BeerReaderSvc
	converter portssvc.CurrencyConverterSvc
}

// NewBoxPriceService creates a box price calculator over the catalog and the currency converter.
func NewBoxPriceService(beers portssvc.BeerReaderSvc, converter portssvc.CurrencyConverterSvc) portssvc.BoxPriceSvc {
	return &boxPriceService{beers: beers, converter: converter}
}

// BoxPrice multiplies the unit price by quantity, converts into targetCurrency and rounds
// half to even to two places only at the end.
func (s *boxPriceService) BoxPrice(ctx context.Context, beer domain.BeerItem, quantity int, targetCurrency string) (*domain.BoxPrice, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be greater than or equal to 1", apperrors.ErrValidation)
	}
	target := strings.ToUpper(strings.TrimSpace(targetCurrency))

	rawTotal := beer.Price.Mul(decimal.NewFromInt(int64(quantity)))
	converted, err := s.converter.Convert(ctx, beer.Currency, rawTotal, target)
	if err != nil {
		return nil, err
	}

	s.LogDebug(ctx, "Box price computed",
		slog.Int("beer_id", beer.ID),
		slog.Int("quantity", quantity),
		slog.String("source", beer.Currency),
		slog.String("target", target),
		slog.String("unrounded", converted.String()))

	return &domain.BoxPrice{
		Pack:       strconv.Itoa(quantity),
		TotalPrice: domain.FormatMoney(converted),
		Currency:   target,
	}, nil
}

func (s *boxPriceService) GetBoxPrice(ctx context.Context, beerID int, quantity int, targetCurrency string) (*domain.BoxPrice, error) {
	beer, err := s.beers.GetBeerByID(ctx, beerID)
	if err != nil {
		return nil, err
	}
	return s.BoxPrice(ctx, *beer, quantity, targetCurrency)
}

package services_test

import (
	"context"

	"github.com/SscSPs/beers_api/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock BeerRepository ---
type MockBeerRepository struct {
	mock.Mock
}

func (m *MockBeerRepository) SaveBeer(ctx context.Context, beer domain.BeerItem) (*domain.BeerItem, error) {
	args := m.Called(ctx, beer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BeerItem), args.Error(1)
}

func (m *MockBeerRepository) FindBeerByID(ctx context.Context, beerID int) (*domain.BeerItem, error) {
	args := m.Called(ctx, beerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BeerItem), args.Error(1)
}

func (m *MockBeerRepository) FindBeers(ctx context.Context, page domain.PageRequest) (*domain.BeerPage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BeerPage), args.Error(1)
}

// --- Mock ExchangeRateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchRates(ctx context.Context, baseCurrency string) (domain.RateTable, error) {
	args := m.Called(ctx, baseCurrency)
	return args.Get(0).(domain.RateTable), args.Error(1)
}

// --- Mock CurrencyConverterSvc ---
type MockConverter struct {
	mock.Mock
}

func (m *MockConverter) Convert(ctx context.Context, sourceCurrency string, amount decimal.Decimal, targetCurrency string) (decimal.Decimal, error) {
	args := m.Called(ctx, sourceCurrency, amount, targetCurrency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock BeerReaderSvc ---
type MockBeerReader struct {
	mock.Mock
}

func (m *MockBeerReader) GetBeerByID(ctx context.Context, beerID int) (*domain.BeerItem, error) {
	args := m.Called(ctx, beerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BeerItem), args.Error(1)
}

func (m *MockBeerReader) ListBeers(ctx context.Context, page domain.PageRequest) (*domain.BeerPage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BeerPage), args.Error(1)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rateTable(base string, rates map[string]string) domain.RateTable {
	parsed := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		parsed[code] = dec(rate)
	}
	return domain.NewRateTable(base, parsed)
}

var testCurrencies = domain.NewSupportedCurrencySet([]string{"USD", "EUR", "CLP", "GBP", "JPY"})

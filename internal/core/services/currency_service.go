package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/beers_api/internal/apperrors"
	"github.com/SscSPs/beers_api/internal/core/domain"
	"github.com/SscSPs/beers_api/internal/core/ports/providers"
	portssvc "github.com/SscSPs/beers_api/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// currencyService exposes the supported currency set and converts amounts using live rates.
type currencyService struct {
	BaseService
	supported domain.SupportedCurrencySet
	provider  providers.ExchangeRateProvider
}

// NewCurrencyService creates a new currency service over an immutable supported set.
func NewCurrencyService(supported domain.SupportedCurrencySet, provider providers.ExchangeRateProvider) portssvc.CurrencySvcFacade {
	return &currencyService{supported: supported, provider: provider}
}

func (s *currencyService) ListSupportedCurrencies(ctx context.Context) []string {
	return s.supported.Codes()
}

func (s *currencyService) IsSupported(code string) bool {
	return s.supported.Contains(code)
}

// Convert fetches a fresh rate table with sourceCurrency as base and multiplies amount by the
// targetCurrency rate. The result is not rounded. Provider errors are returned unchanged.
func (s *currencyService) Convert(ctx context.Context, sourceCurrency string, amount decimal.Decimal, targetCurrency string) (decimal.Decimal, error) {
	source := strings.ToUpper(strings.TrimSpace(sourceCurrency))
	target := strings.ToUpper(strings.TrimSpace(targetCurrency))

	table, err := s.provider.FetchRates(ctx, source)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return decimal.Decimal{}, err
		}
		s.LogError(ctx, err, "Failed to fetch exchange rates",
			slog.String("base", source), slog.String("target", target))
		return decimal.Decimal{}, err
	}

	rate, ok := table.Rate(target)
	if !ok {
		s.LogDebug(ctx, "Target currency missing from rate table",
			slog.String("base", source), slog.String("target", target), slog.Int("rates", table.Len()))
		return decimal.Decimal{}, fmt.Errorf("%w: %s -> %s", apperrors.ErrRateNotFound, source, target)
	}

	return amount.Mul(rate), nil
}

package providers

import (
	"context"

	"github.com/SscSPs/beers_api/internal/core/domain"
)

// ExchangeRateProvider fetches live exchange rates from an external service.
type ExchangeRateProvider interface {
	// FetchRates returns the rate table for baseCurrency. Every call goes to the
	// provider; nothing is cached.
	FetchRates(ctx context.Context, baseCurrency string) (domain.RateTable, error)
}

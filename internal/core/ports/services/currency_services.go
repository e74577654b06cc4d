package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc exposes the supported currency set
type CurrencyReaderSvc interface {
	// ListSupportedCurrencies returns the supported codes in ascending order.
	ListSupportedCurrencies(ctx context.Context) []string

	// IsSupported reports whether code (any case) is a supported currency.
	IsSupported(code string) bool
}

// CurrencyConverterSvc converts amounts between currencies using live rates
type CurrencyConverterSvc interface {
	// Convert multiplies amount by the current sourceCurrency -> targetCurrency rate.
	Convert(ctx context.Context, sourceCurrency string, amount decimal.Decimal, targetCurrency string) (decimal.Decimal, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyConverterSvc
}

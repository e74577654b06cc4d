package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidCurrency indicates a currency code that is not in the supported currency set.
var ErrInvalidCurrency = errors.New("currency not supported")

// ErrUpstreamUnavailable indicates the exchange rate provider could not be reached
// or answered with a non-2xx status.
var ErrUpstreamUnavailable = errors.New("exchange rate provider unavailable")

// ErrMalformedUpstreamResponse indicates the exchange rate provider answered with a body
// that could not be parsed into a rate table.
var ErrMalformedUpstreamResponse = errors.New("malformed exchange rate response")

// ErrRateNotFound indicates the requested target currency is missing from a fetched rate table.
var ErrRateNotFound = errors.New("exchange rate not found")

// ErrReferenceLoad indicates the supported currency reference file could not be loaded.
var ErrReferenceLoad = errors.New("failed to load supported currencies")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
// Used by infrastructure code (e.g. transaction handling) where the caller only needs a code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/beers_api/internal/apperrors"
	"github.com/SscSPs/beers_api/internal/core/domain"
	"github.com/SscSPs/beers_api/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// DefaultTimeout bounds a single call to the rate provider.
const DefaultTimeout = 5 * time.Second

// maxResponseBytes caps how much of a provider response is read.
const maxResponseBytes = 1 << 20

// Client fetches live exchange rates over HTTP. The base currency code is appended
// to baseURL, e.g. https://api.exchangerate-api.com/v4/latest/USD.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ providers.ExchangeRateProvider = (*Client)(nil)

// NewClient creates a new exchange rate client. A non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ratesResponse is the subset of the provider payload we read.
// Rates decode straight into decimals so no value passes through float64.
type ratesResponse struct {
	Base  string                         `json:"base"`
	Rates map[string]decimal.NullDecimal `json:"rates"`
}

// FetchRates performs one GET per call. There is no retry and no caching.
func (c *Client) FetchRates(ctx context.Context, baseCurrency string) (domain.RateTable, error) {
	base := strings.ToUpper(strings.TrimSpace(baseCurrency))
	url := c.baseURL + base

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: creating request for %s: %v", apperrors.ErrUpstreamUnavailable, base, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A caller that went away is not a provider outage.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.RateTable{}, ctxErr
		}
		return domain.RateTable{}, fmt.Errorf("%w: rate request for %s failed: %v", apperrors.ErrUpstreamUnavailable, base, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.RateTable{}, ctxErr
		}
		return domain.RateTable{}, fmt.Errorf("%w: reading rate response for %s: %v", apperrors.ErrUpstreamUnavailable, base, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.RateTable{}, fmt.Errorf("%w: rate provider HTTP %d for %s", apperrors.ErrUpstreamUnavailable, resp.StatusCode, base)
	}

	if len(body) > maxResponseBytes {
		return domain.RateTable{}, fmt.Errorf("%w: rate response for %s exceeds %d bytes", apperrors.ErrMalformedUpstreamResponse, base, maxResponseBytes)
	}

	return parseRates(base, body)
}

func parseRates(base string, body []byte) (domain.RateTable, error) {
	var raw ratesResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: parsing rate response for %s: %v", apperrors.ErrMalformedUpstreamResponse, base, err)
	}
	if raw.Rates == nil {
		return domain.RateTable{}, fmt.Errorf("%w: rate response for %s has no rates", apperrors.ErrMalformedUpstreamResponse, base)
	}

	rates := make(map[string]decimal.Decimal, len(raw.Rates))
	for code, rate := range raw.Rates {
		if !rate.Valid {
			return domain.RateTable{}, fmt.Errorf("%w: rate for %s is null", apperrors.ErrMalformedUpstreamResponse, code)
		}
		if rate.Decimal.IsNegative() {
			return domain.RateTable{}, fmt.Errorf("%w: rate for %s is negative", apperrors.ErrMalformedUpstreamResponse, code)
		}
		rates[code] = rate.Decimal
	}

	if raw.Base != "" {
		base = raw.Base
	}
	return domain.NewRateTable(base, rates), nil
}

// Package currencyref loads the reference list of supported currency codes.
package currencyref

import (
	"fmt"
	"os"
	"strings"

	"github.com/SscSPs/beers_api/internal/apperrors"
	"github.com/SscSPs/beers_api/internal/core/domain"
	"github.com/samber/lo"
)

// Load reads the comma-separated reference file at path and builds the supported
// currency set. A missing, unreadable or empty file is an error wrapping
// apperrors.ErrReferenceLoad; callers are expected to abort startup on it.
func Load(path string) (domain.SupportedCurrencySet, error) {
	if path == "" {
		return domain.SupportedCurrencySet{}, fmt.Errorf("%w: reference file path is empty", apperrors.ErrReferenceLoad)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SupportedCurrencySet{}, fmt.Errorf("%w: reading %s: %v", apperrors.ErrReferenceLoad, path, err)
	}

	set, err := Parse(string(data))
	if err != nil {
		return domain.SupportedCurrencySet{}, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse builds the supported currency set from comma-separated codes.
// Tokens are trimmed and uppercased, blank tokens are skipped.
func Parse(data string) (domain.SupportedCurrencySet, error) {
	codes := lo.FilterMap(strings.Split(data, ","), func(token string, _ int) (string, bool) {
		token = strings.ToUpper(strings.TrimSpace(token))
		return token, token != ""
	})
	if len(codes) == 0 {
		return domain.SupportedCurrencySet{}, fmt.Errorf("%w: no currency codes found", apperrors.ErrReferenceLoad)
	}
	return domain.NewSupportedCurrencySet(codes), nil
}

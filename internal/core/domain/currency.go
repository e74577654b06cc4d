package domain

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// SupportedCurrencySet is the immutable set of currency codes accepted as input.
// It is built once at startup and safe for concurrent reads.
type SupportedCurrencySet struct {
	codes map[string]struct{}
}

// NewSupportedCurrencySet builds a set from the given codes. Codes are trimmed and
// uppercased; blank entries are dropped.
func NewSupportedCurrencySet(codes []string) SupportedCurrencySet {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		set[code] = struct{}{}
	}
	return SupportedCurrencySet{codes: set}
}

// Contains reports whether code (in any case) is in the set.
func (s SupportedCurrencySet) Contains(code string) bool {
	_, ok := s.codes[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// IsValid is the currency validation predicate. An empty code means no value was
// supplied and is accepted; requiredness is checked separately.
func (s SupportedCurrencySet) IsValid(code string) bool {
	if code == "" {
		return true
	}
	return s.Contains(code)
}

// Len returns the number of codes in the set.
func (s SupportedCurrencySet) Len() int {
	return len(s.codes)
}

// Codes returns the codes in ascending order.
func (s SupportedCurrencySet) Codes() []string {
	out := lo.Keys(s.codes)
	sort.Strings(out)
	return out
}

package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RateTable maps target currency codes to the rate against Base.
// A table is fetched per conversion and never cached.
type RateTable struct {
	Base  string
	rates map[string]decimal.Decimal
}

// NewRateTable copies rates into a new table keyed by uppercase code.
func NewRateTable(base string, rates map[string]decimal.Decimal) RateTable {
	copied := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		copied[strings.ToUpper(code)] = rate
	}
	return RateTable{Base: strings.ToUpper(base), rates: copied}
}

// Rate returns the rate for the target code. ok is false when the code is absent,
// which is distinct from a zero rate.
func (t RateTable) Rate(target string) (rate decimal.Decimal, ok bool) {
	rate, ok = t.rates[strings.ToUpper(target)]
	return rate, ok
}

// Len returns the number of rates in the table.
func (t RateTable) Len() int {
	return len(t.rates)
}

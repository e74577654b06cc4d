package domain

import "github.com/shopspring/decimal"

// DefaultBoxQuantity is the pack size used when the caller does not supply one.
const DefaultBoxQuantity = 6

// MoneyPlaces is the number of fractional digits in a presented monetary amount.
const MoneyPlaces = 2

// BoxPrice is the presented price of a box of beers in the requested currency.
type BoxPrice struct {
	Pack       string `json:"pack"`
	TotalPrice string `json:"totalPrice"`
	Currency   string `json:"currency"`
}

// RoundMoney rounds half to even to MoneyPlaces digits.
// Example: 2.345 -> 2.34, 2.355 -> 2.36
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundBank(MoneyPlaces)
}

// FormatMoney renders amount with exactly MoneyPlaces fractional digits, rounding half to even.
// Example: 16.2525 -> "16.25", 6 -> "6.00"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixedBank(MoneyPlaces)
}

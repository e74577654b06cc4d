package domain

import "github.com/shopspring/decimal"

// BeerItem is a catalog entry. Price is expressed in Currency, which is always
// a member of the supported currency set.
type BeerItem struct {
	ID       int             `json:"id"`       // Primary Key (serial)
	Name     string          `json:"name"`     // e.g., "Golden Ale"
	Brewery  string          `json:"brewery"`  // e.g., "Kross"
	Country  string          `json:"country"`  // e.g., "Chile"
	Price    decimal.Decimal `json:"price"`    // Unit price, exact decimal
	Currency string          `json:"currency"` // Uppercase code, e.g., "CLP"
	AuditFields
}

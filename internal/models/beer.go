package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds the row timestamps shared by persisted tables.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt" db:"last_updated_at"`
}

// Beer is the persisted shape of a catalog entry (table: beers).
type Beer struct {
	ID       int             `json:"id" db:"id"`             // Primary Key (serial)
	Name     string          `json:"name" db:"name"`
	Brewery  string          `json:"brewery" db:"brewery"`
	Country  string          `json:"country" db:"country"`
	Price    decimal.Decimal `json:"price" db:"price"`       // NUMERIC(19,4)
	Currency string          `json:"currency" db:"currency"` // VARCHAR(3)
	AuditFields
}

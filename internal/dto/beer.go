package dto

import (
	"time"

	"github.com/SscSPs/beers_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBeerRequest defines the data needed to add a beer to the catalog.
type CreateBeerRequest struct {
	Name     string           `json:"name" binding:"required"`
	Brewery  string           `json:"brewery" binding:"required"`
	Country  string           `json:"country" binding:"required"`
	Price    *decimal.Decimal `json:"price" binding:"required" swaggertype:"number"` // Must be positive (checked by the service)
	Currency string           `json:"currency" binding:"required,validcurrency"`
}

// BeerResponse defines the data returned for a beer.
type BeerResponse struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Brewery       string          `json:"brewery"`
	Country       string          `json:"country"`
	Price         decimal.Decimal `json:"price" swaggertype:"number"`
	Currency      string          `json:"currency"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToBeerResponse converts a domain.BeerItem to BeerResponse DTO
func ToBeerResponse(beer *domain.BeerItem) BeerResponse {
	return BeerResponse{
		ID:            beer.ID,
		Name:          beer.Name,
		Brewery:       beer.Brewery,
		Country:       beer.Country,
		Price:         beer.Price,
		Currency:      beer.Currency,
		CreatedAt:     beer.CreatedAt,
		LastUpdatedAt: beer.LastUpdatedAt,
	}
}

// ListBeersParams defines query parameters for listing beers.
// Sort entries follow "field" or "field,asc|desc" and may repeat.
type ListBeersParams struct {
	Page int      `form:"page,default=0" binding:"min=0"`
	Size int      `form:"size,default=20" binding:"min=1,max=100"`
	Sort []string `form:"sort"`
}

// BeerPageResponse is one page of the catalog.
type BeerPageResponse struct {
	Content       []BeerResponse `json:"content"`
	TotalElements int64          `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
	Number        int            `json:"number"`
	Size          int            `json:"size"`
	First         bool           `json:"first"`
	Last          bool           `json:"last"`
}

// ToBeerPageResponse converts a domain.BeerPage to BeerPageResponse DTO
func ToBeerPageResponse(page *domain.BeerPage) BeerPageResponse {
	content := make([]BeerResponse, len(page.Items))
	for i := range page.Items {
		content[i] = ToBeerResponse(&page.Items[i])
	}
	totalPages := page.TotalPages()
	return BeerPageResponse{
		Content:       content,
		TotalElements: page.TotalElements,
		TotalPages:    totalPages,
		Number:        page.Page,
		Size:          page.Size,
		First:         page.Page == 0,
		Last:          page.Page+1 >= totalPages,
	}
}

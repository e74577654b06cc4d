package dto

import "github.com/SscSPs/beers_api/internal/core/domain"

// BoxPriceParams defines query parameters for pricing a box of beers.
type BoxPriceParams struct {
	Currency string `form:"currency" binding:"required,validcurrency"`
	Quantity int    `form:"quantity,default=6" binding:"min=1"`
}

// BoxPriceResponse defines the data returned for a box price.
type BoxPriceResponse struct {
	Pack       string `json:"pack" example:"6"`
	TotalPrice string `json:"totalPrice" example:"16.25"`
	Currency   string `json:"currency" example:"USD"`
}

// ToBoxPriceResponse converts a domain.BoxPrice to BoxPriceResponse DTO
func ToBoxPriceResponse(price *domain.BoxPrice) BoxPriceResponse {
	return BoxPriceResponse{
		Pack:       price.Pack,
		TotalPrice: price.TotalPrice,
		Currency:   price.Currency,
	}
}

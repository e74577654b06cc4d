package dto

// SupportedCurrenciesResponse lists the currency codes accepted by the API.
type SupportedCurrenciesResponse struct {
	Codes []string `json:"codes" example:"CLP,EUR,USD"`
}

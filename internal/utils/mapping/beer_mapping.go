package mapping

import (
	"github.com/SscSPs/beers_api/internal/core/domain"
	"github.com/SscSPs/beers_api/internal/models"
)

// ToModelBeer converts a domain BeerItem to a model Beer
func ToModelBeer(d domain.BeerItem) models.Beer {
	return models.Beer{
		ID:          d.ID,
		Name:        d.Name,
		Brewery:     d.Brewery,
		Country:     d.Country,
		Price:       d.Price,
		Currency:    d.Currency,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBeer converts a model Beer to a domain BeerItem
func ToDomainBeer(m models.Beer) domain.BeerItem {
	return domain.BeerItem{
		ID:          m.ID,
		Name:        m.Name,
		Brewery:     m.Brewery,
		Country:     m.Country,
		Price:       m.Price,
		Currency:    m.Currency,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBeerSlice converts a slice of model Beers to a slice of domain BeerItems
func ToDomainBeerSlice(ms []models.Beer) []domain.BeerItem {
	ds := make([]domain.BeerItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBeer(m)
	}
	return ds
}

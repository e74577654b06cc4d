package services

import (
	"github.com/SscSPs/beers_api/internal/core/domain"
	"github.com/SscSPs/beers_api/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/beers_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/beers_api/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, supported domain.SupportedCurrencySet, rates providers.ExchangeRateProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(supported, rates)
	container.Beer = NewBeerService(repos.BeerRepo, supported)

	// Box pricing reads the catalog through the beer service so lookups are logged the same way.
	container.BoxPrice = NewBoxPriceService(container.Beer, container.Currency)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BeerSvcFacade     = (*beerService)(nil)
	_ portssvc.CurrencySvcFacade = (*currencyService)(nil)
	_ portssvc.BoxPriceSvc       = (*boxPriceService)(nil)
)

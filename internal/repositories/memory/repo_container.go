package memory

import portsrepo "github.com/SscSPs/beers_api/internal/core/ports/repositories"

func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BeerRepo: NewBeerRepository(),
	}
}

package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/SscSPs/beers_api/internal/apperrors"
	"github.com/SscSPs/beers_api/internal/core/domain"
	portsrepo "github.com/SscSPs/beers_api/internal/core/ports/repositories"
)

// BeerRepository keeps the catalog in process memory. IDs start at 1.
// Used when no database URL is configured.
type BeerRepository struct {
	sync.RWMutex
	beers  map[int]domain.BeerItem
	nextID int
}

var _ portsrepo.BeerRepositoryFacade = (*BeerRepository)(nil)

func NewBeerRepository() *BeerRepository {
	return &BeerRepository{
		beers:  make(map[int]domain.BeerItem),
		nextID: 1,
	}
}

func (r *BeerRepository) SaveBeer(_ context.Context, beer domain.BeerItem) (*domain.BeerItem, error) {
	r.Lock()
	defer r.Unlock()

	beer.ID = r.nextID
	r.nextID++
	r.beers[beer.ID] = beer

	saved := beer
	return &saved, nil
}

func (r *BeerRepository) FindBeerByID(_ context.Context, beerID int) (*domain.BeerItem, error) {
	r.RLock()
	defer r.RUnlock()

	beer, ok := r.beers[beerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &beer, nil
}

func (r *BeerRepository) FindBeers(_ context.Context, page domain.PageRequest) (*domain.BeerPage, error) {
	r.RLock()
	all := make([]domain.BeerItem, 0, len(r.beers))
	for _, beer := range r.beers {
		all = append(all, beer)
	}
	r.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		return less(all[i], all[j], page.Sort)
	})

	result := &domain.BeerPage{
		Items:         []domain.BeerItem{},
		TotalElements: int64(len(all)),
		Page:          page.Page,
		Size:          page.Size,
	}

	start := page.Offset()
	if page.Size <= 0 || start < 0 || start >= len(all) {
		return result, nil
	}
	end := start + page.Size
	if end > len(all) {
		end = len(all)
	}
	result.Items = append(result.Items, all[start:end]...)
	return result, nil
}

// less orders by each sort field in turn and falls back to ID.
func less(a, b domain.BeerItem, orders []domain.SortOrder) bool {
	for _, order := range orders {
		c := compareField(a, b, order.Field)
		if c == 0 {
			continue
		}
		if order.Desc {
			return c > 0
		}
		return c < 0
	}
	return a.ID < b.ID
}

func compareField(a, b domain.BeerItem, field string) int {
	switch field {
	case "id":
		return compareInt(a.ID, b.ID)
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "brewery":
		return strings.Compare(a.Brewery, b.Brewery)
	case "country":
		return strings.Compare(a.Country, b.Country)
	case "price":
		return a.Price.Cmp(b.Price)
	case "currency":
		return strings.Compare(a.Currency, b.Currency)
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

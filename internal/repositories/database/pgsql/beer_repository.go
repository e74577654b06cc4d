package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/beers_api/internal/apperrors"
	"github.com/SscSPs/beers_api/internal/core/domain"
	portsrepo "github.com/SscSPs/beers_api/internal/core/ports/repositories"
	"github.com/SscSPs/beers_api/internal/models"
	"github.com/SscSPs/beers_api/internal/utils/mapping"
	"github.com/SscSPs/beers_api/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// beerSortColumns maps sortable API fields to columns. Only these ever reach ORDER BY.
var beerSortColumns = map[string]string{
	"id":       "id",
	"name":     "name",
	"brewery":  "brewery",
	"country":  "country",
	"price":    "price",
	"currency": "currency",
}

type PgxBeerRepository struct {
	BaseRepository
}

func newPgxBeerRepository(pool *pgxpool.Pool) portsrepo.BeerRepositoryFacade {
	return &PgxBeerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BeerRepositoryFacade = (*PgxBeerRepository)(nil)

// SaveBeer inserts a beer and returns it with the generated ID.
func (r *PgxBeerRepository) SaveBeer(ctx context.Context, beer domain.BeerItem) (*domain.BeerItem, error) {
	modelBeer := mapping.ToModelBeer(beer)

	query := `
		INSERT INTO beers (name, brewery, country, price, currency, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelBeer.Name,
		modelBeer.Brewery,
		modelBeer.Country,
		modelBeer.Price,
		modelBeer.Currency,
		modelBeer.CreatedAt,
		modelBeer.LastUpdatedAt,
	).Scan(&modelBeer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save beer %s: %w", modelBeer.Name, err)
	}

	saved := mapping.ToDomainBeer(modelBeer)
	return &saved, nil
}

// FindBeerByID retrieves a beer by its ID.
func (r *PgxBeerRepository) FindBeerByID(ctx context.Context, beerID int) (*domain.BeerItem, error) {
	query := `
		SELECT id, name, brewery, country, price, currency, created_at, last_updated_at
		FROM beers
		WHERE id = $1;
	`
	modelBeer, err := scanBeer(r.Pool.QueryRow(ctx, query, beerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find beer by id %d: %w", beerID, err)
	}

	beer := mapping.ToDomainBeer(modelBeer)
	return &beer, nil
}

// FindBeers returns one page of beers and the total row count from the same snapshot.
func (r *PgxBeerRepository) FindBeers(ctx context.Context, page domain.PageRequest) (*domain.BeerPage, error) {
	tx, err := r.BeginReadOnly(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var total int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM beers;`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count beers: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, brewery, country, price, currency, created_at, last_updated_at
		FROM beers
		ORDER BY %s
		LIMIT $1 OFFSET $2;
	`, pagination.OrderByClause(page.Sort, beerSortColumns, "id"))

	rows, err := tx.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to query beers: %w", err)
	}
	defer rows.Close()

	modelBeers := make([]models.Beer, 0, page.Size)
	for rows.Next() {
		modelBeer, err := scanBeer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan beer row: %w", err)
		}
		modelBeers = append(modelBeers, modelBeer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating beer rows: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.BeerPage{
		Items:         mapping.ToDomainBeerSlice(modelBeers),
		TotalElements: total,
		Page:          page.Page,
		Size:          page.Size,
	}, nil
}

func scanBeer(row pgx.Row) (models.Beer, error) {
	var modelBeer models.Beer
	err := row.Scan(
		&modelBeer.ID,
		&modelBeer.Name,
		&modelBeer.Brewery,
		&modelBeer.Country,
		&modelBeer.Price,
		&modelBeer.Currency,
		&modelBeer.CreatedAt,
		&modelBeer.LastUpdatedAt,
	)
	return modelBeer, err
}

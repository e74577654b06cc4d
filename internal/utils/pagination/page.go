package pagination

import (
	"fmt"
	"math"
	"strings"

	"github.com/SscSPs/beers_api/internal/apperrors"
	"github.com/SscSPs/beers_api/internal/core/domain"
	"github.com/samber/lo"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NewPageRequest builds a PageRequest from raw query values. page below zero becomes 0;
// size outside [1, MaxPageSize] falls back to DefaultPageSize or is clamped to MaxPageSize.
// A page whose offset would overflow an int is a validation error.
// Sort values use the "field" or "field,asc|desc" form; fields must be in allowed.
func NewPageRequest(page, size int, sort []string, allowed []string) (domain.PageRequest, error) {
	if page < 0 {
		page = 0
	}
	switch {
	case size <= 0:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}
	if page > math.MaxInt/size {
		return domain.PageRequest{}, fmt.Errorf("%w: page %d is out of range", apperrors.ErrValidation, page)
	}

	orders, err := ParseSort(sort, allowed)
	if err != nil {
		return domain.PageRequest{}, err
	}
	return domain.PageRequest{Page: page, Size: size, Sort: orders}, nil
}

// ParseSort parses sort values such as "name", "price,desc" or "name,asc".
func ParseSort(values []string, allowed []string) ([]domain.SortOrder, error) {
	orders := make([]domain.SortOrder, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		parts := strings.Split(value, ",")
		if len(parts) > 2 {
			return nil, fmt.Errorf("%w: invalid sort '%s'", apperrors.ErrValidation, value)
		}

		field := strings.TrimSpace(parts[0])
		if !lo.Contains(allowed, field) {
			return nil, fmt.Errorf("%w: cannot sort by '%s'", apperrors.ErrValidation, field)
		}

		order := domain.SortOrder{Field: field}
		if len(parts) == 2 {
			switch strings.ToLower(strings.TrimSpace(parts[1])) {
			case "asc", "":
			case "desc":
				order.Desc = true
			default:
				return nil, fmt.Errorf("%w: invalid sort direction in '%s'", apperrors.ErrValidation, value)
			}
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// OrderByClause renders orders as a SQL ORDER BY list using columns to map fields to
// column names. The tiebreaker column is always appended so paging is stable.
func OrderByClause(orders []domain.SortOrder, columns map[string]string, tiebreaker string) string {
	clauses := make([]string, 0, len(orders)+1)
	seenTiebreaker := false
	for _, order := range orders {
		column, ok := columns[order.Field]
		if !ok {
			continue
		}
		if column == tiebreaker {
			seenTiebreaker = true
		}
		direction := "ASC"
		if order.Desc {
			direction = "DESC"
		}
		clauses = append(clauses, column+" "+direction)
	}
	if !seenTiebreaker {
		clauses = append(clauses, tiebreaker+" ASC")
	}
	return strings.Join(clauses, ", ")
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"repair-ads/internal/core/domain"
)

// CatalogRepository implements port.CatalogRepository using pgxpool.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// BasePrices returns every currency's per-day base price, or only the
// given currency's when currency is not nil.
func (r *CatalogRepository) BasePrices(ctx context.Context, currency *string) ([]domain.Currency, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT currency, price_per_day::text
        FROM base_prices
        WHERE $1::text IS NULL OR currency = upper($1::text)
        ORDER BY currency`, currency)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Currency, error) {
		var (
			c     domain.Currency
			price string
		)
		if err := row.Scan(&c.Code, &price); err != nil {
			return c, err
		}
		amount, err := parseMoney(price)
		c.BasePricePerDay = amount
		return c, err
	})
}

// OperatorServices returns the operator's active services.
func (r *CatalogRepository) OperatorServices(ctx context.Context, operatorID int64) ([]domain.ServiceRef, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, title, price::text, currency
        FROM operator_services
        WHERE operator_id = $1 AND active
        ORDER BY id`, operatorID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ServiceRef, error) {
		var (
			s     domain.ServiceRef
			price string
		)
		if err := row.Scan(&s.ID, &s.Title, &price, &s.Currency); err != nil {
			return s, err
		}
		amount, err := parseMoney(price)
		s.Price = amount
		return s, err
	})
}

func (r *CatalogRepository) Cities(ctx context.Context) ([]domain.City, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM cities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.City])
}

// OperatorProfile returns the operator's profile, or nil when there is none.
func (r *CatalogRepository) OperatorProfile(ctx context.Context, operatorID int64) (*domain.Profile, error) {
	var p domain.Profile
	err := r.pool.QueryRow(ctx, `SELECT id, operator_id, display_name FROM profiles WHERE operator_id = $1`, operatorID).
		Scan(&p.ID, &p.OperatorID, &p.DisplayName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func parseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}

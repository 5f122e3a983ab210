package pricingadapter

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"repair-ads/internal/core/domain"
	"repair-ads/internal/core/port"
)

// CatalogQuoter prices a campaign locally as the currency's per-day base
// price times the number of days.
type CatalogQuoter struct {
	catalog port.CatalogRepository
}

func NewCatalogQuoter(catalog port.CatalogRepository) *CatalogQuoter {
	return &CatalogQuoter{catalog: catalog}
}

func (q *CatalogQuoter) Quote(ctx context.Context, totalDays int, currency string) (decimal.Decimal, error) {
	if totalDays < domain.MinTotalDays || totalDays > domain.MaxTotalDays {
		return decimal.Zero, fmt.Errorf("total days %d out of range", totalDays)
	}
	code := domain.NormalizeCurrency(currency)
	prices, err := q.catalog.BasePrices(ctx, &code)
	if err != nil {
		return decimal.Zero, fmt.Errorf("load base price: %w", err)
	}
	if len(prices) == 0 {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, code)
	}
	return prices[0].BasePricePerDay.Mul(decimal.NewFromInt(int64(totalDays))).Round(2), nil
}

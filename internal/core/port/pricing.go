package port

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceQuoter is the remote pricing function: the total price of a
// campaign running totalDays days, in currency.
type PriceQuoter interface {
	Quote(ctx context.Context, totalDays int, currency string) (decimal.Decimal, error)
}

// QuoteCache stores quotes shared by every session.
type QuoteCache interface {
	// Get returns the cached quote and whether it was found.
	Get(ctx context.Context, totalDays int, currency string) (decimal.Decimal, bool, error)
	Set(ctx context.Context, totalDays int, currency string, price decimal.Decimal) error
}

package pricingadapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"repair-ads/internal/core/port"
)

// CachingQuoter puts a shared cache in front of another quoter. Concurrent
// requests for the same inputs share one upstream call. Cache failures
// are logged and never fail a quote.
type CachingQuoter struct {
	next   port.PriceQuoter
	cache  port.QuoteCache
	logger *slog.Logger
	group  singleflight.Group
}

func NewCachingQuoter(next port.PriceQuoter, cache port.QuoteCache, logger *slog.Logger) *CachingQuoter {
	return &CachingQuoter{next: next, cache: cache, logger: logger}
}

func (q *CachingQuoter) Quote(ctx context.Context, totalDays int, currency string) (decimal.Decimal, error) {
	price, ok, err := q.cache.Get(ctx, totalDays, currency)
	if err != nil {
		q.logger.Warn("quote cache read failed", slog.Any("error", err))
	} else if ok {
		return price, nil
	}

	key := fmt.Sprintf("%s:%d", currency, totalDays)
	v, err, _ := q.group.Do(key, func() (any, error) {
		price, err := q.next.Quote(ctx, totalDays, currency)
		if err != nil {
			return nil, err
		}
		if err := q.cache.Set(ctx, totalDays, currency, price); err != nil {
			q.logger.Warn("quote cache write failed", slog.Any("error", err))
		}
		return price, nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return v.(decimal.Decimal), nil
}

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// QuoteCache shares price quotes between sessions and instances. Prices
// are stored as decimal strings. It implements port.QuoteCache.
type QuoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQuoteCache(client *redis.Client, ttl time.Duration) *QuoteCache {
	return &QuoteCache{client: client, ttl: ttl}
}

func quoteKey(totalDays int, currency string) string {
	return fmt.Sprintf("campaign:quote:%s:%d", currency, totalDays)
}

func (c *QuoteCache) Get(ctx context.Context, totalDays int, currency string) (decimal.Decimal, bool, error) {
	raw, err := c.client.Get(ctx, quoteKey(totalDays, currency)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("cached quote %q: %w", raw, err)
	}
	return price, true, nil
}

func (c *QuoteCache) Set(ctx context.Context, totalDays int, currency string, price decimal.Decimal) error {
	return c.client.Set(ctx, quoteKey(totalDays, currency), price.String(), c.ttl).Err()
}

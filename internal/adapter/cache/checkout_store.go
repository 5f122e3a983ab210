package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"repair-ads/internal/core/domain"
)

const checkoutKeyPrefix = "campaign:checkout:"

// CheckoutStore keeps handed-off submissions until the payment step picks
// them up or the TTL runs out. It implements port.CheckoutStore.
type CheckoutStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCheckoutStore(client *redis.Client, ttl time.Duration) *CheckoutStore {
	return &CheckoutStore{client: client, ttl: ttl}
}

func (s *CheckoutStore) Put(ctx context.Context, token string, sub domain.Submission) error {
	raw, err := json.Marshal(sub)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, checkoutKeyPrefix+token, raw, s.ttl).Err()
}

func (s *CheckoutStore) Get(ctx context.Context, token string) (*domain.Submission, error) {
	raw, err := s.client.Get(ctx, checkoutKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var out domain.Submission
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CheckoutStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, checkoutKeyPrefix+token).Err()
}

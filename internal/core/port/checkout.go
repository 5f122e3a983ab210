package port

import (
	"context"
	"errors"

	"repair-ads/internal/core/domain"
)

var ErrCheckoutNotFound = errors.New("checkout not found")

// CheckoutStore is the transient storage through which a submission is
// handed to the payment step.
type CheckoutStore interface {
	Put(ctx context.Context, token string, sub domain.Submission) error
	// Delete withdraws a hand-off whose campaign update did not commit.
	Delete(ctx context.Context, token string) error
	// Get returns the submission stored under token, or nil when it has
	// expired or never existed.
	Get(ctx context.Context, token string) (*domain.Submission, error)
}

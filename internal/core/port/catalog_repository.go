package port

import (
	"context"

	"repair-ads/internal/core/domain"
)

// CatalogRepository serves the read-only reference data a campaign form
// needs. It is an outbound port; implementations must be safe for
// concurrent use.
type CatalogRepository interface {
	// BasePrices returns the per-day base price of every currency, or of a
	// single currency when currency is non-nil.
	BasePrices(ctx context.Context, currency *string) ([]domain.Currency, error)
	// OperatorServices returns the operator's active sellable services.
	OperatorServices(ctx context.Context, operatorID int64) ([]domain.ServiceRef, error)
	// Cities returns the cities a service campaign may target.
	Cities(ctx context.Context) ([]domain.City, error)
	// OperatorProfile returns the operator's profile, or nil when the
	// operator has none.
	OperatorProfile(ctx context.Context, operatorID int64) (*domain.Profile, error)
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"repair-ads/internal/core/domain"
)

// loadReference loads every catalog a form needs concurrently. A failed
// load leaves its catalog empty and adds a notice; it never fails the
// session.
func (u *CampaignUseCase) loadReference(ctx context.Context, operatorID int64) (domain.ReferenceData, []string) {
	var (
		ref        domain.ReferenceData
		currencies []domain.Currency
		services   []domain.ServiceRef
		cities     []domain.City
		profile    *domain.Profile
		failures   = make([]error, 4)
		g          errgroup.Group
	)

	g.Go(func() (err error) {
		currencies, err = u.catalog.BasePrices(ctx, nil)
		failures[0] = err
		return nil
	})
	g.Go(func() (err error) {
		services, err = u.catalog.OperatorServices(ctx, operatorID)
		failures[1] = err
		return nil
	})
	g.Go(func() (err error) {
		cities, err = u.catalog.Cities(ctx)
		failures[2] = err
		return nil
	})
	g.Go(func() (err error) {
		profile, err = u.catalog.OperatorProfile(ctx, operatorID)
		failures[3] = err
		return nil
	})
	_ = g.Wait()

	var notices []string
	for i, source := range []string{"currencies", "services", "cities", "profile"} {
		if failures[i] == nil {
			continue
		}
		u.logger.Warn("reference data load failed",
			slog.String("source", source),
			slog.Int64("operator_id", operatorID),
			slog.Any("error", failures[i]))
		u.metrics.RecordReferenceLoadFailure(source)
		notices = append(notices, fmt.Sprintf("could not load %s, please retry", source))
	}

	ref.Currencies = domain.NewCurrencyCatalog(currencies)
	ref.Services = domain.NewServiceCatalog(services)
	ref.Cities = domain.NewCityCatalog(cities)
	ref.Profile = profile
	return ref, notices
}

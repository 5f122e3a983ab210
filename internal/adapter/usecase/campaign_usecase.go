package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"repair-ads/internal/core/domain"
	"repair-ads/internal/core/port"
	"repair-ads/internal/core/pricing"
	"repair-ads/internal/metrics"
)

// Settings are the business knobs of the campaign forms.
type Settings struct {
	// MinLeadDays is the single lead time used by the start date picker
	// and the validation rules.
	MinLeadDays int
	// DefaultCurrency preselects the currency of new drafts.
	DefaultCurrency string
	// AllowZeroPrice permits submission after a failed price quote.
	AllowZeroPrice bool
	// DebounceWindow delays price quotes after input changes.
	DebounceWindow time.Duration
	// SessionTTL expires sessions idle for longer.
	SessionTTL time.Duration
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		MinLeadDays:     domain.DefaultMinLeadDays,
		DefaultCurrency: "USD",
		DebounceWindow:  pricing.DefaultDebounceWindow,
		SessionTTL:      30 * time.Minute,
	}
}

type Option func(*CampaignUseCase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(u *CampaignUseCase) { u.now = now }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(u *CampaignUseCase) { u.metrics = m }
}

// WithEstimatorOptions passes extra options to every session's estimator.
func WithEstimatorOptions(opts ...pricing.Option) Option {
	return func(u *CampaignUseCase) { u.estimatorOpts = append(u.estimatorOpts, opts...) }
}

// CampaignUseCase implements port.CampaignUseCase. It keeps open form
// sessions in memory and orchestrates the repositories, the pricing
// service and the checkout hand-off.
type CampaignUseCase struct {
	catalog   port.CatalogRepository
	campaigns port.CampaignRepository
	quoter    port.PriceQuoter
	checkout  port.CheckoutStore
	logger    *slog.Logger
	metrics   *metrics.Metrics

	settings      Settings
	schedule      domain.Schedule
	validator     *domain.Validator
	estimatorOpts []pricing.Option
	now           func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*CampaignForm
}

func NewCampaignUseCase(
	catalog port.CatalogRepository,
	campaigns port.CampaignRepository,
	quoter port.PriceQuoter,
	checkout port.CheckoutStore,
	logger *slog.Logger,
	settings Settings,
	opts ...Option,
) *CampaignUseCase {
	schedule := domain.NewSchedule(settings.MinLeadDays)
	u := &CampaignUseCase{
		catalog:   catalog,
		campaigns: campaigns,
		quoter:    quoter,
		checkout:  checkout,
		logger:    logger,
		settings:  settings,
		schedule:  schedule,
		validator: domain.NewValidator(schedule),
		now:       time.Now,
		sessions:  make(map[uuid.UUID]*CampaignForm),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *CampaignUseCase) today() domain.Date {
	return domain.DateOf(u.now())
}

func (u *CampaignUseCase) Currencies(ctx context.Context) ([]domain.Currency, error) {
	return u.catalog.BasePrices(ctx, nil)
}

func (u *CampaignUseCase) Cities(ctx context.Context) ([]domain.City, error) {
	return u.catalog.Cities(ctx)
}

func (u *CampaignUseCase) OperatorServices(ctx context.Context, operatorID int64) ([]domain.ServiceRef, error) {
	return u.catalog.OperatorServices(ctx, operatorID)
}

// OpenSession creates a form session. In the edit flow the campaign record
// is loaded before any reference data, so the saved currency and services
// can be matched against the catalogs loaded afterwards.
func (u *CampaignUseCase) OpenSession(ctx context.Context, req port.OpenSessionReq) (*port.CampaignView, error) {
	u.expireIdle()

	var draft domain.Draft
	if req.CampaignID != nil {
		rec, err := u.campaigns.GetCampaign(ctx, *req.CampaignID)
		if err != nil {
			return nil, fmt.Errorf("load campaign %d: %w", *req.CampaignID, err)
		}
		if rec == nil || rec.OperatorID != req.OperatorID {
			return nil, port.ErrCampaignNotFound
		}
		if rec.Status.Terminal() {
			return nil, domain.ErrCampaignLocked
		}
		draft = rec.Draft()
	}

	ref, notices := u.loadReference(ctx, req.OperatorID)

	if req.CampaignID == nil {
		draft = domain.NewDraft(req.OperatorID, u.defaultCurrency(ref.Currencies))
	}

	form := &CampaignForm{
		id:             uuid.New(),
		ref:            ref,
		validator:      u.validator,
		schedule:       u.schedule,
		allowZeroPrice: u.settings.AllowZeroPrice,
		draft:          draft,
		notices:        notices,
		lastSeen:       u.now(),
	}
	opts := append([]pricing.Option{
		pricing.WithWindow(u.settings.DebounceWindow),
		pricing.WithObserver(u.metrics),
	}, u.estimatorOpts...)
	form.estimator = pricing.NewEstimator(u.quoter, u.logger, opts...)
	form.estimator.Update(draft.TotalDays, draft.Currency)

	u.mu.Lock()
	u.sessions[form.id] = form
	n := len(u.sessions)
	u.mu.Unlock()
	u.metrics.SetActiveSessions(n)

	u.logger.Debug("form session opened",
		slog.String("session_id", form.id.String()),
		slog.Int64("operator_id", req.OperatorID),
		slog.Bool("edit", req.CampaignID != nil))
	return form.view(u.today()), nil
}

func (u *CampaignUseCase) defaultCurrency(catalog domain.CurrencyCatalog) string {
	if _, ok := catalog.Lookup(u.settings.DefaultCurrency); ok || catalog.Len() == 0 {
		return u.settings.DefaultCurrency
	}
	return catalog.Entries()[0].Code
}

func (u *CampaignUseCase) Session(ctx context.Context, id uuid.UUID, settle bool) (*port.CampaignView, error) {
	form, err := u.form(id)
	if err != nil {
		return nil, err
	}
	if settle {
		if _, err = form.estimator.Wait(ctx); err != nil {
			return nil, err
		}
	}
	return form.view(u.today()), nil
}

func (u *CampaignUseCase) UpdateSession(ctx context.Context, id uuid.UUID, patch port.DraftPatch) (*port.CampaignView, error) {
	form, err := u.form(id)
	if err != nil {
		return nil, err
	}
	if err = form.apply(patch); err != nil {
		return nil, err
	}
	return form.view(u.today()), nil
}

func (u *CampaignUseCase) BundleService(ctx context.Context, id uuid.UUID, serviceID int64) (*port.CampaignView, error) {
	form, err := u.form(id)
	if err != nil {
		return nil, err
	}
	if err = form.bundle(serviceID); err != nil {
		return nil, err
	}
	return form.view(u.today()), nil
}

func (u *CampaignUseCase) UnbundleService(ctx context.Context, id uuid.UUID, serviceID int64) (*port.CampaignView, error) {
	form, err := u.form(id)
	if err != nil {
		return nil, err
	}
	if err = form.unbundle(serviceID); err != nil {
		return nil, err
	}
	return form.view(u.today()), nil
}

// Submit assembles the payload and hands it to checkout. For an existing
// campaign the record update and the hand-off commit together. A
// successful submission ends the session.
func (u *CampaignUseCase) Submit(ctx context.Context, id uuid.UUID) (*port.SubmitResp, error) {
	form, err := u.form(id)
	if err != nil {
		return nil, err
	}
	form.submitMu.Lock()
	defer form.submitMu.Unlock()

	sub, err := form.prepare(u.today(), u.now())
	if err != nil {
		u.metrics.RecordSubmission(submissionOutcome(err))
		return nil, err
	}

	token := uuid.NewString()
	handedOff := false
	handoff := func(ctx context.Context) error {
		if err := u.checkout.Put(ctx, token, sub); err != nil {
			return err
		}
		handedOff = true
		return nil
	}
	if sub.CampaignID == nil {
		err = handoff(ctx)
	} else {
		var next domain.Status
		if next, err = form.status().Resubmit(); err == nil {
			err = u.campaigns.UpdateCampaign(ctx, domain.RecordFromSubmission(sub, next), handoff)
		}
	}
	if err != nil {
		u.metrics.RecordSubmission(submissionOutcome(err))
		if handedOff {
			// the record update did not commit after the payload was stored
			u.withdraw(ctx, token)
		}
		if errors.Is(err, domain.ErrCampaignLocked) {
			form.lock()
			return nil, err
		}
		return nil, fmt.Errorf("hand off submission: %w", err)
	}

	u.remove(id)
	u.metrics.RecordSubmission("handed_off")
	u.logger.Info("campaign submitted",
		slog.String("session_id", id.String()),
		slog.String("type", string(sub.Type)),
		slog.String("total_price", sub.TotalPrice.String()),
		slog.String("currency", sub.Currency))
	return &port.SubmitResp{CheckoutToken: token, Payload: sub}, nil
}

func (u *CampaignUseCase) withdraw(ctx context.Context, token string) {
	if err := u.checkout.Delete(context.WithoutCancel(ctx), token); err != nil {
		u.logger.Warn("withdraw checkout hand-off failed",
			slog.String("token", token),
			slog.Any("error", err))
	}
}

func submissionOutcome(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return "invalid"
	case errors.Is(err, domain.ErrCampaignLocked):
		return "locked"
	case errors.Is(err, domain.ErrNoBundledServices):
		return "no_services"
	case errors.Is(err, domain.ErrPriceLoading):
		return "price_loading"
	case errors.Is(err, domain.ErrPriceUnavailable):
		return "price_unavailable"
	}
	return "error"
}

func (u *CampaignUseCase) DiscardSession(ctx context.Context, id uuid.UUID) error {
	if _, err := u.form(id); err != nil {
		return err
	}
	u.remove(id)
	return nil
}

func (u *CampaignUseCase) Checkout(ctx context.Context, token string) (*domain.Submission, error) {
	sub, err := u.checkout.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, port.ErrCheckoutNotFound
	}
	return sub, nil
}

func (u *CampaignUseCase) form(id uuid.UUID) (*CampaignForm, error) {
	u.expireIdle()

	u.mu.Lock()
	form, ok := u.sessions[id]
	u.mu.Unlock()
	if !ok {
		return nil, port.ErrSessionNotFound
	}
	form.touch(u.now())
	return form, nil
}

func (u *CampaignUseCase) remove(id uuid.UUID) {
	u.mu.Lock()
	form, ok := u.sessions[id]
	delete(u.sessions, id)
	n := len(u.sessions)
	u.mu.Unlock()
	if ok {
		form.close()
	}
	u.metrics.SetActiveSessions(n)
}

// expireIdle drops sessions idle for longer than the session TTL. It runs
// before every session lookup and on OpenSession.
func (u *CampaignUseCase) expireIdle() {
	if u.settings.SessionTTL <= 0 {
		return
	}
	cutoff := u.now().Add(-u.settings.SessionTTL)
	var expired []uuid.UUID
	u.mu.Lock()
	for id, form := range u.sessions {
		if form.idleSince().Before(cutoff) {
			expired = append(expired, id)
		}
	}
	u.mu.Unlock()
	for _, id := range expired {
		u.remove(id)
	}
}

package usecase

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"repair-ads/internal/core/domain"
	"repair-ads/internal/core/port"
	"repair-ads/internal/core/pricing"
)

// CampaignForm holds one draft between requests together with the
// reference data it was opened with and the estimator pricing it.
type CampaignForm struct {
	id        uuid.UUID
	ref       domain.ReferenceData
	validator *domain.Validator
	schedule  domain.Schedule
	estimator *pricing.Estimator
	// allowZeroPrice lets a draft be submitted after its price quote failed.
	allowZeroPrice bool

	// submitMu serialises submissions of the same session.
	submitMu sync.Mutex

	mu       sync.Mutex
	draft    domain.Draft
	notices  []string
	lastSeen time.Time
	closed   bool
}

func (f *CampaignForm) close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	f.estimator.Stop()
}

func (f *CampaignForm) touch(now time.Time) {
	f.mu.Lock()
	f.lastSeen = now
	f.mu.Unlock()
}

func (f *CampaignForm) idleSince() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastSeen
}

// apply merges patch into the draft. The type is applied before the other
// fields, so a patch switching to profile ignores service fields.
func (f *CampaignForm) apply(patch port.DraftPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.draft.Status.Terminal() {
		return domain.ErrCampaignLocked
	}

	if patch.Type != nil && *patch.Type != f.draft.Type() {
		if !patch.Type.Valid() {
			return &domain.ValidationError{Fields: domain.FieldErrors{"type": "must be service or profile"}}
		}
		if !f.draft.IsNew() {
			return domain.ErrTypeImmutable
		}
		switch *patch.Type {
		case domain.TypeProfile:
			var ref int64
			if f.ref.Profile != nil {
				ref = f.ref.Profile.ID
			}
			f.draft.Details = domain.ProfileDetails{ProfileRef: ref}
		case domain.TypeService:
			f.draft.Details = domain.ServiceDetails{}
		}
	}

	if sd, ok := f.draft.Service(); ok {
		setTrimmed(&sd.Title, patch.Title)
		setTrimmed(&sd.Description, patch.Description)
		setTrimmed(&sd.City, patch.City)
		setTrimmed(&sd.Image, patch.Image)
		f.draft.Details = sd
	}

	if patch.StartDate != nil {
		f.draft.StartDate = *patch.StartDate
	}
	reprice := false
	if patch.TotalDays != nil && *patch.TotalDays != f.draft.TotalDays {
		f.draft.TotalDays = *patch.TotalDays
		reprice = true
	}
	if patch.Currency != nil {
		if c := domain.NormalizeCurrency(*patch.Currency); c != f.draft.Currency {
			f.draft.Currency = c
			reprice = true
		}
	}
	if reprice {
		f.estimator.Update(f.draft.TotalDays, f.draft.Currency)
	}
	return nil
}

func setTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// bundle adds the catalog service with serviceID to the draft.
func (f *CampaignForm) bundle(serviceID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.draft.Status.Terminal() {
		return domain.ErrCampaignLocked
	}
	sd, ok := f.draft.Service()
	if !ok {
		return domain.ErrNotServiceCampaign
	}
	ref, ok := f.ref.Services.Lookup(serviceID)
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrUnknownService, serviceID)
	}
	f.draft.Details = sd.WithService(ref)
	return nil
}

func (f *CampaignForm) unbundle(serviceID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.draft.Status.Terminal() {
		return domain.ErrCampaignLocked
	}
	sd, ok := f.draft.Service()
	if !ok {
		return domain.ErrNotServiceCampaign
	}
	f.draft.Details = sd.WithoutService(serviceID)
	return nil
}

// view renders the draft with its derived values and live validation.
// While a quote is loading no price is shown.
func (f *CampaignForm) view(today domain.Date) *port.CampaignView {
	f.mu.Lock()
	defer f.mu.Unlock()

	d := f.draft
	est := f.estimator.Snapshot()
	v := &port.CampaignView{
		SessionID:       f.id,
		CampaignID:      d.CampaignID,
		OperatorID:      d.OperatorID,
		Type:            d.Type(),
		Status:          d.Status,
		RejectionReason: d.RejectionReason,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate(),
		MinStartDate:    f.schedule.MinStartDate(today),
		TotalDays:       d.TotalDays,
		Currency:        d.Currency,
		QuotedPrice:     est.TotalPrice,
		BundledPrice:    decimal.Zero,
		LoadingPrice:    est.Loading,
		PriceFailed:     est.Failed,
		Errors:          f.validator.Validate(d, f.ref, today),
		Notices:         append([]string(nil), f.notices...),
	}
	switch details := d.Details.(type) {
	case domain.ProfileDetails:
		ref := details.ProfileRef
		v.ProfileRef = &ref
	default:
		sd, _ := d.Service()
		v.Title = sd.Title
		v.Description = sd.Description
		v.City = sd.City
		v.Image = sd.Image
		v.BundledServices = append([]domain.ServiceRef(nil), sd.BundledServices...)
		if bundled, err := domain.BundledTotal(sd.BundledServices, f.ref.Currencies, d.Currency); err == nil {
			v.BundledPrice = bundled
		}
	}
	if est.Loading {
		// the last quote belongs to earlier input
		v.QuotedPrice = decimal.Zero
		v.TotalPrice = decimal.Zero
		return v
	}
	v.TotalPrice = v.QuotedPrice.Add(v.BundledPrice)
	return v
}

// prepare runs the submit checks in order and assembles the payload. It
// has no side effects; the caller hands the payload off.
func (f *CampaignForm) prepare(today domain.Date, now time.Time) (domain.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return domain.Submission{}, port.ErrSessionNotFound
	}
	d := f.draft
	if d.Status.Terminal() {
		return domain.Submission{}, domain.ErrCampaignLocked
	}
	if errs := f.validator.Validate(d, f.ref, today); errs != nil {
		return domain.Submission{}, &domain.ValidationError{Fields: errs}
	}
	sd, isService := d.Service()
	if isService && len(sd.BundledServices) == 0 {
		return domain.Submission{}, domain.ErrNoBundledServices
	}
	est := f.estimator.Snapshot()
	if est.Loading || est.TotalDays != d.TotalDays || est.Currency != d.Currency {
		return domain.Submission{}, domain.ErrPriceLoading
	}
	if est.Failed && !f.allowZeroPrice {
		return domain.Submission{}, domain.ErrPriceUnavailable
	}

	bundled := decimal.Zero
	if isService {
		var err error
		bundled, err = domain.BundledTotal(sd.BundledServices, f.ref.Currencies, d.Currency)
		if err != nil {
			return domain.Submission{}, &domain.ValidationError{Fields: domain.FieldErrors{"bundledServices": err.Error()}}
		}
	}
	return domain.NewSubmission(d, est.TotalPrice, bundled, now), nil
}

// lock marks the draft approved after the backend refused an update
// because the campaign was approved meanwhile.
func (f *CampaignForm) lock() {
	f.mu.Lock()
	f.draft.Status = domain.StatusApproved
	f.mu.Unlock()
}

func (f *CampaignForm) status() domain.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.Status
}

package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"repair-ads/internal/core/domain"
	"repair-ads/internal/core/port"
	"repair-ads/internal/core/port/mocks"
	"repair-ads/internal/core/pricing"
)

const operatorID = int64(7)

var fixedNow = time.Date(2025, time.January, 7, 10, 0, 0, 0, time.UTC)

type fixture struct {
	catalog   *mocks.MockCatalogRepository
	campaigns *mocks.MockCampaignRepository
	quoter    *mocks.MockPriceQuoter
	checkout  *mocks.MockCheckoutStore
	uc        *CampaignUseCase
	now       time.Time
}

func newFixture(t *testing.T, mutate func(*Settings), opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		catalog:   mocks.NewMockCatalogRepository(t),
		campaigns: mocks.NewMockCampaignRepository(t),
		quoter:    mocks.NewMockPriceQuoter(t),
		checkout:  mocks.NewMockCheckoutStore(t),
		now:       fixedNow,
	}
	settings := DefaultSettings()
	settings.DebounceWindow = 0
	if mutate != nil {
		mutate(&settings)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]Option{WithClock(func() time.Time { return f.now })}, opts...)
	f.uc = NewCampaignUseCase(f.catalog, f.campaigns, f.quoter, f.checkout, logger, settings, opts...)
	return f
}

func (f *fixture) expectReference() {
	f.catalog.EXPECT().BasePrices(mock.Anything, mock.Anything).Return([]domain.Currency{
		{Code: "USD", BasePricePerDay: decimal.NewFromInt(10)},
		{Code: "EUR", BasePricePerDay: decimal.NewFromInt(8)},
	}, nil).Once()
	f.catalog.EXPECT().OperatorServices(mock.Anything, operatorID).Return([]domain.ServiceRef{
		{ID: 11, Title: "Screen replacement", Price: decimal.NewFromInt(20), Currency: "USD"},
		{ID: 12, Title: "Battery swap", Price: decimal.NewFromInt(8), Currency: "EUR"},
	}, nil).Once()
	f.catalog.EXPECT().Cities(mock.Anything).Return([]domain.City{{ID: 1, Name: "Lagos"}}, nil).Once()
	f.catalog.EXPECT().OperatorProfile(mock.Anything, operatorID).
		Return(&domain.Profile{ID: 42, OperatorID: operatorID, DisplayName: "Fix-It Ade"}, nil).Once()
}

func ptr[T any](v T) *T { return &v }

func serviceFields() port.DraftPatch {
	start := domain.NewDate(2025, time.January, 10)
	return port.DraftPatch{
		Title:       ptr("Cracked screen? Fixed today"),
		Description: ptr("Genuine parts, 90 day warranty"),
		City:        ptr("Lagos"),
		Image:       ptr("https://cdn.example.com/ad.jpg"),
		StartDate:   &start,
		TotalDays:   ptr(5),
		Currency:    ptr("USD"),
	}
}

func settle(t *testing.T, f *fixture, id uuid.UUID) *port.CampaignView {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	view, err := f.uc.Session(ctx, id, true)
	require.NoError(t, err)
	return view
}

func TestOpenSessionNewDraft(t *testing.T) {
	f := newFixture(t, nil)
	f.expectReference()

	view, err := f.uc.OpenSession(context.Background(), port.OpenSessionReq{OperatorID: operatorID})
	require.NoError(t, err)

	assert.Equal(t, domain.TypeService, view.Type)
	assert.Equal(t, domain.StatusDraft, view.Status)
	assert.Equal(t, "USD", view.Currency)
	assert.Equal(t, domain.NewDate(2025, time.January, 10), view.MinStartDate)
	assert.True(t, view.TotalPrice.IsZero())
	assert.False(t, view.LoadingPrice)
	for _, field := range []string{"title", "description", "city", "image", "startDate", "totalDays"} {
		assert.Contains(t, view.Errors, field)
	}
	assert.Empty(t, view.Notices)
}

// TestServiceCampaignEndToEnd walks a service campaign from an empty draft
// to a handed-off payload.
func TestServiceCampaignEndToEnd(t *testing.T) {
	f := newFixture(t, nil)
	f.expectReference()
	f.quoter.EXPECT().Quote(mock.Anything, 5, "USD").Return(decimal.NewFromInt(50), nil).Once()

	var stored domain.Submission
	f.checkout.EXPECT().Put(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("domain.Submission")).
		Run(func(_ context.Context, _ string, sub domain.Submission) { stored = sub }).
		Return(nil).Once()

	ctx := context.Background()
	view, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID})
	require.NoError(t, err)
	id := view.SessionID

	view, err = f.uc.UpdateSession(ctx, id, serviceFields())
	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2025, time.January, 15), view.EndDate)

	_, err = f.uc.BundleService(ctx, id, 11)
	require.NoError(t, err)
	_, err = f.uc.BundleService(ctx, id, 12)
	require.NoError(t, err)
	view, err = f.uc.UnbundleService(ctx, id, 12)
	require.NoError(t, err)

	view = settle(t, f, id)
	assert.Nil(t, view.Errors)
	assert.True(t, view.QuotedPrice.Equal(decimal.NewFromInt(50)))
	assert.True(t, view.BundledPrice.Equal(decimal.NewFromInt(20)))
	assert.True(t, view.TotalPrice.Equal(decimal.NewFromInt(70)))

	resp, err := f.uc.Submit(ctx, id)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.CheckoutToken)
	assert.Equal(t, domain.NewDate(2025, time.January, 15), resp.Payload.EndDate)
	assert.True(t, resp.Payload.TotalPrice.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, resp.Payload, stored)
	require.NotNil(t, stored.Service)
	assert.Len(t, stored.Service.BundledServices, 1)

	_, err = f.uc.Session(ctx, id, false)
	assert.ErrorIs(t, err, port.ErrSessionNotFound, "submission ends the session")
}

func TestEndDateFollowsStartDateChanges(t *testing.T) {
	f := newFixture(t, nil)
	f.expectReference()
	f.quoter.EXPECT().Quote(mock.Anything, 5, "USD").Return(decimal.NewFromInt(50), nil).Maybe()

	ctx := context.Background()
	view, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID})
	require.NoError(t, err)

	view, err = f.uc.UpdateSession(ctx, view.SessionID, serviceFields())
	require.NoError(t, err)
	require.Equal(t, domain.NewDate(2025, time.January, 15), view.EndDate)

	later := domain.NewDate(2025, time.February, 27)
	view, err = f.uc.UpdateSession(ctx, view.SessionID, port.DraftPatch{StartDate: &later})
	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2025, time.March, 4), view.EndDate)
}

func TestProfileCampaign(t *testing.T) {
	f := newFixture(t, nil)
	f.expectReference()
	f.quoter.EXPECT().Quote(mock.Anything, 5, "EUR").Return(decimal.NewFromInt(40), nil).Once()
	f.checkout.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	ctx := context.Background()
	view, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID})
	require.NoError(t, err)

	start := domain.NewDate(2025, time.January, 10)
	view, err = f.uc.UpdateSession(ctx, view.SessionID, port.DraftPatch{
		Type:      ptr(domain.TypeProfile),
		Title:     ptr("ignored"),
		StartDate: &start,
		TotalDays: ptr(5),
		Currency:  ptr("eur"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TypeProfile, view.Type)
	require.NotNil(t, view.ProfileRef)
	assert.Equal(t, int64(42), *view.ProfileRef)
	assert.Empty(t, view.Title)

	_, err = f.uc.BundleService(ctx, view.SessionID, 11)
	assert.ErrorIs(t, err, domain.ErrNotServiceCampaign)

	settle(t, f, view.SessionID)
	resp, err := f.uc.Submit(ctx, view.SessionID)
	require.NoError(t, err)
	assert.Nil(t, resp.Payload.Service)
	require.NotNil(t, resp.Payload.Profile)
	assert.True(t, resp.Payload.TotalPrice.Equal(decimal.NewFromInt(40)))
}

func TestInvalidTypeIsFieldError(t *testing.T) {
	f := newFixture(t, nil)
	f.expectReference()

	view, err := f.uc.OpenSession(context.Background(), port.OpenSessionReq{OperatorID: operatorID})
	require.NoError(t, err)

	_, err = f.uc.UpdateSession(context.Background(), view.SessionID, port.DraftPatch{Type: ptr(domain.CampaignType("banner"))})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "type")
}

func TestSubmitChecks(t *testing.T) {
	t.Run("validation errors", func(t *testing.T) {
		f := newFixture(t, nil)
		f.expectReference()
		ctx := context.Background()
		view, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID})
		require.NoError(t, err)

		_, err = f.uc.Submit(ctx, view.SessionID)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "title")
	})

	t.Run("service without bundled services", func(t *testing.T) {
		f := newFixture(t, nil)
		f.expectReference()
		f.quoter.EXPECT().Quote(mock.Anything, 5, "USD").Return(decimal.NewFromInt(50), nil).Once()
		ctx := context.Background()
		view, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID})
		require.NoError(t, err)
		_, err = f.uc.UpdateSession(ctx, view.SessionID, serviceFields())
		require.NoError(t, err)
		settle(t, f, view.SessionID)

		_, err = f.uc.Submit(ctx, view.SessionID)
		assert.ErrorIs(t, err, domain.ErrNoBundledServices)
	})

	t.Run("price still loading", func(t *testing.T) {
		f := newFixture(t, func(s *Settings) { s.DebounceWindow = time.Hour })
		f.expectReference()
		ctx := context.Background()
		view, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID})
		require.NoError(t, err)
		view, err = f.uc.UpdateSession(ctx, view.SessionID, serviceFields())
		require.NoError(t, err)
		require.True(t, view.LoadingPrice)
		_, err = f.uc.BundleService(ctx, view.SessionID, 11)
		require.NoError(t, err)

		_, err = f.uc.Submit(ctx, view.SessionID)
		assert.ErrorIs(t, err, domain.ErrPriceLoading)
		require.NoError(t, f.uc.DiscardSession(ctx, view.SessionID))
	})

	t.Run("price unavailable", func(t *testing.T) {
		f := newFixture(t, nil)
		f.expectReference()
		f.quoter.EXPECT().Quote(mock.Anything, 5, "USD").Return(decimal.Zero, errors.New("pricing down")).Once()
		ctx := context.Background()
		view, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID})
		require.NoError(t, err)
		_, err = f.uc.UpdateSession(ctx, view.SessionID, serviceFields())
		require.NoError(t, err)
		_, err = f.uc.BundleService(ctx, view.SessionID, 11)
		require.NoError(t, err)

		view = settle(t, f, view.SessionID)
		assert.True(t, view.PriceFailed)
		assert.True(t, view.QuotedPrice.IsZero())
		assert.Nil(t, view.Errors, "price failure is not a field error")

		_, err = f.uc.Submit(ctx, view.SessionID)
		assert.ErrorIs(t, err, domain.ErrPriceUnavailable)
	})

	t.Run("zero price allowed", func(t *testing.T) {
		f := newFixture(t, func(s *Settings) { s.AllowZeroPrice = true })
		f.expectReference()
		f.quoter.EXPECT().Quote(mock.Anything, 5, "USD").Return(decimal.Zero, errors.New("pricing down")).Once()
		f.checkout.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		ctx := context.Background()
		view, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID})
		require.NoError(t, err)
		_, err = f.uc.UpdateSession(ctx, view.SessionID, serviceFields())
		require.NoError(t, err)
		_, err = f.uc.BundleService(ctx, view.SessionID, 11)
		require.NoError(t, err)
		settle(t, f, view.SessionID)

		resp, err := f.uc.Submit(ctx, view.SessionID)
		require.NoError(t, err)
		assert.True(t, resp.Payload.TotalPrice.Equal(decimal.NewFromInt(20)))
	})

	t.Run("hand-off failure keeps the session", func(t *testing.T) {
		f := newFixture(t, nil)
		f.expectReference()
		f.quoter.EXPECT().Quote(mock.Anything, 5, "USD").Return(decimal.NewFromInt(50), nil).Once()
		f.checkout.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
		ctx := context.Background()
		view, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID})
		require.NoError(t, err)
		_, err = f.uc.UpdateSession(ctx, view.SessionID, serviceFields())
		require.NoError(t, err)
		_, err = f.uc.BundleService(ctx, view.SessionID, 11)
		require.NoError(t, err)
		settle(t, f, view.SessionID)

		_, err = f.uc.Submit(ctx, view.SessionID)
		require.Error(t, err)
		_, err = f.uc.Session(ctx, view.SessionID, false)
		assert.NoError(t, err)
	})
}

// TestApprovedDraftNeverAssembles checks the terminal lock on the form
// itself, whatever the other fields hold.
func TestApprovedDraftNeverAssembles(t *testing.T) {
	quoter := mocks.NewMockPriceQuoter(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	schedule := domain.NewSchedule(domain.DefaultMinLeadDays)
	today := domain.DateOf(fixedNow)

	drafts := []domain.Draft{
		{Details: domain.ServiceDetails{}, Status: domain.StatusApproved},
		{Details: domain.ProfileDetails{ProfileRef: 42}, Status: domain.StatusApproved, TotalDays: 5, Currency: "USD",
			StartDate: today.AddDays(10)},
		{Details: domain.ServiceDetails{Title: "t", Description: "d", City: "Lagos", Image: "i",
			BundledServices: []domain.ServiceRef{{ID: 1}}}, Status: domain.StatusApproved, TotalDays: 400},
	}
	for _, d := range drafts {
		form := &CampaignForm{
			validator: domain.NewValidator(schedule),
			schedule:  schedule,
			estimator: pricing.NewEstimator(quoter, logger),
			draft:     d,
		}
		_, err := form.prepare(today, fixedNow)
		assert.ErrorIs(t, err, domain.ErrCampaignLocked)
		assert.ErrorIs(t, form.apply(port.DraftPatch{TotalDays: ptr(3)}), domain.ErrCampaignLocked)
		assert.ErrorIs(t, form.bundle(1), domain.ErrCampaignLocked)
		assert.ErrorIs(t, form.unbundle(1), domain.ErrCampaignLocked)
	}
}

func TestEditSession(t *testing.T) {
	rejected := func() *domain.CampaignRecord {
		return &domain.CampaignRecord{
			ID:              99,
			OperatorID:      operatorID,
			Type:            domain.TypeService,
			Title:           "Old title",
			Description:     "desc",
			City:            "Lagos",
			Image:           "img",
			BundledServices: []domain.ServiceRef{{ID: 11, Title: "Screen replacement", Price: decimal.NewFromInt(20), Currency: "USD"}},
			StartDate:       domain.NewDate(2025, time.January, 20),
			TotalDays:       10,
			Currency:        "EUR",
			Status:          domain.StatusRejected,
			RejectionReason: "image is blurry",
		}
	}

	t.Run("record loads before reference data", func(t *testing.T) {
		f := newFixture(t, nil)
		recordLoaded := false
		f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(99)).
			Run(func(context.Context, int64) { recordLoaded = true }).
			Return(rejected(), nil).Once()
		f.catalog.EXPECT().BasePrices(mock.Anything, mock.Anything).
			Run(func(context.Context, *string) { assert.True(t, recordLoaded) }).
			Return([]domain.Currency{
				{Code: "USD", BasePricePerDay: decimal.NewFromInt(10)},
				{Code: "EUR", BasePricePerDay: decimal.NewFromInt(8)},
			}, nil).Once()
		f.catalog.EXPECT().OperatorServices(mock.Anything, operatorID).Return(nil, nil).Once()
		f.catalog.EXPECT().Cities(mock.Anything).Return([]domain.City{{ID: 1, Name: "Lagos"}}, nil).Once()
		f.catalog.EXPECT().OperatorProfile(mock.Anything, operatorID).Return(nil, nil).Once()
		f.quoter.EXPECT().Quote(mock.Anything, 10, "EUR").Return(decimal.NewFromInt(80), nil).Once()

		view, err := f.uc.OpenSession(context.Background(), port.OpenSessionReq{OperatorID: operatorID, CampaignID: ptr(int64(99))})
		require.NoError(t, err)
		assert.Equal(t, "EUR", view.Currency)
		assert.Equal(t, "Old title", view.Title)
		assert.Equal(t, "image is blurry", view.RejectionReason)
		assert.Equal(t, domain.NewDate(2025, time.January, 30), view.EndDate)

		view = settle(t, f, view.SessionID)
		assert.True(t, view.QuotedPrice.Equal(decimal.NewFromInt(80)))
		assert.True(t, view.BundledPrice.Equal(decimal.NewFromInt(16)), view.BundledPrice.String())
	})

	t.Run("resubmission updates the record with the hand-off", func(t *testing.T) {
		f := newFixture(t, nil)
		f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(99)).Return(rejected(), nil).Once()
		f.expectReference()
		f.quoter.EXPECT().Quote(mock.Anything, 10, "EUR").Return(decimal.NewFromInt(80), nil).Once()

		var saved domain.CampaignRecord
		f.campaigns.EXPECT().UpdateCampaign(mock.Anything, mock.AnythingOfType("domain.CampaignRecord"), mock.Anything).
			RunAndReturn(func(ctx context.Context, rec domain.CampaignRecord, handoff func(context.Context) error) error {
				saved = rec
				return handoff(ctx)
			}).Once()
		f.checkout.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		ctx := context.Background()
		view, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID, CampaignID: ptr(int64(99))})
		require.NoError(t, err)
		_, err = f.uc.UpdateSession(ctx, view.SessionID, port.DraftPatch{Title: ptr("New title")})
		require.NoError(t, err)

		_, err = f.uc.UpdateSession(ctx, view.SessionID, port.DraftPatch{Type: ptr(domain.TypeProfile)})
		assert.ErrorIs(t, err, domain.ErrTypeImmutable)

		settle(t, f, view.SessionID)
		resp, err := f.uc.Submit(ctx, view.SessionID)
		require.NoError(t, err)
		require.NotNil(t, resp.Payload.CampaignID)
		assert.Equal(t, int64(99), saved.ID)
		assert.Equal(t, domain.StatusPending, saved.Status)
		assert.Equal(t, "New title", saved.Title)
		assert.Equal(t, domain.NewDate(2025, time.January, 30), saved.EndDate)
	})

	t.Run("approved campaign is locked before the form opens", func(t *testing.T) {
		f := newFixture(t, nil)
		rec := rejected()
		rec.Status = domain.StatusApproved
		f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(99)).Return(rec, nil).Once()

		_, err := f.uc.OpenSession(context.Background(), port.OpenSessionReq{OperatorID: operatorID, CampaignID: ptr(int64(99))})
		assert.ErrorIs(t, err, domain.ErrCampaignLocked)
	})

	t.Run("approved meanwhile is rejected at submit", func(t *testing.T) {
		f := newFixture(t, nil)
		f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(99)).Return(rejected(), nil).Once()
		f.expectReference()
		f.quoter.EXPECT().Quote(mock.Anything, 10, "EUR").Return(decimal.NewFromInt(80), nil).Once()
		f.campaigns.EXPECT().UpdateCampaign(mock.Anything, mock.Anything, mock.Anything).
			Return(domain.ErrCampaignLocked).Once()

		ctx := context.Background()
		view, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID, CampaignID: ptr(int64(99))})
		require.NoError(t, err)
		settle(t, f, view.SessionID)

		_, err = f.uc.Submit(ctx, view.SessionID)
		assert.ErrorIs(t, err, domain.ErrCampaignLocked)

		_, err = f.uc.UpdateSession(ctx, view.SessionID, port.DraftPatch{Title: ptr("changed after approval")})
		assert.ErrorIs(t, err, domain.ErrCampaignLocked)
		_, err = f.uc.BundleService(ctx, view.SessionID, 11)
		assert.ErrorIs(t, err, domain.ErrCampaignLocked)
		_, err = f.uc.UnbundleService(ctx, view.SessionID, 11)
		assert.ErrorIs(t, err, domain.ErrCampaignLocked)

		view, err = f.uc.Session(ctx, view.SessionID, false)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, view.Status)
		assert.Equal(t, "Old title", view.Title)
	})

	t.Run("failed commit withdraws the hand-off", func(t *testing.T) {
		f := newFixture(t, nil)
		f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(99)).Return(rejected(), nil).Once()
		f.expectReference()
		f.quoter.EXPECT().Quote(mock.Anything, 10, "EUR").Return(decimal.NewFromInt(80), nil).Once()

		var stored string
		f.checkout.EXPECT().Put(mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Run(func(_ context.Context, token string, _ domain.Submission) { stored = token }).
			Return(nil).Once()
		f.campaigns.EXPECT().UpdateCampaign(mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ domain.CampaignRecord, handoff func(context.Context) error) error {
				require.NoError(t, handoff(ctx))
				return errors.New("commit failed")
			}).Once()
		var withdrawn string
		f.checkout.EXPECT().Delete(mock.Anything, mock.AnythingOfType("string")).
			Run(func(_ context.Context, token string) { withdrawn = token }).
			Return(nil).Once()

		ctx := context.Background()
		view, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID, CampaignID: ptr(int64(99))})
		require.NoError(t, err)
		settle(t, f, view.SessionID)

		_, err = f.uc.Submit(ctx, view.SessionID)
		require.Error(t, err)
		assert.NotEmpty(t, stored)
		assert.Equal(t, stored, withdrawn)

		_, err = f.uc.Session(ctx, view.SessionID, false)
		assert.NoError(t, err, "session stays open for a retry")
	})

	t.Run("other operator's campaign is not found", func(t *testing.T) {
		f := newFixture(t, nil)
		f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(99)).Return(rejected(), nil).Once()

		_, err := f.uc.OpenSession(context.Background(), port.OpenSessionReq{OperatorID: 8, CampaignID: ptr(int64(99))})
		assert.ErrorIs(t, err, port.ErrCampaignNotFound)
	})
}

func TestReferenceLoadFailureIsNotice(t *testing.T) {
	f := newFixture(t, nil)
	f.catalog.EXPECT().BasePrices(mock.Anything, mock.Anything).
		Return([]domain.Currency{{Code: "USD", BasePricePerDay: decimal.NewFromInt(10)}}, nil).Once()
	f.catalog.EXPECT().OperatorServices(mock.Anything, operatorID).Return(nil, nil).Once()
	f.catalog.EXPECT().Cities(mock.Anything).Return(nil, errors.New("timeout")).Once()
	f.catalog.EXPECT().OperatorProfile(mock.Anything, operatorID).Return(nil, nil).Once()

	ctx := context.Background()
	view, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID})
	require.NoError(t, err)
	require.Len(t, view.Notices, 1)
	assert.Contains(t, view.Notices[0], "cities")

	view, err = f.uc.UpdateSession(ctx, view.SessionID, port.DraftPatch{City: ptr("Lagos")})
	require.NoError(t, err)
	assert.Equal(t, "is not a known city", view.Errors["city"])
}

func TestDefaultCurrencyFallsBackToCatalog(t *testing.T) {
	f := newFixture(t, func(s *Settings) { s.DefaultCurrency = "GBP" })
	f.expectReference()

	view, err := f.uc.OpenSession(context.Background(), port.OpenSessionReq{OperatorID: operatorID})
	require.NoError(t, err)
	assert.Equal(t, "USD", view.Currency)
}

func TestSessionLifecycle(t *testing.T) {
	f := newFixture(t, func(s *Settings) { s.SessionTTL = time.Minute })
	f.expectReference()
	f.expectReference()
	ctx := context.Background()

	first, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID})
	require.NoError(t, err)

	f.now = f.now.Add(2 * time.Minute)
	second, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID})
	require.NoError(t, err)

	_, err = f.uc.Session(ctx, first.SessionID, false)
	assert.ErrorIs(t, err, port.ErrSessionNotFound, "idle session expired")

	require.NoError(t, f.uc.DiscardSession(ctx, second.SessionID))
	assert.ErrorIs(t, f.uc.DiscardSession(ctx, second.SessionID), port.ErrSessionNotFound)
}

func TestIdleSessionExpiresOnLookup(t *testing.T) {
	f := newFixture(t, func(s *Settings) { s.SessionTTL = time.Minute })
	f.expectReference()
	ctx := context.Background()

	view, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID})
	require.NoError(t, err)

	f.now = f.now.Add(30 * time.Second)
	_, err = f.uc.Session(ctx, view.SessionID, false)
	require.NoError(t, err)

	f.now = f.now.Add(2 * time.Minute)
	_, err = f.uc.Session(ctx, view.SessionID, false)
	assert.ErrorIs(t, err, port.ErrSessionNotFound)
}

// manualTimers holds debounced calls until the test fires them.
type manualTimers struct {
	mu      sync.Mutex
	pending []func()
}

type heldTimer struct{}

func (heldTimer) Stop() bool { return true }

func (m *manualTimers) after(_ time.Duration, f func()) pricing.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, f)
	return heldTimer{}
}

// fireLatest runs the most recently scheduled call.
func (m *manualTimers) fireLatest(t *testing.T) {
	t.Helper()
	m.mu.Lock()
	require.NotEmpty(t, m.pending)
	f := m.pending[len(m.pending)-1]
	m.pending = nil
	m.mu.Unlock()
	f()
}

func TestLoadingQuoteHidesPreviousPrice(t *testing.T) {
	timers := &manualTimers{}
	f := newFixture(t, nil, WithEstimatorOptions(pricing.WithAfterFunc(timers.after)))
	f.expectReference()
	f.quoter.EXPECT().Quote(mock.Anything, 5, "USD").Return(decimal.NewFromInt(50), nil).Once()
	f.quoter.EXPECT().Quote(mock.Anything, 6, "USD").Return(decimal.NewFromInt(60), nil).Once()

	ctx := context.Background()
	view, err := f.uc.OpenSession(ctx, port.OpenSessionReq{OperatorID: operatorID})
	require.NoError(t, err)
	id := view.SessionID

	_, err = f.uc.UpdateSession(ctx, id, serviceFields())
	require.NoError(t, err)
	_, err = f.uc.BundleService(ctx, id, 11)
	require.NoError(t, err)
	timers.fireLatest(t)

	view, err = f.uc.Session(ctx, id, false)
	require.NoError(t, err)
	assert.True(t, view.TotalPrice.Equal(decimal.NewFromInt(70)))

	view, err = f.uc.UpdateSession(ctx, id, port.DraftPatch{TotalDays: ptr(6)})
	require.NoError(t, err)
	assert.True(t, view.LoadingPrice)
	assert.Equal(t, 6, view.TotalDays)
	assert.True(t, view.QuotedPrice.IsZero(), view.QuotedPrice.String())
	assert.True(t, view.TotalPrice.IsZero(), view.TotalPrice.String())
	assert.True(t, view.BundledPrice.Equal(decimal.NewFromInt(20)))

	timers.fireLatest(t)
	view, err = f.uc.Session(ctx, id, false)
	require.NoError(t, err)
	assert.False(t, view.LoadingPrice)
	assert.True(t, view.QuotedPrice.Equal(decimal.NewFromInt(60)))
	assert.True(t, view.TotalPrice.Equal(decimal.NewFromInt(80)))
}

func TestCheckout(t *testing.T) {
	f := newFixture(t, nil)
	sub := &domain.Submission{OperatorID: operatorID, Currency: "USD"}
	f.checkout.EXPECT().Get(mock.Anything, "tok").Return(sub, nil).Once()
	f.checkout.EXPECT().Get(mock.Anything, "gone").Return(nil, nil).Once()

	got, err := f.uc.Checkout(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, sub, got)

	_, err = f.uc.Checkout(context.Background(), "gone")
	assert.ErrorIs(t, err, port.ErrCheckoutNotFound)
}

package port

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"repair-ads/internal/core/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// CampaignUseCase defines the operations behind the campaign creation and
// editing forms. A session holds one draft between requests; it is
// created by OpenSession and ends with Submit or DiscardSession.
type CampaignUseCase interface {
	Currencies(ctx context.Context) ([]domain.Currency, error)
	Cities(ctx context.Context) ([]domain.City, error)
	OperatorServices(ctx context.Context, operatorID int64) ([]domain.ServiceRef, error)

	// OpenSession starts a form session. With a CampaignID it loads the
	// record first and then the reference data; an approved campaign
	// yields domain.ErrCampaignLocked and no session.
	OpenSession(ctx context.Context, req OpenSessionReq) (*CampaignView, error)
	// Session returns the current view. With settle it first waits for an
	// outstanding price quote.
	Session(ctx context.Context, id uuid.UUID, settle bool) (*CampaignView, error)
	// UpdateSession applies a partial change to the draft.
	UpdateSession(ctx context.Context, id uuid.UUID, patch DraftPatch) (*CampaignView, error)
	BundleService(ctx context.Context, id uuid.UUID, serviceID int64) (*CampaignView, error)
	UnbundleService(ctx context.Context, id uuid.UUID, serviceID int64) (*CampaignView, error)
	// Submit runs every submit check and hands the payload to checkout.
	Submit(ctx context.Context, id uuid.UUID) (*SubmitResp, error)
	DiscardSession(ctx context.Context, id uuid.UUID) error

	// Checkout returns a handed-off payload for the payment step.
	Checkout(ctx context.Context, token string) (*domain.Submission, error)
}

type OpenSessionReq struct {
	OperatorID int64  `json:"operatorId"`
	CampaignID *int64 `json:"campaignId,omitempty"`
}

// DraftPatch carries the fields a form change touches. Nil fields are left
// as they are. Service-only fields are ignored on profile drafts.
type DraftPatch struct {
	Type        *domain.CampaignType `json:"type,omitempty"`
	Title       *string              `json:"title,omitempty"`
	Description *string              `json:"description,omitempty"`
	City        *string              `json:"city,omitempty"`
	Image       *string              `json:"image,omitempty"`
	StartDate   *domain.Date         `json:"startDate,omitempty"`
	TotalDays   *int                 `json:"totalDays,omitempty"`
	Currency    *string              `json:"currency,omitempty"`
}

// CampaignView is what the form renders: the draft, its derived dates and
// price, and live validation feedback.
type CampaignView struct {
	SessionID       uuid.UUID           `json:"sessionId"`
	CampaignID      *int64              `json:"campaignId,omitempty"`
	OperatorID      int64               `json:"operatorId"`
	Type            domain.CampaignType `json:"type"`
	Status          domain.Status       `json:"status"`
	RejectionReason string              `json:"rejectionReason,omitempty"`

	Title           string              `json:"title,omitempty"`
	Description     string              `json:"description,omitempty"`
	City            string              `json:"city,omitempty"`
	Image           string              `json:"image,omitempty"`
	BundledServices []domain.ServiceRef `json:"bundledServices,omitempty"`
	ProfileRef      *int64              `json:"profileRef,omitempty"`

	StartDate    domain.Date `json:"startDate"`
	EndDate      domain.Date `json:"endDate"`
	MinStartDate domain.Date `json:"minStartDate"`
	TotalDays    int         `json:"totalDays"`
	Currency     string      `json:"currency"`

	QuotedPrice  decimal.Decimal `json:"quotedPrice"`
	BundledPrice decimal.Decimal `json:"bundledPrice"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	LoadingPrice bool            `json:"loadingPrice"`
	PriceFailed  bool            `json:"priceFailed"`

	Errors  domain.FieldErrors `json:"errors,omitempty"`
	Notices []string           `json:"notices,omitempty"`
}

type SubmitResp struct {
	CheckoutToken string            `json:"checkoutToken"`
	Payload       domain.Submission `json:"payload"`
}

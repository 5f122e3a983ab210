package domain

import "errors"

var (
	// ErrCampaignLocked is returned for any mutation or submission of an
	// approved campaign.
	ErrCampaignLocked = errors.New("campaign is approved and can no longer be edited")
	// ErrTypeImmutable is returned when an existing campaign's type is changed.
	ErrTypeImmutable = errors.New("campaign type cannot change once created")
	// ErrNoBundledServices is returned when a service campaign is submitted
	// without any bundled service.
	ErrNoBundledServices = errors.New("service campaign needs at least one bundled service")
	// ErrPriceLoading is returned when a submission is attempted while a
	// price quote is still outstanding.
	ErrPriceLoading = errors.New("price is still being calculated")
	// ErrPriceUnavailable is returned when the last price quote failed and
	// zero-price submissions are not allowed.
	ErrPriceUnavailable = errors.New("price is unavailable")
	// ErrNotServiceCampaign is returned when bundling services on a profile
	// campaign.
	ErrNotServiceCampaign = errors.New("only service campaigns carry bundled services")
	ErrUnknownCurrency    = errors.New("unknown currency")
	ErrUnknownService     = errors.New("unknown service")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

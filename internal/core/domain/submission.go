package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Submission is the immutable payload handed to the checkout step once a
// draft passes every submit check.
type Submission struct {
	CampaignID   *int64             `json:"campaignId,omitempty"`
	OperatorID   int64              `json:"operatorId"`
	Type         CampaignType       `json:"type"`
	StartDate    Date               `json:"startDate"`
	EndDate      Date               `json:"endDate"`
	TotalDays    int                `json:"totalDays"`
	Currency     string             `json:"currency"`
	QuotedPrice  decimal.Decimal    `json:"quotedPrice"`
	BundledPrice decimal.Decimal    `json:"bundledPrice"`
	TotalPrice   decimal.Decimal    `json:"totalPrice"`
	Service      *ServiceSubmission `json:"service,omitempty"`
	Profile      *ProfileSubmission `json:"profile,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
}

type ServiceSubmission struct {
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	City            string       `json:"city"`
	Image           string       `json:"image"`
	BundledServices []ServiceRef `json:"bundledServices"`
}

type ProfileSubmission struct {
	ProfileRef int64 `json:"profileRef"`
}

// NewSubmission copies d into a payload. The end date is recomputed from
// the start date and duration, and totalPrice = quoted + bundled.
func NewSubmission(d Draft, quoted, bundled decimal.Decimal, now time.Time) Submission {
	s := Submission{
		OperatorID:   d.OperatorID,
		Type:         d.Type(),
		StartDate:    d.StartDate,
		EndDate:      EndDate(d.StartDate, d.TotalDays),
		TotalDays:    d.TotalDays,
		Currency:     d.Currency,
		QuotedPrice:  quoted,
		BundledPrice: bundled,
		TotalPrice:   quoted.Add(bundled),
		CreatedAt:    now.UTC(),
	}
	if d.CampaignID != nil {
		id := *d.CampaignID
		s.CampaignID = &id
	}
	switch v := d.Details.(type) {
	case ProfileDetails:
		s.Profile = &ProfileSubmission{ProfileRef: v.ProfileRef}
	case ServiceDetails:
		s.Service = &ServiceSubmission{
			Title:           v.Title,
			Description:     v.Description,
			City:            v.City,
			Image:           v.Image,
			BundledServices: slices.Clone(v.BundledServices),
		}
	}
	return s
}

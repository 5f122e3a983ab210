package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// CampaignType selects what a campaign promotes.
type CampaignType string

const (
	TypeService CampaignType = "service"
	TypeProfile CampaignType = "profile"
)

func (t CampaignType) Valid() bool {
	return t == TypeService || t == TypeProfile
}

// Status is the moderation state of a campaign record, owned by the backend.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
	StatusApproved Status = "approved"
)

var transitions = map[Status][]Status{
	StatusDraft:    {StatusPending},
	StatusPending:  {StatusApproved, StatusRejected},
	StatusRejected: {StatusPending},
}

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusRejected, StatusApproved:
		return true
	}
	return false
}

// Terminal reports whether no further edits are permitted.
func (s Status) Terminal() bool { return s == StatusApproved }

// CanTransition reports whether moderation may move a campaign from s to next.
func (s Status) CanTransition(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// Resubmit returns the status a campaign takes when its owner submits it
// again. Pending campaigns stay pending.
func (s Status) Resubmit() (Status, error) {
	switch {
	case s.Terminal():
		return s, ErrCampaignLocked
	case s == StatusPending, s.CanTransition(StatusPending):
		return StatusPending, nil
	}
	return s, ErrInvalidTransition
}

// Details holds the fields that only exist for one campaign type. It is
// implemented by ServiceDetails and ProfileDetails only.
type Details interface {
	Type() CampaignType
	sealed()
}

// ServiceDetails are the fields of a service campaign.
type ServiceDetails struct {
	Title           string
	Description     string
	City            string
	Image           string
	BundledServices []ServiceRef
}

func (ServiceDetails) Type() CampaignType { return TypeService }
func (ServiceDetails) sealed()            {}

// WithService returns a copy with ref appended. Selecting an already
// bundled service refreshes its snapshot in place.
func (d ServiceDetails) WithService(ref ServiceRef) ServiceDetails {
	out := d
	out.BundledServices = slices.Clone(d.BundledServices)
	if i := slices.IndexFunc(out.BundledServices, func(s ServiceRef) bool { return s.ID == ref.ID }); i >= 0 {
		out.BundledServices[i] = ref
		return out
	}
	out.BundledServices = append(out.BundledServices, ref)
	return out
}

// WithoutService returns a copy with the service removed, keeping order.
func (d ServiceDetails) WithoutService(id int64) ServiceDetails {
	out := d
	out.BundledServices = slices.DeleteFunc(slices.Clone(d.BundledServices), func(s ServiceRef) bool { return s.ID == id })
	return out
}

// ProfileDetails are the fields of a profile campaign.
type ProfileDetails struct {
	ProfileRef int64
}

func (ProfileDetails) Type() CampaignType { return TypeProfile }
func (ProfileDetails) sealed()            {}

// Draft is the mutable state of a campaign being created or edited.
type Draft struct {
	// CampaignID is set when the draft was loaded from an existing record.
	CampaignID      *int64
	OperatorID      int64
	Details         Details
	StartDate       Date
	TotalDays       int
	Currency        string
	Status          Status
	RejectionReason string
}

// NewDraft returns an empty service draft priced in currency.
func NewDraft(operatorID int64, currency string) Draft {
	return Draft{
		OperatorID: operatorID,
		Details:    ServiceDetails{},
		Currency:   NormalizeCurrency(currency),
		Status:     StatusDraft,
	}
}

func (d Draft) Type() CampaignType {
	if d.Details == nil {
		return TypeService
	}
	return d.Details.Type()
}

// Service returns the service fields when the draft is a service campaign.
func (d Draft) Service() (ServiceDetails, bool) {
	s, ok := d.Details.(ServiceDetails)
	if !ok && d.Details == nil {
		return ServiceDetails{}, true
	}
	return s, ok
}

// Profile returns the profile fields when the draft is a profile campaign.
func (d Draft) Profile() (ProfileDetails, bool) {
	p, ok := d.Details.(ProfileDetails)
	return p, ok
}

// EndDate derives the end date. It is zero until both the start date and
// a positive duration are set.
func (d Draft) EndDate() Date {
	if d.StartDate.IsZero() || d.TotalDays < MinTotalDays {
		return Date{}
	}
	return EndDate(d.StartDate, d.TotalDays)
}

// IsNew reports whether the draft has no backing campaign record yet.
func (d Draft) IsNew() bool { return d.CampaignID == nil }

// CampaignRecord is a campaign as stored by the backend.
type CampaignRecord struct {
	ID              int64
	OperatorID      int64
	Type            CampaignType
	Title           string
	Description     string
	City            string
	Image           string
	ProfileRef      *int64
	BundledServices []ServiceRef
	StartDate       Date
	EndDate         Date
	TotalDays       int
	Currency        string
	TotalPrice      decimal.Decimal
	Status          Status
	RejectionReason string
	UpdatedAt       time.Time
}

// Draft converts the record into an editable draft. Record fields always
// win over local defaults.
func (r CampaignRecord) Draft() Draft {
	id := r.ID
	d := Draft{
		CampaignID:      &id,
		OperatorID:      r.OperatorID,
		StartDate:       r.StartDate,
		TotalDays:       r.TotalDays,
		Currency:        NormalizeCurrency(r.Currency),
		Status:          r.Status,
		RejectionReason: r.RejectionReason,
	}
	if r.Type == TypeProfile {
		var ref int64
		if r.ProfileRef != nil {
			ref = *r.ProfileRef
		}
		d.Details = ProfileDetails{ProfileRef: ref}
	} else {
		d.Details = ServiceDetails{
			Title:           r.Title,
			Description:     r.Description,
			City:            r.City,
			Image:           r.Image,
			BundledServices: slices.Clone(r.BundledServices),
		}
	}
	if !d.Status.Valid() {
		d.Status = StatusDraft
	}
	return d
}

// RecordFromSubmission builds the record written when an existing campaign
// is resubmitted.
func RecordFromSubmission(s Submission, status Status) CampaignRecord {
	r := CampaignRecord{
		OperatorID: s.OperatorID,
		Type:       s.Type,
		StartDate:  s.StartDate,
		EndDate:    s.EndDate,
		TotalDays:  s.TotalDays,
		Currency:   s.Currency,
		TotalPrice: s.TotalPrice,
		Status:     status,
		UpdatedAt:  s.CreatedAt,
	}
	if s.CampaignID != nil {
		r.ID = *s.CampaignID
	}
	if s.Service != nil {
		r.Title = s.Service.Title
		r.Description = s.Service.Description
		r.City = s.Service.City
		r.Image = s.Service.Image
		r.BundledServices = slices.Clone(s.Service.BundledServices)
	}
	if s.Profile != nil {
		ref := s.Profile.ProfileRef
		r.ProfileRef = &ref
	}
	return r
}

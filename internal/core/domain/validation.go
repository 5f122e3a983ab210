package domain

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a draft field name to a human readable message.
type FieldErrors map[string]string

// ValidationError is returned when a submitted draft fails validation.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(slices.Sorted(maps.Keys(e.Fields)), ", ")
}

type serviceFields struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=5000"`
	City        string `json:"city" validate:"required,max=255"`
	Image       string `json:"image" validate:"required,max=2048"`
}

type scheduleFields struct {
	TotalDays int    `json:"totalDays" validate:"min=1,max=365"`
	Currency  string `json:"currency" validate:"required,len=3"`
}

// Validator is the draft validation schema. It is pure: the result depends
// only on the draft, the loaded reference data and today's date.
type Validator struct {
	schedule Schedule
	validate *validator.Validate
}

func NewValidator(schedule Schedule) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return &Validator{schedule: schedule, validate: v}
}

// Validate returns the field errors of d, or nil when it is valid.
func (v *Validator) Validate(d Draft, ref ReferenceData, today Date) FieldErrors {
	errs := FieldErrors{}

	switch details := d.Details.(type) {
	case ProfileDetails:
		if ref.Profile == nil || details.ProfileRef == 0 || details.ProfileRef != ref.Profile.ID {
			errs["profileRef"] = "must reference the operator's profile"
		}
	default:
		sd, _ := d.Service()
		v.collect(errs, serviceFields{
			Title:       strings.TrimSpace(sd.Title),
			Description: strings.TrimSpace(sd.Description),
			City:        strings.TrimSpace(sd.City),
			Image:       strings.TrimSpace(sd.Image),
		})
		if _, bad := errs["city"]; !bad && !ref.Cities.Contains(sd.City) {
			errs["city"] = "is not a known city"
		}
	}

	v.collect(errs, scheduleFields{TotalDays: d.TotalDays, Currency: d.Currency})
	if _, bad := errs["currency"]; !bad {
		if _, ok := ref.Currencies.Lookup(d.Currency); !ok {
			errs["currency"] = "is not a supported currency"
		} else if sd, ok := d.Service(); ok {
			if _, err := BundledTotal(sd.BundledServices, ref.Currencies, d.Currency); err != nil {
				errs["bundledServices"] = err.Error()
			}
		}
	}

	switch {
	case d.StartDate.IsZero():
		errs["startDate"] = "is required"
	case !v.schedule.StartAllowed(d.StartDate, today):
		errs["startDate"] = fmt.Sprintf("must be on or after %s", v.schedule.MinStartDate(today))
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (v *Validator) collect(errs FieldErrors, s any) {
	err := v.validate.Struct(s)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return
	}
	for _, fe := range verrs {
		errs[fe.Field()] = message(fe)
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must be %s characters long", fe.Param())
	case "min", "max":
		if fe.Field() == "totalDays" {
			return fmt.Sprintf("must be a whole number between %d and %d", MinTotalDays, MaxTotalDays)
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
	}
	return "is invalid"
}

package domain

const (
	// DefaultMinLeadDays is the number of days between today and the
	// earliest start date a campaign may be scheduled for.
	DefaultMinLeadDays = 3
	// MinTotalDays and MaxTotalDays bound a campaign's duration.
	MinTotalDays = 1
	MaxTotalDays = 365
)

// Schedule computes campaign dates. It holds the single lead-time value
// shared by the start date picker and the validation rules.
type Schedule struct {
	MinLeadDays int
}

// NewSchedule returns a Schedule with the given lead time. Negative values
// fall back to DefaultMinLeadDays.
func NewSchedule(minLeadDays int) Schedule {
	if minLeadDays < 0 {
		minLeadDays = DefaultMinLeadDays
	}
	return Schedule{MinLeadDays: minLeadDays}
}

// EndDate returns start + totalDays calendar days. Callers validate
// totalDays >= 1 before calling.
func EndDate(start Date, totalDays int) Date {
	return start.AddDays(totalDays)
}

// EndDate is the method form of the package-level EndDate.
func (s Schedule) EndDate(start Date, totalDays int) Date {
	return EndDate(start, totalDays)
}

// MinStartDate returns the earliest start date allowed when the current
// date is today.
func (s Schedule) MinStartDate(today Date) Date {
	return today.AddDays(s.MinLeadDays)
}

// StartAllowed reports whether start honours the minimum lead time. The
// boundary value MinStartDate(today) itself is allowed.
func (s Schedule) StartAllowed(start, today Date) bool {
	return !start.Before(s.MinStartDate(today))
}

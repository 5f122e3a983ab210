package configs

import "time"

type Campaign struct {
	// MinLeadDays is the earliest start date, counted in days from today.
	// The date picker and the validation rules share it.
	MinLeadDays     int    `env:"MIN_LEAD_DAYS" envDefault:"3"`
	DefaultCurrency string `env:"DEFAULT_CURRENCY" envDefault:"USD"`
	// AllowZeroPrice lets a campaign be submitted with a zero price after
	// its quote failed.
	AllowZeroPrice bool          `env:"ALLOW_ZERO_PRICE" envDefault:"false"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"30m"`
}

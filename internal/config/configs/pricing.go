package configs

import "time"

// Pricing configures where price quotes come from. With an empty URL the
// service prices campaigns from its own base price table.
type Pricing struct {
	URL     string        `env:"URL"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"3s"`
	// DebounceWindow is how long the form waits after the last duration or
	// currency change before asking for a quote.
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW" envDefault:"500ms"`
}

package configs

import "time"

// Redis configures the store used for checkout hand-offs and shared price
// quotes. Addr accepts either a redis:// URL or host:port.
type Redis struct {
	Addr string `env:"ADDRESS" envDefault:"localhost:6379"`
	// CheckoutTTL is how long a handed-off submission waits for the
	// payment step.
	CheckoutTTL time.Duration `env:"CHECKOUT_TTL" envDefault:"30m"`
	// QuoteTTL is how long a price quote is shared between sessions.
	QuoteTTL time.Duration `env:"QUOTE_TTL" envDefault:"5m"`
}

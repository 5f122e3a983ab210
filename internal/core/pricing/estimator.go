package pricing

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"repair-ads/internal/core/domain"
	"repair-ads/internal/core/port"
)

// DefaultDebounceWindow is how long the estimator waits after the last
// input change before asking for a quote.
const DefaultDebounceWindow = 500 * time.Millisecond

// Outcomes reported to an Observer.
const (
	OutcomeOK         = "ok"
	OutcomeError      = "error"
	OutcomeCached     = "cached"
	OutcomeSkipped    = "skipped"
	OutcomeSuperseded = "superseded"
)

var errNegativeQuote = errors.New("pricing service returned a negative price")

// Observer receives the outcome of every estimation.
type Observer interface {
	ObserveQuote(outcome string, elapsed time.Duration)
}

// Estimate is the visible state of an Estimator.
type Estimate struct {
	TotalDays  int
	Currency   string
	TotalPrice decimal.Decimal
	Loading    bool
	// Failed is set when the last quote for the current input failed and
	// TotalPrice was reset to zero.
	Failed bool
}

type quoteKey struct {
	totalDays int
	currency  string
}

type Option func(*Estimator)

func WithWindow(d time.Duration) Option {
	return func(e *Estimator) {
		if d >= 0 {
			e.window = d
		}
	}
}

// WithAfterFunc replaces the timer used for debouncing. The function must
// not call f synchronously.
func WithAfterFunc(fn AfterFunc) Option {
	return func(e *Estimator) { e.afterFunc = fn }
}

func WithObserver(o Observer) Option {
	return func(e *Estimator) { e.observer = o }
}

// Estimator turns (totalDays, currency) changes into a price through a
// debounced call to a PriceQuoter. Only the most recent input may update
// the visible estimate. Quote failures resolve to a zero price and are
// never returned to the caller.
type Estimator struct {
	quoter    port.PriceQuoter
	logger    *slog.Logger
	window    time.Duration
	afterFunc AfterFunc
	observer  Observer

	mu      sync.Mutex
	seq     uint64
	pending *task
	state   Estimate
	cache   map[quoteKey]decimal.Decimal
	settled chan struct{}
}

func NewEstimator(quoter port.PriceQuoter, logger *slog.Logger, opts ...Option) *Estimator {
	e := &Estimator{
		quoter:    quoter,
		logger:    logger,
		window:    DefaultDebounceWindow,
		afterFunc: RealAfterFunc,
		cache:     make(map[quoteKey]decimal.Decimal),
		settled:   make(chan struct{}),
		state:     Estimate{TotalPrice: decimal.Zero},
	}
	close(e.settled)
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Update records new input and schedules a quote for it, replacing any
// computation scheduled for earlier input. Non-positive durations and
// cached inputs resolve immediately without a remote call.
func (e *Estimator) Update(totalDays int, currency string) {
	currency = domain.NormalizeCurrency(currency)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.seq++
	e.pending.cancel()
	e.pending = nil
	e.state.TotalDays = totalDays
	e.state.Currency = currency

	if totalDays < domain.MinTotalDays || currency == "" {
		e.resolveLocked(decimal.Zero, false)
		e.observe(OutcomeSkipped, 0)
		return
	}
	if price, ok := e.cache[quoteKey{totalDays, currency}]; ok {
		e.resolveLocked(price, false)
		e.observe(OutcomeCached, 0)
		return
	}

	if !e.state.Loading {
		e.state.Loading = true
		e.settled = make(chan struct{})
	}
	t := &task{seq: e.seq, totalDays: totalDays, currency: currency}
	t.timer = e.afterFunc(e.window, func() { e.run(t) })
	e.pending = t
}

// Stop invalidates any scheduled or in-flight computation. The estimate
// stops loading and keeps its last price.
func (e *Estimator) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seq++
	e.pending.cancel()
	e.pending = nil
	if e.state.Loading {
		e.state.Loading = false
		close(e.settled)
	}
}

// Snapshot returns the current estimate.
func (e *Estimator) Snapshot() Estimate {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Wait blocks until the estimate is not loading or ctx is done, and
// returns the estimate at that point.
func (e *Estimator) Wait(ctx context.Context) (Estimate, error) {
	e.mu.Lock()
	settled := e.settled
	e.mu.Unlock()

	select {
	case <-settled:
		return e.Snapshot(), nil
	case <-ctx.Done():
		return e.Snapshot(), ctx.Err()
	}
}

func (e *Estimator) run(t *task) {
	e.mu.Lock()
	if t.seq != e.seq {
		e.mu.Unlock()
		return
	}
	e.pending = nil
	e.mu.Unlock()

	start := time.Now()
	price, err := e.quoter.Quote(context.Background(), t.totalDays, t.currency)
	if err == nil && price.IsNegative() {
		err = errNegativeQuote
	}
	elapsed := time.Since(start)

	e.mu.Lock()
	defer e.mu.Unlock()

	if t.seq != e.seq {
		e.observe(OutcomeSuperseded, elapsed)
		return
	}
	if err != nil {
		e.logger.Warn("price quote failed",
			slog.Int("total_days", t.totalDays),
			slog.String("currency", t.currency),
			slog.Any("error", err))
		e.resolveLocked(decimal.Zero, true)
		e.observe(OutcomeError, elapsed)
		return
	}
	e.cache[quoteKey{t.totalDays, t.currency}] = price
	e.resolveLocked(price, false)
	e.observe(OutcomeOK, elapsed)
}

func (e *Estimator) resolveLocked(price decimal.Decimal, failed bool) {
	e.state.TotalPrice = price
	e.state.Failed = failed
	if e.state.Loading {
		e.state.Loading = false
		close(e.settled)
	}
}

func (e *Estimator) observe(outcome string, elapsed time.Duration) {
	if e.observer != nil {
		e.observer.ObserveQuote(outcome, elapsed)
	}
}

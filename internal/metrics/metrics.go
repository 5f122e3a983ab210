package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the campaign planner. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	// Pricing
	PriceQuotes       *prometheus.CounterVec
	PriceQuoteLatency prometheus.Histogram

	// Forms
	ActiveSessions        prometheus.Gauge
	Submissions           *prometheus.CounterVec
	ReferenceLoadFailures *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PriceQuotes: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "price_quotes_total",
				Help:      "Price estimations by outcome (ok, error, cached, skipped, superseded)",
			},
			[]string{"outcome"},
		),
		PriceQuoteLatency: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "price_quote_duration_seconds",
				Help:      "Latency of remote price quote calls",
				Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
		),
		ActiveSessions: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "form_sessions_active",
				Help:      "Number of open campaign form sessions",
			},
		),
		Submissions: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_total",
				Help:      "Campaign submissions by outcome",
			},
			[]string{"outcome"},
		),
		ReferenceLoadFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reference_load_failures_total",
				Help:      "Failed reference data loads by source",
			},
			[]string{"source"},
		),
	}
}

// ObserveQuote records the outcome of one price estimation. Remote calls
// (ok, error, superseded) also record their latency.
func (m *Metrics) ObserveQuote(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.PriceQuotes.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		m.PriceQuoteLatency.Observe(elapsed.Seconds())
	}
}

func (m *Metrics) RecordSubmission(outcome string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordReferenceLoadFailure(source string) {
	if m == nil {
		return
	}
	m.ReferenceLoadFailures.WithLabelValues(source).Inc()
}

func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}

// Handler exposes the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

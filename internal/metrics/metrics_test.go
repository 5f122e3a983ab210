package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("repair_ads", reg)

	m.ObserveQuote("ok", 20*time.Millisecond)
	m.ObserveQuote("ok", 10*time.Millisecond)
	m.ObserveQuote("cached", 0)
	m.RecordSubmission("handed_off")
	m.RecordReferenceLoadFailure("cities")
	m.SetActiveSessions(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PriceQuotes.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PriceQuotes.WithLabelValues("cached")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("handed_off")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReferenceLoadFailures.WithLabelValues("cities")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ActiveSessions))
	assert.Equal(t, 1, testutil.CollectAndCount(m.PriceQuoteLatency))

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.True(t, strings.Contains(rec.Body.String(), "repair_ads_price_quotes_total"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveQuote("ok", time.Second)
	m.RecordSubmission("x")
	m.RecordReferenceLoadFailure("x")
	m.SetActiveSessions(1)
}

//go:build unit
// +build unit

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveRequest("get", "/api/v1/service-modules", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest("GET", "/api/v1/service-modules", http.StatusOK, 10*time.Millisecond)
	m.ApplicationSubmitted("tourist-visa")
	m.PaymentRecorded("wallet")
	m.InvoicesGenerated(3)
	m.InvoicesGenerated(0)
	m.JobRun("recurring-invoices", true, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/service-modules", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.applications.WithLabelValues("tourist-visa")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.payments.WithLabelValues("wallet")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.invoices))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.jobRuns.WithLabelValues("recurring-invoices", "true")))
}

func TestMetrics_InFlight(t *testing.T) {
	m := New()

	done := m.RequestStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpInFlight))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RequestStarted()()
		m.ObserveRequest("GET", "/", http.StatusOK, time.Millisecond)
		m.ApplicationSubmitted("x")
		m.PaymentRecorded("card")
		m.InvoicesGenerated(1)
		m.JobRun("job", false, time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.PaymentRecorded("card")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `travel_marketplace_billing_payments_total{method="card"} 1`)
}

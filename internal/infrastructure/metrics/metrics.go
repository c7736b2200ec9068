// Package metrics exposes Prometheus collectors for the REST API, the billing
// jobs and a few marketplace business events.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "travel_marketplace"

// Metrics owns a private registry so tests can build independent instances.
// All methods are safe on a nil receiver, which disables recording.
type Metrics struct {
	Registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	applications *prometheus.CounterVec
	payments     *prometheus.CounterVec
	invoices     prometheus.Counter

	jobRuns     *prometheus.CounterVec
	jobDuration *prometheus.HistogramVec
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "path"}),
		applications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "services",
			Name:      "applications_submitted_total",
			Help:      "Service applications submitted, by module slug.",
		}, []string{"module"}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "payments_total",
			Help:      "Invoice payments recorded, by method.",
		}, []string{"method"}),
		invoices: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "invoices_generated_total",
			Help:      "Invoices created by accepted quotes and recurring generation.",
		}),
		jobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "job_runs_total",
			Help:      "Background job runs.",
		}, []string{"job", "success"}),
		jobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "job_run_duration_seconds",
			Help:      "Duration of background job runs.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}, []string{"job"}),
	}

	m.Registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.applications,
		m.payments,
		m.invoices,
		m.jobRuns,
		m.jobDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// RequestStarted tracks an in-flight request; call the returned func when it completes
func (m *Metrics) RequestStarted() func() {
	if m == nil {
		return func() {}
	}
	m.httpInFlight.Inc()
	return m.httpInFlight.Dec
}

// ObserveRequest records one handled HTTP request. path should be the route template.
func (m *Metrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if path == "" {
		path = "unmatched"
	}
	method = strings.ToUpper(method)
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ApplicationSubmitted counts a submitted service application
func (m *Metrics) ApplicationSubmitted(moduleSlug string) {
	if m == nil {
		return
	}
	m.applications.WithLabelValues(moduleSlug).Inc()
}

// PaymentRecorded counts a payment by method
func (m *Metrics) PaymentRecorded(method string) {
	if m == nil {
		return
	}
	m.payments.WithLabelValues(method).Inc()
}

// InvoicesGenerated adds n generated invoices
func (m *Metrics) InvoicesGenerated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.invoices.Add(float64(n))
}

// JobRun records one background job execution
func (m *Metrics) JobRun(job string, success bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.jobRuns.WithLabelValues(job, strconv.FormatBool(success)).Inc()
	m.jobDuration.WithLabelValues(job).Observe(duration.Seconds())
}

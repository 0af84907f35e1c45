// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hacksolana/hks/internal/model"
)

const namespace = "hks"

// Metrics owns a private registry with the service collectors.
// All methods are safe on a nil receiver, which records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	scans           *prometheus.CounterVec
	scansRejected   prometheus.Counter
	contactMessages prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

// New creates Metrics with Go runtime and process collectors registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_total",
			Help:      "Completed simulated scans by risk level.",
		}, []string{"level"}),
		scansRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_rejected_total",
			Help:      "Scan requests rejected for a blank address.",
		}),
		contactMessages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_messages_total",
			Help:      "Contact form submissions accepted.",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   []float64{.005, .01, .05, .1, .5, 1, 2.5, 5},
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.scans,
		m.scansRejected,
		m.contactMessages,
		m.requestDuration,
	)

	// Pre-create level series so dashboards show zeros before the first scan.
	for _, level := range []model.RiskLevel{model.RiskLow, model.RiskMedium, model.RiskHigh} {
		m.scans.WithLabelValues(level.String())
	}
	return m
}

// ScanCompleted counts a finished scan.
func (m *Metrics) ScanCompleted(level model.RiskLevel) {
	if m == nil {
		return
	}
	m.scans.WithLabelValues(level.String()).Inc()
}

// ScanRejected counts a scan request with a blank address.
func (m *Metrics) ScanRejected() {
	if m == nil {
		return
	}
	m.scansRejected.Inc()
}

// ContactReceived counts an accepted contact message.
func (m *Metrics) ContactReceived() {
	if m == nil {
		return
	}
	m.contactMessages.Inc()
}

// ObserveRequest records the latency of one request to route.
func (m *Metrics) ObserveRequest(route string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "photo_restoration"

// PrometheusMetrics implements core.Metrics on client_golang collectors
type PrometheusMetrics struct {
	gatherer prometheus.Gatherer

	admissionTotal   *prometheus.CounterVec
	chargeTotal      *prometheus.CounterVec
	refundTotal      *prometheus.CounterVec
	purchaseTotal    *prometheus.CounterVec
	enhancementTotal *prometheus.CounterVec

	enhancementDuration *prometheus.HistogramVec
	gatewayDuration     *prometheus.HistogramVec
	lockDuration        *prometheus.HistogramVec
	httpDuration        *prometheus.HistogramVec

	pendingReconciliations prometheus.Gauge
}

// NewPrometheusMetrics registers every collector on the given registry.
// A nil registry creates a private one.
func NewPrometheusMetrics(registry *prometheus.Registry) *PrometheusMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	factory := promauto.With(registry)

	return &PrometheusMetrics{
		gatherer: registry,
		admissionTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_admission_total",
				Help:      "Eligibility decisions by tier and outcome",
			},
			[]string{"tier", "outcome"}, // outcome: success/denied/failure
		),
		chargeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_charge_total",
				Help:      "Deductions by tier and the pool they were drawn from",
			},
			[]string{"tier", "source"}, // source: purchased/daily
		),
		refundTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_refund_total",
				Help:      "Compensating refunds by tier and outcome",
			},
			[]string{"tier", "outcome"},
		),
		purchaseTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_purchase_total",
				Help:      "Applied purchases by product kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		enhancementTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "enhancement_total",
				Help:      "Finished enhancement requests by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		enhancementDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "enhancement_duration_seconds",
				Help:      "End-to-end enhancement latency",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
			},
			[]string{"mode", "outcome"},
		),
		gatewayDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "gateway_call_duration_seconds",
				Help:      "Latency of calls to the transform model and object storage",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"gateway", "operation", "outcome"},
		),
		lockDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "user_lock_acquire_duration_seconds",
				Help:      "Time spent acquiring a per-user lock",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"backend", "outcome"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route and status",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		pendingReconciliations: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "refund_reconciliations_pending",
				Help:      "Refunds that failed and are waiting for the reconciliation sweep",
			},
		),
	}
}

// ObserveAdmission counts an eligibility decision per tier
func (m *PrometheusMetrics) ObserveAdmission(tier, outcome string) {
	m.admissionTotal.WithLabelValues(tier, outcome).Inc()
}

// ObserveCharge counts a deduction
func (m *PrometheusMetrics) ObserveCharge(tier, source string) {
	m.chargeTotal.WithLabelValues(tier, source).Inc()
}

// ObserveRefund counts a compensating refund
func (m *PrometheusMetrics) ObserveRefund(tier, outcome string) {
	m.refundTotal.WithLabelValues(tier, outcome).Inc()
}

// ObserveEnhancement records one finished request
func (m *PrometheusMetrics) ObserveEnhancement(mode, outcome string, seconds float64) {
	m.enhancementTotal.WithLabelValues(mode, outcome).Inc()
	m.enhancementDuration.WithLabelValues(mode, outcome).Observe(seconds)
}

// ObserveGatewayCall records one external call
func (m *PrometheusMetrics) ObserveGatewayCall(gateway, operation, outcome string, seconds float64) {
	m.gatewayDuration.WithLabelValues(gateway, operation, outcome).Observe(seconds)
}

// ObserveLock records a per-user lock acquisition
func (m *PrometheusMetrics) ObserveLock(backend, outcome string, seconds float64) {
	m.lockDuration.WithLabelValues(backend, outcome).Observe(seconds)
}

// ObservePurchase counts an applied purchase
func (m *PrometheusMetrics) ObservePurchase(kind, outcome string) {
	m.purchaseTotal.WithLabelValues(kind, outcome).Inc()
}

// SetPendingReconciliations reports the reconciliation backlog
func (m *PrometheusMetrics) SetPendingReconciliations(count int) {
	m.pendingReconciliations.Set(float64(count))
}

// ObserveHTTPRequest records one served HTTP request
func (m *PrometheusMetrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	m.httpDuration.WithLabelValues(method, route, status).Observe(seconds)
}

// Handler exposes the registry in the Prometheus text format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

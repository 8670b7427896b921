package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "booking"

// Metrics owns a private registry so that tests can build as many instances as they like.
type Metrics struct {
	registry *prometheus.Registry

	Holds            *prometheus.CounterVec
	Confirms         *prometheus.CounterVec
	Cancellations    *prometheus.CounterVec
	RefundMinorUnits prometheus.Counter
	ExpiredHolds     prometheus.Counter
	PendingHolds     prometheus.Gauge
	PersistFailures  prometheus.Counter
	PersistDuration  prometheus.Histogram

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Holds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "holds_total",
			Help:      "Hold requests by result.",
		}, []string{"result"}),
		Confirms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confirms_total",
			Help:      "Confirm requests by result.",
		}, []string{"result"}),
		Cancellations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cancellations_total",
			Help:      "Cancelled appointments by actor kind.",
		}, []string{"actor"}),
		RefundMinorUnits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refund_minor_units_total",
			Help:      "Sum of refunds granted, in minor currency units.",
		}),
		ExpiredHolds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expired_holds_total",
			Help:      "Holds released by the expiry sweeper.",
		}),
		PendingHolds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_holds",
			Help:      "Holds currently awaiting payment confirmation.",
		}),
		PersistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_failures_total",
			Help:      "Snapshot saves that failed.",
		}),
		PersistDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "persistence_save_duration_seconds",
			Help:      "Snapshot save latency.",
			Buckets:   prometheus.DefBuckets,
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Holds,
		m.Confirms,
		m.Cancellations,
		m.RefundMinorUnits,
		m.ExpiredHolds,
		m.PendingHolds,
		m.PersistFailures,
		m.PersistDuration,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

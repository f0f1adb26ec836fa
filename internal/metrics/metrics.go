package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's collectors. A nil *Metrics is a no-op.
type Metrics struct {
	rpcTotal        *prometheus.CounterVec
	rpcLatency      *prometheus.HistogramVec
	classifications *prometheus.CounterVec
	slotQueries     *prometheus.CounterVec
	storageFailures *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rpcTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carelink",
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Total unary RPCs by method and status code",
		}, []string{"method", "code"}),
		rpcLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "carelink",
			Subsystem: "rpc",
			Name:      "latency_seconds",
			Help:      "Unary RPC handling latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carelink",
			Subsystem: "healthlog",
			Name:      "classifications_total",
			Help:      "Vital status assignments by resulting status",
		}, []string{"status"}),
		slotQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carelink",
			Subsystem: "availability",
			Name:      "resolutions_total",
			Help:      "Availability resolutions by outcome (some, none)",
		}, []string{"outcome"}),
		storageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carelink",
			Subsystem: "storage",
			Name:      "write_failures_total",
			Help:      "Persistence writes that failed and were dropped",
		}, []string{"key"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.rpcTotal, m.rpcLatency, m.classifications, m.slotQueries, m.storageFailures)
	return m
}

func (m *Metrics) ObserveRPC(method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcTotal.WithLabelValues(method, code).Inc()
	m.rpcLatency.WithLabelValues(method).Observe(d.Seconds())
}

func (m *Metrics) ObserveClassification(status string) {
	if m == nil {
		return
	}
	m.classifications.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveSlots(n int) {
	if m == nil {
		return
	}
	outcome := "some"
	if n == 0 {
		outcome = "none"
	}
	m.slotQueries.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveStorageFailure(key string) {
	if m == nil {
		return
	}
	m.storageFailures.WithLabelValues(key).Inc()
}

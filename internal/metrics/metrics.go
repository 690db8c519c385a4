package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	RecordsCreated  *prometheus.CounterVec
	RecordsDeleted  *prometheus.CounterVec
	InputsRejected  *prometheus.CounterVec
	CacheLookups    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RecordsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "emax_records_created_total",
			Help: "Records created, by entity",
		}, []string{"entity"}),
		RecordsDeleted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "emax_records_deleted_total",
			Help: "Records deleted, by entity",
		}, []string{"entity"}),
		InputsRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "emax_inputs_rejected_total",
			Help: "Requests rejected as invalid or not found, by entity and code",
		}, []string{"entity", "code"}),
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "emax_course_cache_lookups_total",
			Help: "Course cache lookups, by result",
		}, []string{"result"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "emax_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) IncrementCreated(entity string) {
	if m == nil {
		return
	}
	m.RecordsCreated.WithLabelValues(entity).Inc()
}

func (m *Metrics) IncrementDeleted(entity string) {
	if m == nil {
		return
	}
	m.RecordsDeleted.WithLabelValues(entity).Inc()
}

func (m *Metrics) IncrementRejected(entity, code string) {
	if m == nil {
		return
	}
	m.InputsRejected.WithLabelValues(entity, code).Inc()
}

// CacheHit records a cache lookup; hit=false is a miss.
func (m *Metrics) CacheHit(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

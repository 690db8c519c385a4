package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementCreated("course")
	m.IncrementCreated("course")
	m.IncrementDeleted("enrollment")
	m.IncrementRejected("course", "MISSING_SLUG")
	m.CacheHit(true)
	m.CacheHit(false)
	m.CacheHit(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecordsCreated.WithLabelValues("course")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecordsDeleted.WithLabelValues("enrollment")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InputsRejected.WithLabelValues("course", "MISSING_SLUG")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementCreated("course")
		m.IncrementDeleted("course")
		m.IncrementRejected("course", "X")
		m.CacheHit(true)
		m.ObserveRequest("GET", "/api/courses", "200", 0.1)
	})
}

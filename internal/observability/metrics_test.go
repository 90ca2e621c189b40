package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsForTesting_IndependentInstances(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.AnnotationsProduced.Add(3)
	a.Builds.WithLabelValues("success").Inc()

	assert.Equal(t, 3.0, testutil.ToFloat64(a.AnnotationsProduced))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.AnnotationsProduced))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Builds.WithLabelValues("success")))
}

func TestMetrics_RegisterOnFreshRegistry(t *testing.T) {
	m := NewMetricsForTesting()
	reg := prometheus.NewRegistry()

	for _, c := range m.collectors() {
		require.NoError(t, reg.Register(c))
	}

	m.SegmentsLoaded.Set(12)
	m.CacheLookups.WithLabelValues("miss").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "pothole_map_segments_loaded")
	assert.Contains(t, names, "pothole_map_cache_lookups_total")
}

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pothole_map"

// Metrics - коллекторы Prometheus для загрузки таблиц и построения карт
type Metrics struct {
	SegmentsLoaded  prometheus.Gauge
	SegmentsDropped prometheus.Gauge
	PotholesLoaded  prometheus.Gauge

	Builds              *prometheus.CounterVec // метки: outcome={success,error}
	AnnotationsProduced prometheus.Counter
	SkippedGeometries   prometheus.Counter
	BuildDuration       prometheus.Histogram

	CacheLookups *prometheus.CounterVec // метки: result={hit,miss,error}
}

// NewMetrics создает коллекторы и регистрирует их в реестре по умолчанию
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting создает незарегистрированные коллекторы для тестов
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		SegmentsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "segments_loaded",
			Help:      "Street-sweeping segments read from the segments file.",
		}),
		SegmentsDropped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "segments_dropped",
			Help:      "Segments removed because the Line field was absent.",
		}),
		PotholesLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "potholes_loaded",
			Help:      "Pothole reports read from the potholes file.",
		}),
		Builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Map builds by outcome.",
		}, []string{"outcome"}),
		AnnotationsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "annotations_produced_total",
			Help:      "Markers produced across all builds.",
		}),
		SkippedGeometries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_geometries_total",
			Help:      "Sampled segments skipped because their geometry is not a line.",
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of a sample-and-annotate build.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Annotation cache lookups by result.",
		}, []string{"result"}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.SegmentsLoaded,
		m.SegmentsDropped,
		m.PotholesLoaded,
		m.Builds,
		m.AnnotationsProduced,
		m.SkippedGeometries,
		m.BuildDuration,
		m.CacheLookups,
	}
}

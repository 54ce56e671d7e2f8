package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	RowsLoaded     *prometheus.CounterVec
	ActiveUsers    prometheus.Gauge
	FeatureRecords prometheus.Counter
	ExtractRows    prometheus.Counter
	StageDuration  *prometheus.HistogramVec
	ErrorsCount    *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RowsLoaded: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_loaded_total",
			Help:      "The total number of input rows loaded per dataset",
		}, []string{"dataset"}),
		ActiveUsers: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_users",
			Help:      "The number of users passing the activity filter",
		}),
		FeatureRecords: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feature_records_total",
			Help:      "The total number of feature records emitted",
		}),
		ExtractRows: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extract_rows_total",
			Help:      "The total number of raw extract rows emitted",
		}),
		StageDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Time spent in each pipeline stage",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}

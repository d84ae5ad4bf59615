package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	FixesProcessed     *prometheus.CounterVec
	AccuracyWarnings   prometheus.Counter
	CalculationSeconds prometheus.Histogram
	ActiveWorkers      prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		FixesProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "gps_target_fixes_processed_total",
			Help: "Total number of processed fix requests.",
		}, []string{"status"}),
		AccuracyWarnings: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "gps_target_accuracy_warnings_total",
			Help: "Total number of long-range fixes computed with a degraded-accuracy advisory.",
		}),
		CalculationSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "gps_target_calculation_duration_seconds",
			Help:    "Duration of target coordinate calculations.",
			Buckets: prometheus.DefBuckets,
		}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "gps_target_active_workers",
			Help: "Current number of active workers processing fix requests.",
		}),
	}
}

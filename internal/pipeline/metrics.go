package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments pipeline runs. Register one per process.
type Metrics struct {
	RunsTotal    *prometheus.CounterVec
	RunDuration  prometheus.Histogram
	InFlight     prometheus.Gauge
	OCRFallbacks prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docuflow",
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Pipeline runs by final status.",
		}, []string{"status"}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "docuflow",
			Subsystem: "pipeline",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a full pipeline run.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		InFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "docuflow",
			Subsystem: "pipeline",
			Name:      "runs_in_flight",
			Help:      "Pipeline runs currently executing.",
		}),
		OCRFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "docuflow",
			Subsystem: "pipeline",
			Name:      "ocr_fallbacks_total",
			Help:      "Runs where embedded text was insufficient and OCR ran.",
		}),
	}
}

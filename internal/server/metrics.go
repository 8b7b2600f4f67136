package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's prometheus instruments.
type Metrics struct {
	BatchRequests  *prometheus.CounterVec
	Verdicts       *prometheus.CounterVec
	BatchDuration  prometheus.Histogram
	AnswersPerCall prometheus.Histogram
}

// NewMetrics creates and registers the instruments with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BatchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "letterrush_validate_requests_total",
			Help: "Validation batch requests by outcome.",
		}, []string{"status"}),
		Verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "letterrush_verdicts_total",
			Help: "Answer verdicts by result.",
		}, []string{"valid"}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "letterrush_validate_duration_seconds",
			Help:    "Wall time of validation batches.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		AnswersPerCall: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "letterrush_answers_per_batch",
			Help:    "Number of answers per validation batch.",
			Buckets: []float64{1, 2, 4, 6, 8, 12, 24},
		}),
	}

	reg.MustRegister(m.BatchRequests, m.Verdicts, m.BatchDuration, m.AnswersPerCall)
	return m
}

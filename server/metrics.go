package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcomes used as the "result" label.
const (
	resultFound   = "found"
	resultNoPath  = "no_path"
	resultLimit   = "limit"
	resultInvalid = "invalid"
	resultError   = "error"
)

// metrics groups the collectors of one Server. They are registered on the
// server's own registry so several servers can coexist in one process.
type metrics struct {
	searches  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	expanded  *prometheus.HistogramVec
	planSteps *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		// Labels: algorithm; result in found, no_path, limit, invalid, error
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridsearch_searches_total",
			Help: "Searches by algorithm and result",
		}, []string{"algorithm", "result"}),

		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridsearch_search_duration_seconds",
			Help:    "Search wall time",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, []string{"algorithm"}),

		expanded: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridsearch_search_expanded_states",
			Help:    "Expansion notifications per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),

		planSteps: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridsearch_plan_actions",
			Help:    "Actions in found plans",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
	}
}

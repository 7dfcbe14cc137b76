// Package metrics holds the Prometheus collectors for the expense pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PipelineRuns counts pipeline runs by outcome ("ok" or the error kind).
	PipelineRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "expense_pipeline_runs_total",
		Help: "Expense parsing pipeline runs by outcome.",
	}, []string{"outcome"})

	// DraftGenerationSeconds observes model call latency per tier.
	DraftGenerationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "draft_generation_seconds",
		Help:    "Latency of structured draft generation per tier.",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
	}, []string{"tier"})
)

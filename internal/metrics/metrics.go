package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SimulationsTotal counts projection runs by variant.
	SimulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finance_simulations_total",
		Help: "Number of projection runs executed, by variant.",
	}, []string{"variant"})

	// InsightRunsTotal counts full insight evaluations.
	InsightRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finance_insight_runs_total",
		Help: "Number of insight rule battery evaluations.",
	})

	// CacheHitsTotal counts memoization cache hits by result kind.
	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finance_cache_hits_total",
		Help: "Number of memoization cache hits, by result kind.",
	}, []string{"kind"})

	// ReportsSentTotal counts delivered email reports.
	ReportsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finance_reports_sent_total",
		Help: "Number of health report emails delivered.",
	})
)

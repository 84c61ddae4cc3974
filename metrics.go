package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors for the planner service. Registered once at
// process start via promauto on the default registry.
var (
	plansGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_plans_generated_total",
		Help: "Number of optimization plans generated, by band.",
	}, []string{"band"})

	planFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_plan_failures_total",
		Help: "Number of plan requests that failed validation or persistence.",
	})

	planDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_plan_duration_seconds",
		Help:    "Time spent building and persisting one optimization plan.",
		Buckets: prometheus.DefBuckets,
	})

	lastRecommendedAPs = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "planner_last_recommended_aps",
		Help: "Recommended AP count of the most recently generated plan.",
	})

	gridRendersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_grid_renders_total",
		Help: "Number of ASCII grid visualizations rendered.",
	})
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes
const (
	OutcomeFound   = "found"
	OutcomeDefault = "default"
	OutcomeError   = "error"
)

var (
	LookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "progression_lookups_total",
		Help: "The total number of player progression lookups by outcome",
	}, []string{"outcome"})

	LookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "progression_lookup_duration_seconds",
		Help:    "Latency of point lookups against the progression store",
		Buckets: prometheus.DefBuckets,
	}, []string{"driver"})
)

package directory

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	filterEvaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "advocates",
		Subsystem: "directory",
		Name:      "filter_evaluations_total",
		Help:      "Filter requests served, by cache result (hit, miss).",
	}, []string{"cache"})

	filterDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "advocates",
		Subsystem: "directory",
		Name:      "filter_duration_seconds",
		Help:      "Time spent filtering the store on a cache miss.",
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
	})

	storeLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "advocates",
		Subsystem: "directory",
		Name:      "store_loads_total",
		Help:      "Store refreshes, by outcome (ok, source_error, cancelled).",
	}, []string{"outcome"})

	storeSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "advocates",
		Subsystem: "directory",
		Name:      "store_records",
		Help:      "Number of advocates in the current store.",
	})
)

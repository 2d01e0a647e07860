package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	KIND_SORT = "sort"
	KIND_PATH = "path"

	RESULT_OK      = "ok"
	RESULT_FOUND   = "found"
	RESULT_NO_PATH = "no_path"
	RESULT_ERROR   = "error"
)

var (
	// runsTotal counts engine runs by kind, algorithm and outcome
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algotrace_runs_total",
		Help: "Total recorder runs by kind, algorithm and result",
	}, []string{"kind", "algorithm", "result"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "algotrace_run_duration_seconds",
		Help:    "Recorder run duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
	}, []string{"kind", "algorithm"})

	traceSteps = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "algotrace_trace_steps",
		Help:    "Number of steps in a sorting trace",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"algorithm"})

	nodesVisited = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "algotrace_nodes_visited",
		Help:    "Number of grid cells visited by a search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 9),
	}, []string{"algorithm"})
)

func ObserveSortRun(algorithm string, steps int, elapsed time.Duration) {
	runsTotal.WithLabelValues(KIND_SORT, algorithm, RESULT_OK).Inc()
	runDuration.WithLabelValues(KIND_SORT, algorithm).Observe(elapsed.Seconds())
	traceSteps.WithLabelValues(algorithm).Observe(float64(steps))
}

func ObservePathRun(algorithm string, visited int, found bool, elapsed time.Duration) {
	result := RESULT_NO_PATH
	if found {
		result = RESULT_FOUND
	}
	runsTotal.WithLabelValues(KIND_PATH, algorithm, result).Inc()
	runDuration.WithLabelValues(KIND_PATH, algorithm).Observe(elapsed.Seconds())
	nodesVisited.WithLabelValues(algorithm).Observe(float64(visited))
}

// ObserveFailure. a rejected run (unknown algorithm, invalid grid, size limit).
func ObserveFailure(kind, algorithm string) {
	runsTotal.WithLabelValues(kind, algorithm, RESULT_ERROR).Inc()
}

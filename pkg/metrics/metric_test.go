package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRuns(t *testing.T) {
	testCases := []struct {
		name    string
		observe func()
		labels  []string
	}{
		{
			name:    "sort",
			observe: func() { ObserveSortRun("bubble", 25, time.Millisecond) },
			labels:  []string{KIND_SORT, "bubble", RESULT_OK},
		},
		{
			name:    "path found",
			observe: func() { ObservePathRun("bfs", 40, true, time.Millisecond) },
			labels:  []string{KIND_PATH, "bfs", RESULT_FOUND},
		},
		{
			name:    "no path",
			observe: func() { ObservePathRun("dfs", 300, false, time.Millisecond) },
			labels:  []string{KIND_PATH, "dfs", RESULT_NO_PATH},
		},
		{
			name:    "failure",
			observe: func() { ObserveFailure(KIND_PATH, "greedy") },
			labels:  []string{KIND_PATH, "greedy", RESULT_ERROR},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			counter := runsTotal.WithLabelValues(tt.labels...)
			before := testutil.ToFloat64(counter)
			tt.observe()
			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}

	assert.Greater(t, testutil.CollectAndCount(runDuration), 0)
	assert.Greater(t, testutil.CollectAndCount(nodesVisited), 0)
	assert.Greater(t, testutil.CollectAndCount(traceSteps), 0)
}

package concurrent

import (
	"sort"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	wp := NewWorkerPool[int, int](3, 10)
	wp.Start(func(job int) int {
		return job * job
	})
	for i := 1; i <= 10; i++ {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Wait()

	got := make([]int, 0, 10)
	for res := range wp.CollectResults() {
		got = append(got, res)
	}
	sort.Ints(got)
	assert.Equal(t, []int{1, 4, 9, 16, 25, 36, 49, 64, 81, 100}, got)
}

func TestRunAllKeepsJobOrder(t *testing.T) {
	testCases := []struct {
		name       string
		numWorkers int
		jobs       []string
	}{
		{name: "more workers than jobs", numWorkers: 8, jobs: []string{"bubble", "merge", "quick"}},
		{name: "single worker", numWorkers: 1, jobs: []string{"a", "bb", "ccc", "dddd"}},
		{name: "non positive workers", numWorkers: 0, jobs: []string{"x", "yy"}},
		{name: "no jobs", numWorkers: 4, jobs: []string{}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			got := RunAll(tt.numWorkers, tt.jobs, func(job string) int {
				calls.Add(1)
				return len(job)
			})

			want := make([]int, len(tt.jobs))
			for i, job := range tt.jobs {
				want[i] = len(job)
			}
			assert.Equal(t, want, got)
			assert.Equal(t, int32(len(tt.jobs)), calls.Load())
		})
	}
}

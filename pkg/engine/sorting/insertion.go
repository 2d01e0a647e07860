package sorting

import da "github.com/lintang-b-s/algotrace/pkg/datastructure"

// InsertionSort. each element is shifted left by adjacent swaps while its left neighbour is greater.
// position 0 is never marked inside the main loop, it gets a single markSorted after the loop instead.
func InsertionSort[T da.Number](values []T) []da.Step[T] {
	rec := newRecorder(values)
	n := len(rec.arr)

	for i := 1; i < n; i++ {
		j := i
		for j > 0 && rec.arr[j] < rec.arr[j-1] {
			rec.compare(j, j-1)
			rec.swap(j, j-1)
			j--
		}
		rec.markSorted(i)
	}

	if n > 0 {
		rec.markSorted(0)
	}

	return rec.steps
}

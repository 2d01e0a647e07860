package sorting

import da "github.com/lintang-b-s/algotrace/pkg/datastructure"

// SelectionSort. for every position i the suffix is scanned against the running minimum, at most one swap per
// position.
func SelectionSort[T da.Number](values []T) []da.Step[T] {
	rec := newRecorder(values)
	n := len(rec.arr)

	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			rec.compare(minIdx, j)
			if rec.arr[j] < rec.arr[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			rec.swap(i, minIdx)
		}
		rec.markSorted(i)
	}

	return rec.steps
}

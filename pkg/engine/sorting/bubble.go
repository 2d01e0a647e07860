package sorting

import da "github.com/lintang-b-s/algotrace/pkg/datastructure"

// BubbleSort. adjacent pairs are compared left to right, the inner bound shrinks by one per pass and the tail
// position n-1-i is marked sorted after pass i.
func BubbleSort[T da.Number](values []T) []da.Step[T] {
	rec := newRecorder(values)
	n := len(rec.arr)

	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			rec.compare(j, j+1)
			if rec.arr[j] > rec.arr[j+1] {
				rec.swap(j, j+1)
			}
		}
		rec.markSorted(n - i - 1)
	}

	return rec.steps
}

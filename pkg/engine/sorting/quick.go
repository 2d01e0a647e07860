package sorting

import da "github.com/lintang-b-s/algotrace/pkg/datastructure"

// QuickSort. Lomuto partition with the last element of the range as pivot. a swap is recorded for every element
// moved below the boundary (also when it stays in place) and once more for the pivot placement.
func QuickSort[T da.Number](values []T) []da.Step[T] {
	rec := newRecorder(values)

	quickSort(rec, 0, len(rec.arr)-1)
	rec.markAllSorted()

	return rec.steps
}

func quickSort[T da.Number](rec *recorder[T], start, end int) {
	if start >= end {
		return
	}
	pivotIndex := partition(rec, start, end)
	quickSort(rec, start, pivotIndex-1)
	quickSort(rec, pivotIndex+1, end)
}

func partition[T da.Number](rec *recorder[T], start, end int) int {
	pivot := rec.arr[end]
	i := start

	for j := start; j < end; j++ {
		rec.compare(j, end)
		if rec.arr[j] < pivot {
			rec.swap(i, j)
			i++
		}
	}
	rec.swap(i, end)
	return i
}

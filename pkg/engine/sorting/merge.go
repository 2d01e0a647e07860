package sorting

import da "github.com/lintang-b-s/algotrace/pkg/datastructure"

// MergeSort. top-down merge sort over an auxiliary buffer. merging copies instead of exchanging, so every position
// written back is recorded as an overwrite. ties take the left run first (stable).
func MergeSort[T da.Number](values []T) []da.Step[T] {
	rec := newRecorder(values)
	ms := &merger[T]{rec: rec, aux: make([]T, len(rec.arr))}
	copy(ms.aux, rec.arr)

	ms.sort(0, len(rec.arr)-1)
	rec.markAllSorted()

	return rec.steps
}

type merger[T da.Number] struct {
	rec *recorder[T]
	aux []T
}

func (ms *merger[T]) sort(start, end int) {
	if start >= end {
		return
	}
	mid := start + (end-start)/2
	ms.sort(start, mid)
	ms.sort(mid+1, end)
	ms.merge(start, mid, end)
}

func (ms *merger[T]) merge(start, mid, end int) {
	arr := ms.rec.arr
	i, j, k := start, mid+1, start

	for i <= mid && j <= end {
		ms.rec.compare(i, j)
		if arr[i] <= arr[j] {
			ms.aux[k] = arr[i]
			i++
		} else {
			ms.aux[k] = arr[j]
			j++
		}
		k++
	}
	for ; i <= mid; i, k = i+1, k+1 {
		ms.aux[k] = arr[i]
	}
	for ; j <= end; j, k = j+1, k+1 {
		ms.aux[k] = arr[j]
	}

	for m := start; m <= end; m++ {
		ms.rec.overwrite(m, ms.aux[m])
	}
}

// Package sorting records the execution of classic comparison sorts as an ordered trace of steps.
//
// Every sort is pure: the caller's slice is never mutated, the algorithm works on a private copy and returns the
// complete trace in one call. Replaying only the swap and overwrite steps against a copy of the input reproduces
// the sorted array, compare and markSorted steps are annotations for the renderer.
package sorting

import (
	"errors"
	"strings"

	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/util"
)

var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

type Algorithm uint8

const (
	BUBBLE Algorithm = iota
	SELECTION
	INSERTION
	MERGE
	QUICK
)

var algorithmNames = [...]string{
	BUBBLE:    "bubble",
	SELECTION: "selection",
	INSERTION: "insertion",
	MERGE:     "merge",
	QUICK:     "quick",
}

func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return "unknown"
}

func (a Algorithm) IsValid() bool {
	return int(a) < len(algorithmNames)
}

// Algorithms. every supported algorithm, in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{BUBBLE, SELECTION, INSERTION, MERGE, QUICK}
}

func AlgorithmNames() []string {
	names := make([]string, len(algorithmNames))
	copy(names, algorithmNames[:])
	return names
}

// ParseAlgorithm. names are matched case-insensitively, an optional "sort" suffix is accepted ("bubbleSort").
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.TrimSuffix(normalized, "sort")
	normalized = strings.TrimSuffix(normalized, "_")
	for i, n := range algorithmNames {
		if n == normalized {
			return Algorithm(i), nil
		}
	}
	return 0, util.WrapErrorf(ErrUnknownAlgorithm, util.ErrBadParamInput, "unknown sorting algorithm %q", name)
}

// Sort. runs algorithm over a copy of values and returns its full trace.
func Sort[T da.Number](algorithm Algorithm, values []T) ([]da.Step[T], error) {
	switch algorithm {
	case BUBBLE:
		return BubbleSort(values), nil
	case SELECTION:
		return SelectionSort(values), nil
	case INSERTION:
		return InsertionSort(values), nil
	case MERGE:
		return MergeSort(values), nil
	case QUICK:
		return QuickSort(values), nil
	default:
		return nil, util.WrapErrorf(ErrUnknownAlgorithm, util.ErrBadParamInput, "unknown sorting algorithm %d", algorithm)
	}
}

func SortByName[T da.Number](name string, values []T) ([]da.Step[T], error) {
	algorithm, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return Sort(algorithm, values)
}

// recorder. private working copy plus the trace emitted while mutating it.
type recorder[T da.Number] struct {
	arr   []T
	steps []da.Step[T]
}

func newRecorder[T da.Number](values []T) *recorder[T] {
	arr := make([]T, len(values))
	copy(arr, values)
	return &recorder[T]{
		arr:   arr,
		steps: make([]da.Step[T], 0, 4*len(values)),
	}
}

func (r *recorder[T]) compare(i, j int) {
	r.steps = append(r.steps, da.NewCompareStep[T](i, j))
}

func (r *recorder[T]) swap(i, j int) {
	r.arr[i], r.arr[j] = r.arr[j], r.arr[i]
	r.steps = append(r.steps, da.NewSwapStep[T](i, j))
}

func (r *recorder[T]) overwrite(index int, value T) {
	r.arr[index] = value
	r.steps = append(r.steps, da.NewOverwriteStep(index, value))
}

func (r *recorder[T]) markSorted(index int) {
	r.steps = append(r.steps, da.NewMarkSortedStep[T](index))
}

func (r *recorder[T]) markAllSorted() {
	for i := range r.arr {
		r.markSorted(i)
	}
}

package sorting

import (
	"errors"

	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/util"
)

var ErrStepOutOfRange = errors.New("sorting: step index out of range")

// Replay. applies the swap & overwrite steps of a trace to a copy of values. compare & markSorted are ignored.
func Replay[T da.Number](values []T, steps []da.Step[T]) ([]T, error) {
	arr := make([]T, len(values))
	copy(arr, values)

	for k, step := range steps {
		switch step.GetType() {
		case da.SWAP:
			i, j := step.GetIndices()
			if !inRange(i, len(arr)) || !inRange(j, len(arr)) {
				return nil, util.WrapErrorf(ErrStepOutOfRange, util.ErrBadParamInput, "step %d %s outside array of %d", k, step, len(arr))
			}
			arr[i], arr[j] = arr[j], arr[i]
		case da.OVERWRITE:
			i := step.GetIndex()
			if !inRange(i, len(arr)) {
				return nil, util.WrapErrorf(ErrStepOutOfRange, util.ErrBadParamInput, "step %d %s outside array of %d", k, step, len(arr))
			}
			arr[i] = step.GetValue()
		}
	}
	return arr, nil
}

// StepCounts. number of steps per type.
func StepCounts[T da.Number](steps []da.Step[T]) map[da.StepType]int {
	counts := map[da.StepType]int{
		da.COMPARE:     0,
		da.SWAP:        0,
		da.OVERWRITE:   0,
		da.MARK_SORTED: 0,
	}
	for _, step := range steps {
		counts[step.GetType()]++
	}
	return counts
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}

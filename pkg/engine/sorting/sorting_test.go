package sorting

import (
	"errors"
	"sort"
	"testing"

	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func sortedCopy(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	sort.Ints(out)
	return out
}

func markSortedIndices[T da.Number](steps []da.Step[T]) []int {
	marks := make([]int, 0)
	for _, s := range steps {
		if s.GetType() == da.MARK_SORTED {
			marks = append(marks, s.GetIndex())
		}
	}
	return marks
}

func TestBubbleSortScenario(t *testing.T) {
	input := []int{5, 3, 4, 1, 2}
	steps := BubbleSort(input)

	counts := StepCounts(steps)
	assert.Equal(t, 10, counts[da.COMPARE])
	assert.Equal(t, 0, counts[da.OVERWRITE])
	assert.Equal(t, []int{4, 3, 2, 1, 0}, markSortedIndices(steps))

	// every swap directly follows the compare of the same pair, and only when left > right at that moment
	arr := []int{5, 3, 4, 1, 2}
	for k, s := range steps {
		switch s.GetType() {
		case da.COMPARE:
			i, j := s.GetIndices()
			outOfOrder := arr[i] > arr[j]
			hasSwap := k+1 < len(steps) && steps[k+1].GetType() == da.SWAP
			assert.Equal(t, outOfOrder, hasSwap, "compare %d at step %d", i, k)
		case da.SWAP:
			i, j := s.GetIndices()
			require.Equal(t, da.COMPARE, steps[k-1].GetType())
			pi, pj := steps[k-1].GetIndices()
			assert.Equal(t, [2]int{pi, pj}, [2]int{i, j})
			arr[i], arr[j] = arr[j], arr[i]
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, arr)

	got, err := Replay(input, steps)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	assert.Equal(t, []int{5, 3, 4, 1, 2}, input, "input must not be mutated")
}

func TestSortReplayReproducesSortedArray(t *testing.T) {
	rd := rand.New(rand.NewSource(42))

	testCases := []struct {
		name   string
		values []int
	}{
		{name: "empty", values: []int{}},
		{name: "single", values: []int{7}},
		{name: "two reversed", values: []int{2, 1}},
		{name: "already sorted", values: []int{1, 2, 3, 4, 5, 6}},
		{name: "reversed", values: []int{9, 8, 7, 6, 5, 4, 3, 2, 1}},
		{name: "duplicates", values: []int{3, 1, 3, 2, 1, 3, 2}},
		{name: "all equal", values: []int{4, 4, 4, 4}},
		{name: "negatives", values: []int{-3, 10, 0, -7, 5, -1}},
	}
	for n := 0; n < 20; n++ {
		values := make([]int, rd.Intn(40))
		for i := range values {
			values[i] = rd.Intn(100) - 50
		}
		testCases = append(testCases, struct {
			name   string
			values []int
		}{name: "random", values: values})
	}

	for _, algorithm := range Algorithms() {
		for _, tt := range testCases {
			t.Run(algorithm.String()+"/"+tt.name, func(t *testing.T) {
				input := make([]int, len(tt.values))
				copy(input, tt.values)

				steps, err := Sort(algorithm, input)
				require.NoError(t, err)

				got, err := Replay(input, steps)
				require.NoError(t, err)
				assert.Equal(t, sortedCopy(tt.values), got)
				assert.Equal(t, tt.values, input, "input must not be mutated")
			})
		}
	}
}

func TestSortTraceIsDeterministic(t *testing.T) {
	input := []float64{3.5, -1, 2.25, 8, 0, 2.25, 7.75}
	for _, algorithm := range Algorithms() {
		t.Run(algorithm.String(), func(t *testing.T) {
			first, err := Sort(algorithm, input)
			require.NoError(t, err)
			second, err := Sort(algorithm, input)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestMarkSortedCompleteness(t *testing.T) {
	input := []int{12, 4, 9, 1, 15, 3, 3, 8}
	n := len(input)

	for _, algorithm := range []Algorithm{BUBBLE, SELECTION, MERGE, QUICK} {
		t.Run(algorithm.String(), func(t *testing.T) {
			steps, err := Sort(algorithm, input)
			require.NoError(t, err)

			marks := markSortedIndices(steps)
			require.Len(t, marks, n)
			seen := make(map[int]int)
			for _, m := range marks {
				seen[m]++
			}
			for i := 0; i < n; i++ {
				assert.Equal(t, 1, seen[i], "index %d", i)
			}
		})
	}
}

func TestInsertionSortMarksZeroLast(t *testing.T) {
	input := []int{4, 2, 5, 1}
	steps := InsertionSort(input)

	marks := markSortedIndices(steps)
	assert.Equal(t, []int{1, 2, 3, 0}, marks)

	last := steps[len(steps)-1]
	assert.Equal(t, da.MARK_SORTED, last.GetType())
	assert.Equal(t, 0, last.GetIndex())

	// every shift is a compare immediately followed by the swap of the same pair
	for k, s := range steps {
		if s.GetType() == da.COMPARE {
			require.Less(t, k+1, len(steps))
			assert.Equal(t, da.SWAP, steps[k+1].GetType())
		}
	}

	assert.Equal(t, []da.Step[int]{da.NewMarkSortedStep[int](0)}, InsertionSort([]int{9}))
	assert.Empty(t, InsertionSort([]int{}))
}

func TestSelectionSortSwapsOnlyWhenMinimumMoves(t *testing.T) {
	steps := SelectionSort([]int{1, 2, 3})
	assert.Equal(t, 0, StepCounts(steps)[da.SWAP])
	assert.Equal(t, 3, StepCounts(steps)[da.COMPARE])

	steps = SelectionSort([]int{3, 1, 2})
	assert.Equal(t, []da.Step[int]{
		da.NewCompareStep[int](0, 1),
		da.NewCompareStep[int](1, 2),
		da.NewSwapStep[int](0, 1),
		da.NewMarkSortedStep[int](0),
		da.NewCompareStep[int](1, 2),
		da.NewSwapStep[int](1, 2),
		da.NewMarkSortedStep[int](1),
		da.NewMarkSortedStep[int](2),
	}, steps)
}

func TestMergeSortUsesOverwrites(t *testing.T) {
	steps := MergeSort([]int{2, 1})
	assert.Equal(t, []da.Step[int]{
		da.NewCompareStep[int](0, 1),
		da.NewOverwriteStep(0, 1),
		da.NewOverwriteStep(1, 2),
		da.NewMarkSortedStep[int](0),
		da.NewMarkSortedStep[int](1),
	}, steps)
	assert.Equal(t, 0, StepCounts(MergeSort([]int{5, 4, 3, 2, 1}))[da.SWAP])
}

func TestQuickSortLomutoTrace(t *testing.T) {
	steps := QuickSort([]int{3, 1, 2})
	// pivot 2: compare(0,2) 3<2 no; compare(1,2) 1<2 swap(0,1); pivot swap(1,2)
	assert.Equal(t, []da.Step[int]{
		da.NewCompareStep[int](0, 2),
		da.NewCompareStep[int](1, 2),
		da.NewSwapStep[int](0, 1),
		da.NewSwapStep[int](1, 2),
		da.NewMarkSortedStep[int](0),
		da.NewMarkSortedStep[int](1),
		da.NewMarkSortedStep[int](2),
	}, steps)
}

func TestSortEmptyAndSingle(t *testing.T) {
	for _, algorithm := range Algorithms() {
		t.Run(algorithm.String(), func(t *testing.T) {
			steps, err := Sort(algorithm, []int{})
			require.NoError(t, err)
			assert.Empty(t, steps)

			steps, err = Sort(algorithm, []int{42})
			require.NoError(t, err)
			assert.LessOrEqual(t, len(steps), 1)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Algorithm
		wantErr bool
	}{
		{name: "bubble", input: "bubble", want: BUBBLE},
		{name: "camel case suffix", input: "quickSort", want: QUICK},
		{name: "upper", input: "MERGE", want: MERGE},
		{name: "snake suffix", input: "insertion_sort", want: INSERTION},
		{name: "selection", input: " selection ", want: SELECTION},
		{name: "unknown", input: "bogo", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
				assert.True(t, errors.Is(err, util.ErrBadParamInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Sort(Algorithm(99), []int{1})
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = SortByName("heap", []int{1})
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestReplayRejectsOutOfRangeSteps(t *testing.T) {
	_, err := Replay([]int{1, 2}, []da.Step[int]{da.NewSwapStep[int](0, 5)})
	assert.ErrorIs(t, err, ErrStepOutOfRange)

	_, err = Replay([]int{1, 2}, []da.Step[int]{da.NewOverwriteStep(-1, 3)})
	assert.ErrorIs(t, err, ErrStepOutOfRange)
}

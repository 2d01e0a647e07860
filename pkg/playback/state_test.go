package playback

import (
	"testing"

	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/engine/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortStateAppliesFullTrace(t *testing.T) {
	input := []int{5, 3, 4, 1, 2}
	for _, algorithm := range sorting.Algorithms() {
		t.Run(algorithm.String(), func(t *testing.T) {
			steps, err := sorting.Sort(algorithm, input)
			require.NoError(t, err)

			state := NewSortState(input)
			require.NoError(t, state.ApplyAll(steps))
			assert.Equal(t, []int{1, 2, 3, 4, 5}, state.Values())
			assert.Equal(t, []bool{true, true, true, true, true}, state.Sorted())
			assert.Equal(t, len(steps), state.Applied())
			assert.Equal(t, []int{5, 3, 4, 1, 2}, input)
		})
	}
}

func TestSortStateRandomAccess(t *testing.T) {
	input := []float64{4, 1, 3, 2}
	steps, err := sorting.Sort(sorting.MERGE, input)
	require.NoError(t, err)

	state := NewSortState(input)
	for k := 0; k <= len(steps); k++ {
		require.NoError(t, state.ApplyTo(steps, k))
		want, err := sorting.Replay(input, steps[:k])
		require.NoError(t, err)
		assert.Equal(t, want, state.Values(), "after %d steps", k)
	}

	assert.ErrorIs(t, state.ApplyTo(steps, len(steps)+1), ErrPositionOutOfRange)
}

func TestSortStateHighlights(t *testing.T) {
	state := NewSortState([]int{2, 1, 3})

	require.NoError(t, state.Apply(da.NewCompareStep[int](0, 1)))
	i, j, ok := state.Comparing()
	assert.True(t, ok)
	assert.Equal(t, [2]int{0, 1}, [2]int{i, j})

	require.NoError(t, state.Apply(da.NewSwapStep[int](0, 1)))
	_, _, ok = state.Comparing()
	assert.False(t, ok)
	_, _, ok = state.Swapping()
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, state.Values())

	require.NoError(t, state.Apply(da.NewOverwriteStep(2, 9)))
	k, ok := state.Overwritten()
	assert.True(t, ok)
	assert.Equal(t, 2, k)

	require.NoError(t, state.Apply(da.NewMarkSortedStep[int](2)))
	assert.True(t, state.IsSorted(2))
	assert.False(t, state.IsSorted(0))
	assert.False(t, state.IsSorted(7))

	assert.ErrorIs(t, state.Apply(da.NewSwapStep[int](0, 3)), sorting.ErrStepOutOfRange)
	assert.Equal(t, []int{1, 2, 9}, state.Values(), "a rejected step changes nothing")
	assert.Equal(t, 4, state.Applied())

	state.Reset()
	assert.Equal(t, []int{2, 1, 3}, state.Values())
	assert.Zero(t, state.Applied())
}

func TestGridStateFrames(t *testing.T) {
	visited := []da.Index{0, 1, 4, 5}
	path := []da.Index{0, 1, 5}

	gs := NewGridState(6, visited, path)
	require.True(t, gs.Found())
	assert.Equal(t, 7, gs.Len())
	assert.Equal(t, PATH_FRAME, gs.Frames()[4].Kind)

	snap, err := gs.Frame(0)
	require.NoError(t, err)
	assert.Equal(t, da.INVALID_NODE_ID, snap.Current)
	assert.Equal(t, make([]bool, 6), snap.Visited)

	snap, err = gs.Frame(3)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false, false, true, false}, snap.Visited)
	assert.Equal(t, da.Index(4), snap.Current)

	snap, err = gs.Frame(gs.Len())
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false, false, false, true}, snap.Path)

	_, err = gs.Frame(8)
	assert.ErrorIs(t, err, ErrPositionOutOfRange)

	seq := gs.Sequencer()
	assert.Equal(t, gs.Len(), seq.Len())
}

func TestGridStateWithoutPath(t *testing.T) {
	gs := NewGridState(4, []da.Index{0, 1}, []da.Index{3})
	assert.False(t, gs.Found())
	assert.Equal(t, 2, gs.Len(), "a single-cell path is not animated")
	assert.Equal(t, "visit", gs.Frames()[1].Kind.String())
}

package engine

import (
	"context"
	"testing"

	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/engine/pathfinding"
	"github.com/lintang-b-s/algotrace/pkg/engine/sorting"
	"github.com/lintang-b-s/algotrace/pkg/gridbuilder"
	"github.com/lintang-b-s/algotrace/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine() *Engine {
	return NewEngine(zap.NewNop(), Config{MaxArraySize: 16, MaxGridCells: 400, CompareWorkers: 3})
}

func TestEngineSort(t *testing.T) {
	e := newTestEngine()
	run, err := e.Sort(context.Background(), "bubbleSort", []float64{5, 3, 4, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, sorting.BUBBLE, run.Algorithm)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, run.Sorted)
	assert.Equal(t, 10, run.Counts[da.COMPARE])
	assert.Equal(t, 5, run.Counts[da.MARK_SORTED])
	assert.NotEqual(t, run.ID.String(), "")

	other, err := e.Sort(context.Background(), "bubble", []float64{1})
	require.NoError(t, err)
	assert.NotEqual(t, run.ID, other.ID)
}

func TestEngineSortErrors(t *testing.T) {
	e := newTestEngine()

	testCases := []struct {
		name    string
		ctx     func() context.Context
		algo    string
		values  []float64
		wantErr error
	}{
		{name: "unknown algorithm", ctx: context.Background, algo: "bogo", values: []float64{1}, wantErr: sorting.ErrUnknownAlgorithm},
		{name: "too many values", ctx: context.Background, algo: "merge", values: make([]float64, 17), wantErr: ErrLimitExceeded},
		{
			name: "cancelled",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			algo:    "quick",
			values:  []float64{2, 1},
			wantErr: context.Canceled,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Sort(tt.ctx(), tt.algo, tt.values)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEngineTraverse(t *testing.T) {
	e := newTestEngine()
	board, err := gridbuilder.FromLayout([]string{
		"S....",
		".###.",
		"....E",
	})
	require.NoError(t, err)

	run, err := e.Traverse(context.Background(), "bfs", board)
	require.NoError(t, err)
	assert.True(t, run.Found)
	assert.Len(t, run.Path, 7)
	assert.Equal(t, board.End(), run.Visited[len(run.Visited)-1])

	// a second run on the same board starts from a clean state
	again, err := e.Traverse(context.Background(), "bfs", board)
	require.NoError(t, err)
	assert.Equal(t, run.Visited, again.Visited)

	require.NoError(t, board.SetWall(gridbuilder.Cell{Row: 1, Col: 0}, true))
	require.NoError(t, board.SetWall(gridbuilder.Cell{Row: 1, Col: 4}, true))
	blocked, err := e.Traverse(context.Background(), "astar", board)
	require.NoError(t, err)
	assert.False(t, blocked.Found)
	assert.Equal(t, []da.Index{board.End()}, blocked.Path)
}

func TestEngineTraverseErrors(t *testing.T) {
	e := newTestEngine()
	big, err := gridbuilder.NewBoard(21, 20, gridbuilder.Cell{}, gridbuilder.Cell{Row: 20, Col: 19})
	require.NoError(t, err)

	_, err = e.Traverse(context.Background(), "dfs", big)
	assert.ErrorIs(t, err, ErrLimitExceeded)
	assert.ErrorIs(t, err, util.ErrBadParamInput)

	_, err = e.Traverse(context.Background(), "jps", gridbuilder.DefaultBoard())
	assert.ErrorIs(t, err, pathfinding.ErrUnknownAlgorithm)

	_, err = e.Traverse(context.Background(), "bfs", nil)
	assert.ErrorIs(t, err, pathfinding.ErrInvalidGrid)
}

func TestEngineCompareSort(t *testing.T) {
	e := newTestEngine()
	values := []float64{9, 2, 7, 4, 5, 1}

	runs, err := e.CompareSort(context.Background(), nil, values)
	require.NoError(t, err)
	require.Len(t, runs, len(sorting.Algorithms()))
	for i, run := range runs {
		assert.Equal(t, sorting.Algorithms()[i], run.Algorithm)
		assert.Equal(t, []float64{1, 2, 4, 5, 7, 9}, run.Sorted)
	}
	assert.Equal(t, []float64{9, 2, 7, 4, 5, 1}, values)

	runs, err = e.CompareSort(context.Background(), []string{"quick", "insertion"}, values)
	require.NoError(t, err)
	assert.Equal(t, sorting.QUICK, runs[0].Algorithm)
	assert.Equal(t, sorting.INSERTION, runs[1].Algorithm)

	_, err = e.CompareSort(context.Background(), []string{"quick", "shell"}, values)
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

func TestEngineCompareTraverse(t *testing.T) {
	e := newTestEngine()
	board, err := gridbuilder.FromLayout([]string{
		"S...#.....",
		".##.#.###.",
		"...#...#..",
		"#.##.#.#..",
		"........#E",
	})
	require.NoError(t, err)

	runs, err := e.CompareTraverse(context.Background(), nil, board)
	require.NoError(t, err)
	require.Len(t, runs, 4)

	lengths := make(map[pathfinding.Algorithm]int)
	for i, run := range runs {
		assert.Equal(t, pathfinding.Algorithms()[i], run.Algorithm)
		assert.True(t, run.Found)
		assert.NotSame(t, board, run.Board)
		lengths[run.Algorithm] = len(run.Path)
	}
	assert.Equal(t, lengths[pathfinding.BFS], lengths[pathfinding.DIJKSTRA])
	assert.Equal(t, lengths[pathfinding.BFS], lengths[pathfinding.ASTAR])
	assert.Zero(t, board.Grid().CountVisited(), "the caller's board is not searched")
}

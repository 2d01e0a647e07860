package gridbuilder

import (
	"testing"

	"github.com/lintang-b-s/algotrace/pkg"
	"github.com/lintang-b-s/algotrace/pkg/engine/pathfinding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func TestRandomWalls(t *testing.T) {
	testCases := []struct {
		name    string
		density float64
		check   func(t *testing.T, b *Board)
	}{
		{
			name:    "zero density",
			density: 0,
			check: func(t *testing.T, b *Board) {
				assert.Empty(t, b.Walls())
			},
		},
		{
			name:    "full density keeps markers",
			density: 1,
			check: func(t *testing.T, b *Board) {
				assert.Len(t, b.Walls(), b.Rows()*b.Cols()-2)
				assert.Equal(t, pkg.START, b.Grid().GetNode(b.Start()).GetCellType())
				assert.Equal(t, pkg.END, b.Grid().GetNode(b.End()).GetCellType())
			},
		},
		{
			name:    "default density",
			density: pkg.DEFAULT_WALL_DENSITY,
			check: func(t *testing.T, b *Board) {
				walls := len(b.Walls())
				assert.Greater(t, walls, 0)
				assert.Less(t, walls, b.Rows()*b.Cols()/2)
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			b := DefaultBoard()
			RandomWalls(b, tt.density, rand.New(rand.NewSource(1)))
			tt.check(t, b)
		})
	}
}

func TestRandomWallsIsSeeded(t *testing.T) {
	first, second := DefaultBoard(), DefaultBoard()
	RandomWalls(first, 0.3, rand.New(rand.NewSource(99)))
	RandomWalls(second, 0.3, rand.New(rand.NewSource(99)))
	assert.Equal(t, first.Layout(), second.Layout())
}

func TestMazeConnectsMarkers(t *testing.T) {
	testCases := []struct {
		name       string
		rows, cols int
		start, end Cell
	}{
		{name: "default size", rows: 20, cols: 30, start: Cell{Row: 10, Col: 7}, end: Cell{Row: 10, Col: 22}},
		{name: "markers on the border", rows: 11, cols: 11, start: Cell{Row: 0, Col: 0}, end: Cell{Row: 10, Col: 10}},
		{name: "even sizes", rows: 8, cols: 12, start: Cell{Row: 7, Col: 0}, end: Cell{Row: 0, Col: 11}},
		{name: "thin", rows: 3, cols: 9, start: Cell{Row: 1, Col: 0}, end: Cell{Row: 1, Col: 8}},
	}

	for _, tt := range testCases {
		for seed := uint64(1); seed <= 5; seed++ {
			t.Run(tt.name, func(t *testing.T) {
				b, err := NewBoard(tt.rows, tt.cols, tt.start, tt.end)
				require.NoError(t, err)
				Maze(b, rand.New(rand.NewSource(seed)))
				assert.NotEmpty(t, b.Walls())

				_, err = pathfinding.Traverse(pathfinding.BFS, b.Grid(), b.Start(), b.End())
				require.NoError(t, err)
				path := pathfinding.ReconstructPath(b.Grid(), b.End())
				assert.True(t, pathfinding.PathFound(path), "seed %d\n%v", seed, b.Layout())
			})
		}
	}
}

func TestMazeTooSmallStaysOpen(t *testing.T) {
	b, err := NewBoard(2, 5, Cell{Row: 0, Col: 0}, Cell{Row: 1, Col: 4})
	require.NoError(t, err)
	Maze(b, rand.New(rand.NewSource(3)))
	assert.Empty(t, b.Walls())
}

func TestSnapToOpen(t *testing.T) {
	b, err := FromLayout([]string{
		"S.###",
		"..#.#",
		"###.E",
	})
	require.NoError(t, err)
	log := zap.NewNop()

	got, err := b.SnapToOpen(Cell{Row: 0, Col: 1}, log)
	require.NoError(t, err)
	assert.Equal(t, Cell{Row: 0, Col: 1}, got)

	got, err = b.SnapToOpen(Cell{Row: 0, Col: 3}, log)
	require.NoError(t, err)
	assert.Equal(t, Cell{Row: 1, Col: 3}, got)

	got, err = b.SnapToOpen(Cell{Row: 0, Col: 0}, log)
	require.NoError(t, err)
	assert.Equal(t, Cell{Row: 0, Col: 1}, got, "the start cell itself is not open")

	_, err = b.SnapToOpen(Cell{Row: 3, Col: 0}, log)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	full, err := FromLayout([]string{"S#", "#E"})
	require.NoError(t, err)
	_, err = full.SnapToOpen(Cell{Row: 0, Col: 1}, log)
	assert.ErrorIs(t, err, ErrNoOpenCell)
}

package gridbuilder

import (
	"github.com/lintang-b-s/algotrace/pkg"
	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/spatialindex"
	"github.com/lintang-b-s/algotrace/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// RandomWalls. replaces the current walls: every cell other than start/end becomes a wall with probability density.
func RandomWalls(b *Board, density float64, rng *rand.Rand) {
	b.ClearWalls()
	if density <= 0 {
		return
	}
	for idx := da.Index(0); int(idx) < b.grid.NumberOfNodes(); idx++ {
		if idx == b.start || idx == b.end {
			continue
		}
		if rng.Float64() < density {
			b.grid.SetCellType(idx, pkg.WALL)
		}
	}
}

type point struct {
	row, col int
}

// Maze. carves a perfect maze (recursive backtracker over odd cells) into b, then opens a corridor from each marker
// to the nearest carved cell so start and end are always connected.
// boards smaller than 3x3 have no interior and are left open.
func Maze(b *Board, rng *rand.Rand) {
	rows, cols := b.grid.Rows(), b.grid.Cols()
	b.ClearWalls()
	if rows < 3 || cols < 3 {
		return
	}

	passage := make([]bool, rows*cols)
	recursiveBacktracker(passage, rows, cols, rng)

	for _, marker := range []da.Index{b.start, b.end} {
		r, c := b.grid.Coordinate(marker)
		openCorridor(passage, cols, point{r, c}, nearestRoom(r, rows), nearestRoom(c, cols))
	}

	for idx := da.Index(0); int(idx) < len(passage); idx++ {
		if !passage[idx] && idx != b.start && idx != b.end {
			b.grid.SetCellType(idx, pkg.WALL)
		}
	}
}

func recursiveBacktracker(passage []bool, rows, cols int, rng *rand.Rand) {
	start := point{1, 1}
	stack := []point{start}
	passage[start.row*cols+start.col] = true

	dirs := []point{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}
	candidates := make([]point, 0, 4)

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range dirs {
			nr, nc := curr.row+d.row, curr.col+d.col
			// keep a one cell border of walls
			if nr > 0 && nr < rows-1 && nc > 0 && nc < cols-1 && !passage[nr*cols+nc] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		passage[(curr.row+d.row/2)*cols+curr.col+d.col/2] = true
		next := point{curr.row + d.row, curr.col + d.col}
		passage[next.row*cols+next.col] = true
		stack = append(stack, next)
	}
}

// nearestRoom. closest odd coordinate inside the border.
func nearestRoom(x, size int) int {
	room := x | 1
	for room > size-2 {
		room -= 2
	}
	return room
}

// openCorridor. straight walk from p to (row, col), vertical leg first.
func openCorridor(passage []bool, cols int, p point, row, col int) {
	r, c := p.row, p.col
	passage[r*cols+c] = true
	for r != row {
		if r < row {
			r++
		} else {
			r--
		}
		passage[r*cols+c] = true
	}
	for c != col {
		if c < col {
			c++
		} else {
			c--
		}
		passage[r*cols+c] = true
	}
}

// SnapToOpen. c itself when it is an empty cell, otherwise the nearest empty cell by manhattan distance.
func (b *Board) SnapToOpen(c Cell, log *zap.Logger) (Cell, error) {
	if _, err := b.indexOf(c); err != nil {
		return Cell{}, err
	}
	if b.grid.GetNodeAt(c.Row, c.Col).GetCellType() == pkg.EMPTY {
		return c, nil
	}

	rt := spatialindex.NewRtree()
	rt.Build(b.grid, log)
	nearest, ok := rt.Nearest(c.Row, c.Col)
	if !ok {
		return Cell{}, util.WrapErrorf(ErrNoOpenCell, util.ErrConflict, "no empty cell to place a marker near %s", c)
	}
	return Cell{Row: nearest.GetRow(), Col: nearest.GetCol()}, nil
}

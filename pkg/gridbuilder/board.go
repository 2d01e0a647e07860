// Package gridbuilder owns grid construction and editing between runs: sizing, start/end placement, wall drawing,
// random walls, mazes and resetting search state. The pathfinding engine never does any of this itself.
package gridbuilder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lintang-b-s/algotrace/pkg"
	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/util"
)

var (
	ErrInvalidLayout = errors.New("gridbuilder: invalid layout")
	ErrOutOfBounds   = errors.New("gridbuilder: cell out of bounds")
	ErrOccupied      = errors.New("gridbuilder: cell is occupied")
	ErrNoOpenCell    = errors.New("gridbuilder: no open cell left")
)

const (
	LAYOUT_EMPTY   = '.'
	LAYOUT_WALL    = '#'
	LAYOUT_START   = 'S'
	LAYOUT_END     = 'E'
	LAYOUT_VISITED = '+'
	LAYOUT_PATH    = '*'
)

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Board. grid arena plus the positions of its start and end markers.
type Board struct {
	grid  *da.Grid
	start da.Index
	end   da.Index
}

// NewBoard. rows x cols empty board with start and end placed.
func NewBoard(rows, cols int, start, end Cell) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, util.WrapErrorf(ErrInvalidLayout, util.ErrBadParamInput, "grid size must be positive, got %dx%d", rows, cols)
	}
	grid := da.NewGrid(rows, cols)
	if !grid.InBounds(start.Row, start.Col) {
		return nil, util.WrapErrorf(ErrOutOfBounds, util.ErrBadParamInput, "start %s is outside a %dx%d grid", start, rows, cols)
	}
	if !grid.InBounds(end.Row, end.Col) {
		return nil, util.WrapErrorf(ErrOutOfBounds, util.ErrBadParamInput, "end %s is outside a %dx%d grid", end, rows, cols)
	}
	if start == end {
		return nil, util.WrapErrorf(ErrOccupied, util.ErrBadParamInput, "start and end share cell %s", start)
	}

	b := &Board{
		grid:  grid,
		start: grid.IndexOf(start.Row, start.Col),
		end:   grid.IndexOf(end.Row, end.Col),
	}
	grid.SetCellType(b.start, pkg.START)
	grid.SetCellType(b.end, pkg.END)
	return b, nil
}

// DefaultBoard. DEFAULT_GRID_ROWS x DEFAULT_GRID_COLS with the markers on the middle row, a quarter in from each side.
func DefaultBoard() *Board {
	rows, cols := pkg.DEFAULT_GRID_ROWS, pkg.DEFAULT_GRID_COLS
	b, _ := NewBoard(rows, cols, Cell{Row: rows / 2, Col: cols / 4}, Cell{Row: rows / 2, Col: cols - 1 - cols/4})
	return b
}

// FromLayout. one string per row: '.' empty, '#' wall, 'S' start, 'E' end.
func FromLayout(layout []string) (*Board, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, util.WrapErrorf(ErrInvalidLayout, util.ErrBadParamInput, "layout is empty")
	}
	rows, cols := len(layout), len(layout[0])
	grid := da.NewGrid(rows, cols)
	b := &Board{grid: grid, start: da.INVALID_NODE_ID, end: da.INVALID_NODE_ID}

	for r, line := range layout {
		if len(line) != cols {
			return nil, util.WrapErrorf(ErrInvalidLayout, util.ErrBadParamInput,
				"row %d has %d cells, expected %d", r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			idx := grid.IndexOf(r, c)
			switch line[c] {
			case LAYOUT_EMPTY:
			case LAYOUT_WALL:
				grid.SetCellType(idx, pkg.WALL)
			case LAYOUT_START:
				if b.start != da.INVALID_NODE_ID {
					return nil, util.WrapErrorf(ErrInvalidLayout, util.ErrBadParamInput, "more than one start cell")
				}
				grid.SetCellType(idx, pkg.START)
				b.start = idx
			case LAYOUT_END:
				if b.end != da.INVALID_NODE_ID {
					return nil, util.WrapErrorf(ErrInvalidLayout, util.ErrBadParamInput, "more than one end cell")
				}
				grid.SetCellType(idx, pkg.END)
				b.end = idx
			default:
				return nil, util.WrapErrorf(ErrInvalidLayout, util.ErrBadParamInput,
					"unknown cell %q at (%d, %d)", line[c], r, c)
			}
		}
	}

	if b.start == da.INVALID_NODE_ID || b.end == da.INVALID_NODE_ID {
		return nil, util.WrapErrorf(ErrInvalidLayout, util.ErrBadParamInput, "layout needs one start and one end cell")
	}
	return b, nil
}

func (b *Board) Grid() *da.Grid {
	return b.grid
}

func (b *Board) Rows() int {
	return b.grid.Rows()
}

func (b *Board) Cols() int {
	return b.grid.Cols()
}

func (b *Board) Start() da.Index {
	return b.start
}

func (b *Board) End() da.Index {
	return b.end
}

func (b *Board) StartCell() Cell {
	return b.CellOf(b.start)
}

func (b *Board) EndCell() Cell {
	return b.CellOf(b.end)
}

func (b *Board) CellOf(idx da.Index) Cell {
	r, c := b.grid.Coordinate(idx)
	return Cell{Row: r, Col: c}
}

func (b *Board) Cells(indices []da.Index) []Cell {
	cells := make([]Cell, len(indices))
	for i, idx := range indices {
		cells[i] = b.CellOf(idx)
	}
	return cells
}

func (b *Board) Walls() []Cell {
	return b.Cells(b.grid.CellsOfType(pkg.WALL))
}

func (b *Board) indexOf(c Cell) (da.Index, error) {
	if !b.grid.InBounds(c.Row, c.Col) {
		return 0, util.WrapErrorf(ErrOutOfBounds, util.ErrBadParamInput, "cell %s is outside a %dx%d grid",
			c, b.grid.Rows(), b.grid.Cols())
	}
	return b.grid.IndexOf(c.Row, c.Col), nil
}

// SetWall. start and end can't be walled over.
func (b *Board) SetWall(c Cell, wall bool) error {
	idx, err := b.indexOf(c)
	if err != nil {
		return err
	}
	if idx == b.start || idx == b.end {
		return util.WrapErrorf(ErrOccupied, util.ErrBadParamInput, "cell %s holds a marker", c)
	}
	if wall {
		b.grid.SetCellType(idx, pkg.WALL)
	} else {
		b.grid.SetCellType(idx, pkg.EMPTY)
	}
	return nil
}

func (b *Board) ToggleWall(c Cell) error {
	idx, err := b.indexOf(c)
	if err != nil {
		return err
	}
	return b.SetWall(c, !b.grid.GetNode(idx).IsWall())
}

// SetWalls. applies every cell, stops at the first failure.
func (b *Board) SetWalls(cells []Cell) error {
	for _, c := range cells {
		if err := b.SetWall(c, true); err != nil {
			return err
		}
	}
	return nil
}

// MoveStart. drags the start marker onto c. a wall under c is cleared, the end cell is refused.
func (b *Board) MoveStart(c Cell) error {
	idx, err := b.moveTarget(c, b.end)
	if err != nil {
		return err
	}
	b.grid.SetCellType(b.start, pkg.EMPTY)
	b.grid.SetCellType(idx, pkg.START)
	b.start = idx
	return nil
}

func (b *Board) MoveEnd(c Cell) error {
	idx, err := b.moveTarget(c, b.start)
	if err != nil {
		return err
	}
	b.grid.SetCellType(b.end, pkg.EMPTY)
	b.grid.SetCellType(idx, pkg.END)
	b.end = idx
	return nil
}

func (b *Board) moveTarget(c Cell, other da.Index) (da.Index, error) {
	idx, err := b.indexOf(c)
	if err != nil {
		return 0, err
	}
	if idx == other {
		return 0, util.WrapErrorf(ErrOccupied, util.ErrBadParamInput, "cell %s holds the other marker", c)
	}
	return idx, nil
}

// Reset. clears search state, keeps walls and markers.
func (b *Board) Reset() {
	b.grid.ResetSearchState()
}

// ClearWalls. clears walls and search state.
func (b *Board) ClearWalls() {
	for _, idx := range b.grid.CellsOfType(pkg.WALL) {
		b.grid.SetCellType(idx, pkg.EMPTY)
	}
	b.grid.ResetSearchState()
}

// Clone. independent copy, used to run several algorithms on the same layout.
func (b *Board) Clone() *Board {
	return &Board{grid: b.grid.Clone(), start: b.start, end: b.end}
}

// Layout. inverse of FromLayout.
func (b *Board) Layout() []string {
	return b.render(false)
}

// Render. Layout with visited cells as '+' and path cells as '*', markers are always shown.
func (b *Board) Render() []string {
	return b.render(true)
}

func (b *Board) render(withSearch bool) []string {
	lines := make([]string, b.grid.Rows())
	var sb strings.Builder
	for r := 0; r < b.grid.Rows(); r++ {
		sb.Reset()
		for c := 0; c < b.grid.Cols(); c++ {
			node := b.grid.GetNodeAt(r, c)
			switch {
			case node.GetCellType() == pkg.START:
				sb.WriteByte(LAYOUT_START)
			case node.GetCellType() == pkg.END:
				sb.WriteByte(LAYOUT_END)
			case node.IsWall():
				sb.WriteByte(LAYOUT_WALL)
			case withSearch && node.IsPath():
				sb.WriteByte(LAYOUT_PATH)
			case withSearch && node.IsVisited():
				sb.WriteByte(LAYOUT_VISITED)
			default:
				sb.WriteByte(LAYOUT_EMPTY)
			}
		}
		lines[r] = sb.String()
	}
	return lines
}

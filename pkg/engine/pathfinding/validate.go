package pathfinding

import (
	"github.com/lintang-b-s/algotrace/pkg"
	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/util"
)

// ValidateGrid. the grid must be non-empty, hold exactly one start and one end cell, and start/end must point at
// those cells.
func ValidateGrid(grid *da.Grid, start, end da.Index) error {
	if grid == nil || grid.NumberOfNodes() == 0 {
		return invalidGrid("grid is empty")
	}
	if !grid.IsValidIndex(start) {
		return invalidGrid("start index %d is out of bounds for a %dx%d grid", start, grid.Rows(), grid.Cols())
	}
	if !grid.IsValidIndex(end) {
		return invalidGrid("end index %d is out of bounds for a %dx%d grid", end, grid.Rows(), grid.Cols())
	}
	if start == end {
		return invalidGrid("start and end must be different cells")
	}

	starts := grid.CellsOfType(pkg.START)
	if len(starts) != 1 {
		return invalidGrid("grid must contain exactly one start cell, found %d", len(starts))
	}
	ends := grid.CellsOfType(pkg.END)
	if len(ends) != 1 {
		return invalidGrid("grid must contain exactly one end cell, found %d", len(ends))
	}
	if starts[0] != start {
		sr, sc := grid.Coordinate(start)
		return invalidGrid("cell (%d, %d) is not the start cell", sr, sc)
	}
	if ends[0] != end {
		er, ec := grid.Coordinate(end)
		return invalidGrid("cell (%d, %d) is not the end cell", er, ec)
	}
	return nil
}

func invalidGrid(format string, a ...interface{}) error {
	return util.WrapErrorf(ErrInvalidGrid, util.ErrBadParamInput, format, a...)
}

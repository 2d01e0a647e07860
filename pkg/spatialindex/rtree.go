package spatialindex

import (
	"github.com/lintang-b-s/algotrace/pkg"
	"github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/util"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr         *rtree.RTreeG[OpenCell]
	rows, cols int
}

// OpenCell. a cell start/end markers may be placed on.
// stored as a degenerate box [row, col]..[row, col].
type OpenCell struct {
	row, col int
	index    datastructure.Index
}

func (oc OpenCell) GetRow() int {
	return oc.row
}

func (oc OpenCell) GetCol() int {
	return oc.col
}

func (oc OpenCell) GetIndex() datastructure.Index {
	return oc.index
}

func newOpenCell(row, col int, index datastructure.Index) OpenCell {
	return OpenCell{
		row:   row,
		col:   col,
		index: index,
	}
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[OpenCell]
	return &Rtree{
		tr: &tr,
	}
}

// Build. index every empty cell of grid. walls and the start/end markers are left out.
func (rt *Rtree) Build(grid *datastructure.Grid, log *zap.Logger) {
	rt.rows, rt.cols = grid.Rows(), grid.Cols()
	count := 0
	for idx := datastructure.Index(0); int(idx) < grid.NumberOfNodes(); idx++ {
		node := grid.GetNode(idx)
		if node.GetCellType() != pkg.EMPTY {
			continue
		}
		r, c := node.GetRow(), node.GetCol()
		point := [2]float64{float64(r), float64(c)}
		rt.tr.Insert(point, point, newOpenCell(r, c, idx))
		count++
	}
	log.Debug("open cell r-tree built", zap.Int("rows", rt.rows), zap.Int("cols", rt.cols),
		zap.Int("openCells", count))
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchWithinRadius. all open cells in the square of chebyshev radius around (row, col).
func (rt *Rtree) SearchWithinRadius(row, col, radius int) []OpenCell {
	lower := [2]float64{float64(row - radius), float64(col - radius)}
	upper := [2]float64{float64(row + radius), float64(col + radius)}

	results := make([]OpenCell, 0, 8)
	rt.tr.Search(lower, upper,
		func(min, max [2]float64, data OpenCell) bool {
			results = append(results, data)
			return true
		})
	return results
}

// Nearest. open cell with the smallest manhattan distance to (row, col), ties go to the lower row-major index.
func (rt *Rtree) Nearest(row, col int) (OpenCell, bool) {
	if rt.tr.Len() == 0 {
		return OpenCell{}, false
	}

	maxRadius := rt.rows + rt.cols
	for radius := 0; radius <= maxRadius; radius++ {
		candidates := rt.SearchWithinRadius(row, col, radius)
		if len(candidates) == 0 {
			continue
		}
		// a closer cell (by manhattan distance) can sit outside the square, widen it once to the best distance found
		best := nearestOf(candidates, row, col)
		bestDist := util.ManhattanDistance(row, col, best.row, best.col)
		if bestDist > radius {
			best = nearestOf(rt.SearchWithinRadius(row, col, bestDist), row, col)
		}
		return best, true
	}
	return OpenCell{}, false
}

func nearestOf(cells []OpenCell, row, col int) OpenCell {
	best := cells[0]
	bestDist := util.ManhattanDistance(row, col, best.row, best.col)
	for _, c := range cells[1:] {
		d := util.ManhattanDistance(row, col, c.row, c.col)
		if d < bestDist || (d == bestDist && c.index < best.index) {
			best, bestDist = c, d
		}
	}
	return best
}

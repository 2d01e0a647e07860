package pathfinding

import (
	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/util"
)

// ReconstructPath. follows back-references from end until a node without one, returns the chain in start->end
// order and flags every node on it as path.
// an end node that was never reached has no back-reference, the result is then just [end]: a path of length <= 1
// after a non-empty visit order means "no path".
func ReconstructPath(grid *da.Grid, end da.Index) []da.Index {
	reversed := make([]da.Index, 0)
	cur := end
	for {
		reversed = append(reversed, cur)
		node := grid.GetNode(cur)
		if !node.HasPrevious() || len(reversed) > grid.NumberOfNodes() {
			break
		}
		cur = node.GetPrevious()
	}

	path := util.ReverseG(reversed)
	if len(path) > 1 {
		for _, idx := range path {
			grid.GetNode(idx).MarkPath()
		}
	}
	return path
}

// PathFound. true when path connects two distinct cells.
func PathFound(path []da.Index) bool {
	return len(path) > 1
}

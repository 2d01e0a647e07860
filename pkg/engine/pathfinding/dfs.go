package pathfinding

import (
	"github.com/lintang-b-s/algotrace/pkg"
	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
)

type dfsEntry struct {
	node   da.Index
	parent da.Index
}

// DFSSearch. iterative depth-first search. neighbors are pushed right, left, down, up so they are explored up, down,
// left, right. a node takes its back-reference and distance from the stack entry that visits it, which is always
// an already visited node.
type DFSSearch struct {
	grid *da.Grid

	stack      *da.Stack[dfsEntry]
	visitOrder []da.Index
	neighbors  []da.Index
}

func NewDFS(grid *da.Grid) *DFSSearch {
	return &DFSSearch{
		grid:       grid,
		stack:      da.NewStack[dfsEntry](grid.NumberOfNodes()),
		visitOrder: make([]da.Index, 0),
		neighbors:  make([]da.Index, 0, 4),
	}
}

func (df *DFSSearch) Traverse(start, end da.Index) []da.Index {
	df.stack.Push(dfsEntry{node: start, parent: da.INVALID_NODE_ID})

	for !df.stack.IsEmpty() {
		entry, _ := df.stack.Pop()
		u := entry.node
		uNode := df.grid.GetNode(u)
		if uNode.IsVisited() {
			continue
		}

		uNode.Visit()
		if entry.parent == da.INVALID_NODE_ID {
			uNode.SetDistance(0)
		} else {
			uNode.SetDistance(df.grid.GetNode(entry.parent).GetDistance() + pkg.UNIT_EDGE_WEIGHT)
			uNode.SetPrevious(entry.parent)
		}
		df.visitOrder = append(df.visitOrder, u)

		if u == end {
			break
		}

		df.neighbors = unvisitedNeighbors(df.grid, u, df.neighbors)
		for i := len(df.neighbors) - 1; i >= 0; i-- {
			v := df.neighbors[i]
			if df.grid.GetNode(v).IsWall() {
				continue
			}
			df.stack.Push(dfsEntry{node: v, parent: u})
		}
	}

	return df.visitOrder
}

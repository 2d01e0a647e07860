package pathfinding

import (
	"github.com/lintang-b-s/algotrace/pkg"
	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
)

// BFSSearch. strict FIFO. nodes are flagged visited when enqueued so nothing is enqueued twice, the visit order is the
// dequeue order.
type BFSSearch struct {
	grid *da.Grid

	queue      *da.Queue[da.Index]
	visitOrder []da.Index
	neighbors  []da.Index
}

func NewBFS(grid *da.Grid) *BFSSearch {
	return &BFSSearch{
		grid:       grid,
		queue:      da.NewQueue[da.Index](grid.Cols() + grid.Rows()),
		visitOrder: make([]da.Index, 0),
		neighbors:  make([]da.Index, 0, 4),
	}
}

func (b *BFSSearch) Traverse(start, end da.Index) []da.Index {
	startNode := b.grid.GetNode(start)
	startNode.SetDistance(0)
	startNode.Visit()
	b.queue.Push(start)

	for !b.queue.IsEmpty() {
		u, _ := b.queue.Pop()
		b.visitOrder = append(b.visitOrder, u)

		if u == end {
			break
		}

		uNode := b.grid.GetNode(u)
		b.neighbors = unvisitedNeighbors(b.grid, u, b.neighbors)
		for _, v := range b.neighbors {
			vNode := b.grid.GetNode(v)
			if vNode.IsWall() {
				continue
			}
			vNode.SetDistance(uNode.GetDistance() + pkg.UNIT_EDGE_WEIGHT)
			vNode.SetPrevious(u)
			vNode.Visit()
			b.queue.Push(v)
		}
	}

	return b.visitOrder
}

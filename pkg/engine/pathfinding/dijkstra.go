package pathfinding

import (
	"github.com/lintang-b-s/algotrace/pkg"
	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
)

// Dijkstra. uniform-cost search over the grid.
//
// neighbor labels are overwritten unconditionally (distance = current + 1, previous = current) instead of the
// textbook min-relaxation. with unit weights on a grid every unvisited neighbor of a node settled at distance d has
// true distance d+1, so the overwrite only ever moves the back-reference to the most recently settled parent.
//
// only labelled nodes live in the heap, an empty heap is the same as "minimum remaining distance is infinite".
// ties on distance are broken by the round in which the label changed, then by row-major index.
type Dijkstra struct {
	grid *da.Grid

	pq        *da.MinHeap[da.Index]
	heapNodes []*da.PriorityQueueNode[da.Index]

	visitOrder []da.Index
	neighbors  []da.Index
	round      int
}

func NewDijkstra(grid *da.Grid) *Dijkstra {
	pq := da.NewFourAryHeap[da.Index]()
	pq.Preallocate(grid.NumberOfNodes())
	return &Dijkstra{
		grid:       grid,
		pq:         pq,
		heapNodes:  make([]*da.PriorityQueueNode[da.Index], grid.NumberOfNodes()),
		visitOrder: make([]da.Index, 0),
		neighbors:  make([]da.Index, 0, 4),
	}
}

func (d *Dijkstra) Traverse(start, end da.Index) []da.Index {
	d.grid.GetNode(start).SetDistance(0)
	d.label(start, 0)

	for !d.pq.IsEmpty() {
		hNode, _ := d.pq.ExtractMin()
		u := hNode.GetItem()
		uNode := d.grid.GetNode(u)

		uNode.Visit()
		d.visitOrder = append(d.visitOrder, u)

		if u == end {
			break
		}

		d.round++
		d.updateUnvisitedNeighbors(u, uNode)
	}

	return d.visitOrder
}

func (d *Dijkstra) updateUnvisitedNeighbors(u da.Index, uNode *da.Node) {
	d.neighbors = unvisitedNeighbors(d.grid, u, d.neighbors)
	for _, v := range d.neighbors {
		vNode := d.grid.GetNode(v)
		if vNode.IsWall() {
			continue
		}
		vNode.SetDistance(uNode.GetDistance() + pkg.UNIT_EDGE_WEIGHT)
		vNode.SetPrevious(u)
		d.label(v, vNode.GetDistance())
	}
}

// label. insert v into the heap or move it to its new rank. an unchanged rank keeps its old position.
func (d *Dijkstra) label(v da.Index, rank float64) {
	hNode := d.heapNodes[v]
	if hNode == nil {
		hNode = da.NewPriorityQueueNodeWithOrder(rank, d.round, int(v), v)
		d.heapNodes[v] = hNode
		d.pq.Insert(hNode)
		return
	}
	if hNode.InHeap() && hNode.GetRank() != rank {
		d.pq.Update(hNode, rank, d.round)
	}
}

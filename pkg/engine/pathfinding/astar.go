package pathfinding

import (
	"github.com/lintang-b-s/algotrace/pkg"
	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
)

// Astar. A* keyed on fScore = distance + heuristic, heuristic is the manhattan distance to the end node.
// unlike Dijkstra, neighbors are only updated when the tentative distance strictly improves.
type Astar struct {
	grid *da.Grid

	pq        *da.MinHeap[da.Index]
	heapNodes []*da.PriorityQueueNode[da.Index]

	visitOrder []da.Index
	neighbors  []da.Index
	round      int
}

func NewAstar(grid *da.Grid) *Astar {
	pq := da.NewFourAryHeap[da.Index]()
	pq.Preallocate(grid.NumberOfNodes())
	return &Astar{
		grid:       grid,
		pq:         pq,
		heapNodes:  make([]*da.PriorityQueueNode[da.Index], grid.NumberOfNodes()),
		visitOrder: make([]da.Index, 0),
		neighbors:  make([]da.Index, 0, 4),
	}
}

func (as *Astar) Traverse(start, end da.Index) []da.Index {
	startNode := as.grid.GetNode(start)
	startNode.SetDistance(0)
	startNode.SetHeuristic(manhattan(as.grid, start, end))
	startNode.SetFScore(startNode.GetDistance() + startNode.GetHeuristic())
	as.label(start, startNode.GetFScore())

	for !as.pq.IsEmpty() {
		hNode, _ := as.pq.ExtractMin()
		u := hNode.GetItem()
		uNode := as.grid.GetNode(u)

		uNode.Visit()
		as.visitOrder = append(as.visitOrder, u)

		if u == end {
			break
		}

		as.round++
		as.updateUnvisitedNeighbors(u, uNode, end)
	}

	return as.visitOrder
}

func (as *Astar) updateUnvisitedNeighbors(u da.Index, uNode *da.Node, end da.Index) {
	as.neighbors = unvisitedNeighbors(as.grid, u, as.neighbors)
	for _, v := range as.neighbors {
		vNode := as.grid.GetNode(v)
		if vNode.IsWall() {
			continue
		}

		tentativeDistance := uNode.GetDistance() + pkg.UNIT_EDGE_WEIGHT
		if tentativeDistance >= vNode.GetDistance() {
			// not better
			continue
		}

		vNode.SetDistance(tentativeDistance)
		vNode.SetHeuristic(manhattan(as.grid, v, end))
		vNode.SetFScore(vNode.GetDistance() + vNode.GetHeuristic())
		vNode.SetPrevious(u)
		as.label(v, vNode.GetFScore())
	}
}

func (as *Astar) label(v da.Index, rank float64) {
	hNode := as.heapNodes[v]
	if hNode == nil {
		hNode = da.NewPriorityQueueNodeWithOrder(rank, as.round, int(v), v)
		as.heapNodes[v] = hNode
		as.pq.Insert(hNode)
		return
	}
	if hNode.InHeap() && hNode.GetRank() != rank {
		as.pq.Update(hNode, rank, as.round)
	}
}

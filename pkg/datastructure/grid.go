package datastructure

import (
	"math"

	"github.com/lintang-b-s/algotrace/pkg"
)

type Index uint32

const (
	INVALID_NODE_ID Index = math.MaxUint32
)

// Node. one grid cell. search metadata is owned by the grid arena and mutated in place by the traversal algorithms.
type Node struct {
	row, col  int
	cellType  pkg.CellType
	distance  float64
	heuristic float64
	fScore    float64
	visited   bool
	path      bool
	previous  Index // back-reference into the same arena, INVALID_NODE_ID if null
}

func newNode(row, col int) Node {
	n := Node{row: row, col: col, cellType: pkg.EMPTY}
	n.resetSearchState()
	return n
}

func (n *Node) resetSearchState() {
	n.distance = pkg.INF_DISTANCE
	n.heuristic = pkg.INF_DISTANCE
	n.fScore = pkg.INF_DISTANCE
	n.visited = false
	n.path = false
	n.previous = INVALID_NODE_ID
}

func (n *Node) GetRow() int {
	return n.row
}

func (n *Node) GetCol() int {
	return n.col
}

func (n *Node) GetCellType() pkg.CellType {
	return n.cellType
}

func (n *Node) IsWall() bool {
	return n.cellType == pkg.WALL
}

func (n *Node) GetDistance() float64 {
	return n.distance
}

func (n *Node) SetDistance(d float64) {
	n.distance = d
}

func (n *Node) GetHeuristic() float64 {
	return n.heuristic
}

func (n *Node) SetHeuristic(h float64) {
	n.heuristic = h
}

func (n *Node) GetFScore() float64 {
	return n.fScore
}

func (n *Node) SetFScore(f float64) {
	n.fScore = f
}

func (n *Node) IsVisited() bool {
	return n.visited
}

func (n *Node) Visit() {
	n.visited = true
}

func (n *Node) IsPath() bool {
	return n.path
}

func (n *Node) MarkPath() {
	n.path = true
}

func (n *Node) GetPrevious() Index {
	return n.previous
}

func (n *Node) HasPrevious() bool {
	return n.previous != INVALID_NODE_ID
}

func (n *Node) SetPrevious(prev Index) {
	n.previous = prev
}

// Grid. rows x cols arena of nodes stored row-major, node (r, c) lives at index r*cols + c.
type Grid struct {
	rows, cols int
	nodes      []Node
}

// NewGrid. every cell empty, every search field at its sentinel value.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	nodes := make([]Node, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			nodes[r*cols+c] = newNode(r, c)
		}
	}
	return &Grid{rows: rows, cols: cols, nodes: nodes}
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) NumberOfNodes() int {
	return len(g.nodes)
}

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) IsValidIndex(idx Index) bool {
	return int(idx) < len(g.nodes)
}

func (g *Grid) IndexOf(row, col int) Index {
	return Index(row*g.cols + col)
}

func (g *Grid) Coordinate(idx Index) (int, int) {
	return int(idx) / g.cols, int(idx) % g.cols
}

func (g *Grid) GetNode(idx Index) *Node {
	return &g.nodes[idx]
}

func (g *Grid) GetNodeAt(row, col int) *Node {
	return &g.nodes[g.IndexOf(row, col)]
}

func (g *Grid) SetCellType(idx Index, cellType pkg.CellType) {
	g.nodes[idx].cellType = cellType
}

// CellsOfType. all indices holding cellType, in row-major order.
func (g *Grid) CellsOfType(cellType pkg.CellType) []Index {
	cells := make([]Index, 0)
	for i := range g.nodes {
		if g.nodes[i].cellType == cellType {
			cells = append(cells, Index(i))
		}
	}
	return cells
}

// ForNeighborsOf. calls handle for the in-bounds orthogonal neighbors of idx, always in the order up, down, left, right.
func (g *Grid) ForNeighborsOf(idx Index, handle func(neighbor Index)) {
	row, col := g.Coordinate(idx)
	if row > 0 {
		handle(idx - Index(g.cols))
	}
	if row < g.rows-1 {
		handle(idx + Index(g.cols))
	}
	if col > 0 {
		handle(idx - 1)
	}
	if col < g.cols-1 {
		handle(idx + 1)
	}
}

// ResetSearchState. distance/heuristic/fScore back to +inf, visited/path flags cleared, back-references nulled.
// cell types are kept.
func (g *Grid) ResetSearchState() {
	for i := range g.nodes {
		g.nodes[i].resetSearchState()
	}
}

// Clone. deep copy, search state included. used to give concurrent runs their own arena.
func (g *Grid) Clone() *Grid {
	nodes := make([]Node, len(g.nodes))
	copy(nodes, g.nodes)
	return &Grid{rows: g.rows, cols: g.cols, nodes: nodes}
}

func (g *Grid) CountVisited() int {
	count := 0
	for i := range g.nodes {
		if g.nodes[i].visited {
			count++
		}
	}
	return count
}

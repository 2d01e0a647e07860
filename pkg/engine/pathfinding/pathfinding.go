// Package pathfinding records grid searches (Dijkstra, A*, BFS, DFS) as an ordered visit sequence.
//
// The grid is an arena of nodes addressed by row-major index. A search takes exclusive ownership of the arena for
// the duration of one call: it mutates distance, heuristic, fScore, visited and back-reference fields in place and
// returns the order in which nodes were visited. Resetting that state between runs belongs to the grid builder.
//
// Neighbors are always explored in the order up, down, left, right. Walls are never visited, never labelled and
// never expanded. Every search stops as soon as the end node is visited, so whenever a path exists the end node is
// the last element of the visit order.
package pathfinding

import (
	"errors"
	"strings"

	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/util"
)

var (
	ErrUnknownAlgorithm = errors.New("pathfinding: unknown algorithm")
	ErrInvalidGrid      = errors.New("pathfinding: invalid grid")
)

type Algorithm uint8

const (
	DIJKSTRA Algorithm = iota
	ASTAR
	BFS
	DFS
)

var algorithmNames = [...]string{
	DIJKSTRA: "dijkstra",
	ASTAR:    "astar",
	BFS:      "bfs",
	DFS:      "dfs",
}

func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return "unknown"
}

func (a Algorithm) IsValid() bool {
	return int(a) < len(algorithmNames)
}

func Algorithms() []Algorithm {
	return []Algorithm{DIJKSTRA, ASTAR, BFS, DFS}
}

func AlgorithmNames() []string {
	names := make([]string, len(algorithmNames))
	copy(names, algorithmNames[:])
	return names
}

// ParseAlgorithm. case-insensitive, "a*" and "a-star" are accepted for astar.
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "a*", "a-star", "a_star":
		normalized = "astar"
	}
	for i, n := range algorithmNames {
		if n == normalized {
			return Algorithm(i), nil
		}
	}
	return 0, util.WrapErrorf(ErrUnknownAlgorithm, util.ErrBadParamInput, "unknown pathfinding algorithm %q", name)
}

// Traverser. one search over one grid arena.
type Traverser interface {
	Traverse(start, end da.Index) []da.Index
}

func NewTraverser(algorithm Algorithm, grid *da.Grid) (Traverser, error) {
	switch algorithm {
	case DIJKSTRA:
		return NewDijkstra(grid), nil
	case ASTAR:
		return NewAstar(grid), nil
	case BFS:
		return NewBFS(grid), nil
	case DFS:
		return NewDFS(grid), nil
	default:
		return nil, util.WrapErrorf(ErrUnknownAlgorithm, util.ErrBadParamInput, "unknown pathfinding algorithm %d", algorithm)
	}
}

// Traverse. validates the grid, then runs algorithm from start to end and returns the visit order.
// nothing is mutated when an error is returned.
func Traverse(algorithm Algorithm, grid *da.Grid, start, end da.Index) ([]da.Index, error) {
	if !algorithm.IsValid() {
		return nil, util.WrapErrorf(ErrUnknownAlgorithm, util.ErrBadParamInput, "unknown pathfinding algorithm %d", algorithm)
	}
	if err := ValidateGrid(grid, start, end); err != nil {
		return nil, err
	}
	traverser, err := NewTraverser(algorithm, grid)
	if err != nil {
		return nil, err
	}
	return traverser.Traverse(start, end), nil
}

func TraverseByName(name string, grid *da.Grid, start, end da.Index) ([]da.Index, error) {
	algorithm, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return Traverse(algorithm, grid, start, end)
}

// unvisitedNeighbors. in-bounds orthogonal neighbors (up, down, left, right) that are not visited yet.
// the result reuses buf.
func unvisitedNeighbors(grid *da.Grid, u da.Index, buf []da.Index) []da.Index {
	buf = buf[:0]
	grid.ForNeighborsOf(u, func(v da.Index) {
		if !grid.GetNode(v).IsVisited() {
			buf = append(buf, v)
		}
	})
	return buf
}

func manhattan(grid *da.Grid, u, v da.Index) float64 {
	ur, uc := grid.Coordinate(u)
	vr, vc := grid.Coordinate(v)
	return float64(util.ManhattanDistance(ur, uc, vr, vc))
}

package pkg

import "math"

// enum of cell_type
type CellType uint8

const (
	EMPTY CellType = iota
	WALL
	START
	END
)

func (c CellType) String() string {
	switch c {
	case EMPTY:
		return "empty"
	case WALL:
		return "wall"
	case START:
		return "start"
	case END:
		return "end"
	default:
		return "unknown"
	}
}

var (
	INF_DISTANCE = math.Inf(1) // unreachable sentinel
)

const (
	UNIT_EDGE_WEIGHT float64 = 1.0

	DEFAULT_GRID_ROWS = 20
	DEFAULT_GRID_COLS = 30

	DEFAULT_ARRAY_SIZE   = 50
	DEFAULT_ARRAY_MIN    = 5
	DEFAULT_ARRAY_MAX    = 500
	DEFAULT_WALL_DENSITY = 0.3
)

package tracecodec

import (
	"math"

	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/util"
	"github.com/twpayne/go-polyline"
)

// EncodePath. path cells as an encoded polyline of (row, col) pairs.
func EncodePath(grid *da.Grid, path []da.Index) string {
	coords := make([][]float64, 0, len(path))
	for _, idx := range path {
		r, c := grid.Coordinate(idx)
		coords = append(coords, []float64{float64(r), float64(c)})
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodePath. inverse of EncodePath, returns (row, col) pairs.
func DecodePath(encoded string) ([][2]int, error) {
	coords, rest, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid path polyline")
	}
	if len(rest) != 0 {
		return nil, util.WrapErrorf(ErrInvalidTrace, util.ErrBadParamInput, "%d trailing bytes after path polyline", len(rest))
	}

	cells := make([][2]int, len(coords))
	for i, coord := range coords {
		cells[i] = [2]int{int(math.Round(coord[0])), int(math.Round(coord[1]))}
	}
	return cells, nil
}

package usecases

import (
	"errors"

	"github.com/lintang-b-s/algotrace/pkg/generator"
	"github.com/lintang-b-s/algotrace/pkg/gridbuilder"
	"github.com/lintang-b-s/algotrace/pkg/util"
	"go.uber.org/zap"
)

var ErrUnknownBoardKind = errors.New("usecases: unknown board kind")

const (
	BOARD_MAZE   = "maze"
	BOARD_RANDOM = "random"
	BOARD_EMPTY  = "empty"
)

type GeneratorService struct {
	log *zap.Logger
}

func NewGeneratorService(log *zap.Logger) *GeneratorService {
	return &GeneratorService{log: log}
}

func (gs *GeneratorService) RandomArray(n, min, max int, seed uint64) ([]int, error) {
	return generator.RandomArray(n, min, max, seed)
}

// GenerateBoard. rows x cols board with the markers placed like the default board, filled according to kind.
func (gs *GeneratorService) GenerateBoard(kind string, rows, cols int, density float64, seed uint64) (*gridbuilder.Board,
	error) {
	board, err := gridbuilder.NewBoard(rows, cols, gridbuilder.Cell{Row: rows / 2, Col: cols / 4},
		gridbuilder.Cell{Row: rows / 2, Col: cols - 1 - cols/4})
	if err != nil {
		return nil, err
	}

	rng := generator.NewRand(seed)
	switch kind {
	case BOARD_MAZE:
		gridbuilder.Maze(board, rng)
	case BOARD_RANDOM:
		gridbuilder.RandomWalls(board, density, rng)
	case BOARD_EMPTY:
	default:
		return nil, util.WrapErrorf(ErrUnknownBoardKind, util.ErrBadParamInput, "board kind %q", kind)
	}

	gs.log.Debug("board generated", zap.String("kind", kind), zap.Int("rows", rows), zap.Int("cols", cols),
		zap.Uint64("seed", seed), zap.Int("walls", len(board.Walls())))
	return board, nil
}

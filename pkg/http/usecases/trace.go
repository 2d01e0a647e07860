package usecases

import (
	"context"

	"github.com/lintang-b-s/algotrace/pkg/engine"
	"github.com/lintang-b-s/algotrace/pkg/gridbuilder"
	"go.uber.org/zap"
)

type TraceService struct {
	log    *zap.Logger
	engine TraceEngine
}

func NewTraceService(log *zap.Logger, engine TraceEngine) *TraceService {
	return &TraceService{
		log:    log,
		engine: engine,
	}
}

func (ts *TraceService) Sort(ctx context.Context, algorithm string, values []float64) (*engine.SortRun, error) {
	return ts.engine.Sort(ctx, algorithm, values)
}

func (ts *TraceService) CompareSort(ctx context.Context, algorithms []string, values []float64) ([]*engine.SortRun, error) {
	return ts.engine.CompareSort(ctx, algorithms, values)
}

func (ts *TraceService) Traverse(ctx context.Context, algorithm string, board *gridbuilder.Board) (*engine.PathRun, error) {
	return ts.engine.Traverse(ctx, algorithm, board)
}

func (ts *TraceService) CompareTraverse(ctx context.Context, algorithms []string, board *gridbuilder.Board) ([]*engine.PathRun,
	error) {
	return ts.engine.CompareTraverse(ctx, algorithms, board)
}

// BuildBoard. layout wins when given, otherwise an empty rows x cols board with start, end and walls.
// with snap, a start/end requested on a wall is moved to the nearest empty cell instead of clearing the wall.
func (ts *TraceService) BuildBoard(spec BoardSpec) (*gridbuilder.Board, error) {
	if len(spec.Layout) > 0 {
		return gridbuilder.FromLayout(spec.Layout)
	}

	board, err := gridbuilder.NewBoard(spec.Rows, spec.Cols, spec.Start, spec.End)
	if err != nil {
		return nil, err
	}

	wallSet := make(map[gridbuilder.Cell]struct{}, len(spec.Walls))
	for _, c := range spec.Walls {
		wallSet[c] = struct{}{}
	}
	_, startOnWall := wallSet[spec.Start]
	_, endOnWall := wallSet[spec.End]
	if !spec.Snap && (startOnWall || endOnWall) {
		// markers win over walls, like dragging a marker onto a wall
		delete(wallSet, spec.Start)
		delete(wallSet, spec.End)
	}

	for c := range wallSet {
		if c == board.StartCell() || c == board.EndCell() {
			continue
		}
		if err := board.SetWall(c, true); err != nil {
			return nil, err
		}
	}
	if spec.Snap {
		if err := ts.snapMarkers(board, spec, startOnWall, endOnWall); err != nil {
			return nil, err
		}
	}
	return board, nil
}

func (ts *TraceService) snapMarkers(board *gridbuilder.Board, spec BoardSpec, startOnWall, endOnWall bool) error {
	if startOnWall {
		cell, err := ts.snapOffWall(board, spec.Start, board.MoveStart)
		if err != nil {
			return err
		}
		ts.log.Debug("start snapped to open cell", zap.Stringer("requested", spec.Start), zap.Stringer("snapped", cell))
	}
	if endOnWall {
		cell, err := ts.snapOffWall(board, spec.End, board.MoveEnd)
		if err != nil {
			return err
		}
		ts.log.Debug("end snapped to open cell", zap.Stringer("requested", spec.End), zap.Stringer("snapped", cell))
	}
	return nil
}

// snapOffWall. move the marker to the nearest empty cell around requested, then wall requested.
func (ts *TraceService) snapOffWall(board *gridbuilder.Board, requested gridbuilder.Cell,
	move func(gridbuilder.Cell) error) (gridbuilder.Cell, error) {
	target, err := board.SnapToOpen(requested, ts.log)
	if err != nil {
		return gridbuilder.Cell{}, err
	}
	if err := move(target); err != nil {
		return gridbuilder.Cell{}, err
	}
	if err := board.SetWall(requested, true); err != nil {
		return gridbuilder.Cell{}, err
	}
	return target, nil
}

func (ts *TraceService) Limits() engine.Config {
	return ts.engine.Config()
}

type BoardSpec struct {
	Rows, Cols int
	Start, End gridbuilder.Cell
	Walls      []gridbuilder.Cell
	Layout     []string
	Snap       bool
}

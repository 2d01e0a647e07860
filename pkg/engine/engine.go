package engine

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lintang-b-s/algotrace/pkg/concurrent"
	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/engine/pathfinding"
	"github.com/lintang-b-s/algotrace/pkg/engine/sorting"
	"github.com/lintang-b-s/algotrace/pkg/gridbuilder"
	"github.com/lintang-b-s/algotrace/pkg/metrics"
	"github.com/lintang-b-s/algotrace/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var ErrLimitExceeded = errors.New("engine: input exceeds configured limit")

type Config struct {
	MaxArraySize   int
	MaxGridCells   int
	CompareWorkers int
}

// ConfigFromViper. reads MAX_ARRAY_SIZE, MAX_GRID_CELLS and COMPARE_WORKERS.
func ConfigFromViper() Config {
	return Config{
		MaxArraySize:   viper.GetInt("MAX_ARRAY_SIZE"),
		MaxGridCells:   viper.GetInt("MAX_GRID_CELLS"),
		CompareWorkers: viper.GetInt("COMPARE_WORKERS"),
	}
}

// Engine. entry point for both recorders. it parses algorithm names, enforces size limits, prepares the grid and
// records metrics, the recorders themselves stay pure.
type Engine struct {
	log *zap.Logger
	cfg Config
}

func NewEngine(log *zap.Logger, cfg Config) *Engine {
	if cfg.CompareWorkers < 1 {
		cfg.CompareWorkers = 1
	}
	return &Engine{log: log, cfg: cfg}
}

func (e *Engine) Config() Config {
	return e.cfg
}

type SortRun struct {
	ID        uuid.UUID
	Algorithm sorting.Algorithm
	Input     []float64
	Steps     []da.Step[float64]
	Sorted    []float64
	Counts    map[da.StepType]int
	Elapsed   time.Duration
}

type PathRun struct {
	ID        uuid.UUID
	Algorithm pathfinding.Algorithm
	Board     *gridbuilder.Board
	Visited   []da.Index
	Path      []da.Index
	Found     bool
	Elapsed   time.Duration
}

func (e *Engine) Sort(ctx context.Context, name string, values []float64) (*SortRun, error) {
	algorithm, err := sorting.ParseAlgorithm(name)
	if err != nil {
		metrics.ObserveFailure(metrics.KIND_SORT, name)
		return nil, err
	}
	if err := e.checkArray(values); err != nil {
		metrics.ObserveFailure(metrics.KIND_SORT, algorithm.String())
		return nil, err
	}
	return e.sort(ctx, algorithm, values)
}

func (e *Engine) sort(ctx context.Context, algorithm sorting.Algorithm, values []float64) (*SortRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	begin := time.Now()
	steps, err := sorting.Sort(algorithm, values)
	if err != nil {
		return nil, err
	}
	sorted, err := sorting.Replay(values, steps)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "%s produced an inconsistent trace", algorithm)
	}
	elapsed := time.Since(begin)

	run := &SortRun{
		ID:        uuid.New(),
		Algorithm: algorithm,
		Input:     values,
		Steps:     steps,
		Sorted:    sorted,
		Counts:    sorting.StepCounts(steps),
		Elapsed:   elapsed,
	}
	metrics.ObserveSortRun(algorithm.String(), len(steps), elapsed)
	e.log.Debug("sort trace recorded", zap.String("id", run.ID.String()), zap.String("algorithm", algorithm.String()),
		zap.Int("values", len(values)), zap.Int("steps", len(steps)), zap.Duration("elapsed", elapsed))
	return run, nil
}

// Traverse. resets the board's search state and runs the search on it. the board is mutated in place.
func (e *Engine) Traverse(ctx context.Context, name string, board *gridbuilder.Board) (*PathRun, error) {
	algorithm, err := pathfinding.ParseAlgorithm(name)
	if err != nil {
		metrics.ObserveFailure(metrics.KIND_PATH, name)
		return nil, err
	}
	if err := e.checkBoard(board); err != nil {
		metrics.ObserveFailure(metrics.KIND_PATH, algorithm.String())
		return nil, err
	}
	run, err := e.traverse(ctx, algorithm, board)
	if err != nil {
		metrics.ObserveFailure(metrics.KIND_PATH, algorithm.String())
		return nil, err
	}
	return run, nil
}

func (e *Engine) traverse(ctx context.Context, algorithm pathfinding.Algorithm, board *gridbuilder.Board) (*PathRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	board.Reset()
	begin := time.Now()
	visited, err := pathfinding.Traverse(algorithm, board.Grid(), board.Start(), board.End())
	if err != nil {
		return nil, err
	}
	path := pathfinding.ReconstructPath(board.Grid(), board.End())
	elapsed := time.Since(begin)

	run := &PathRun{
		ID:        uuid.New(),
		Algorithm: algorithm,
		Board:     board,
		Visited:   visited,
		Path:      path,
		Found:     pathfinding.PathFound(path),
		Elapsed:   elapsed,
	}
	metrics.ObservePathRun(algorithm.String(), len(visited), run.Found, elapsed)
	e.log.Debug("search recorded", zap.String("id", run.ID.String()), zap.String("algorithm", algorithm.String()),
		zap.Int("rows", board.Rows()), zap.Int("cols", board.Cols()), zap.Int("visited", len(visited)),
		zap.Int("pathLength", len(path)), zap.Bool("found", run.Found), zap.Duration("elapsed", elapsed))
	return run, nil
}

// CompareSort. every listed algorithm (all of them when names is empty) on its own copy of values, concurrently.
// results follow the order of names.
func (e *Engine) CompareSort(ctx context.Context, names []string, values []float64) ([]*SortRun, error) {
	algorithms, err := parseAll(names, sorting.Algorithms, sorting.ParseAlgorithm)
	if err != nil {
		return nil, err
	}
	if err := e.checkArray(values); err != nil {
		return nil, err
	}

	type result struct {
		run *SortRun
		err error
	}
	results := concurrent.RunAll[sorting.Algorithm, result](e.cfg.CompareWorkers, algorithms,
		func(algorithm sorting.Algorithm) result {
			input := make([]float64, len(values))
			copy(input, values)
			run, err := e.sort(ctx, algorithm, input)
			return result{run: run, err: err}
		})

	runs := make([]*SortRun, len(results))
	for i, res := range results {
		if res.err != nil {
			return nil, res.err
		}
		runs[i] = res.run
	}
	e.log.Info("sort comparison finished", zap.Int("algorithms", len(runs)), zap.Int("values", len(values)))
	return runs, nil
}

// CompareTraverse. every listed algorithm on its own clone of board, concurrently. board itself is left untouched.
func (e *Engine) CompareTraverse(ctx context.Context, names []string, board *gridbuilder.Board) ([]*PathRun, error) {
	algorithms, err := parseAll(names, pathfinding.Algorithms, pathfinding.ParseAlgorithm)
	if err != nil {
		return nil, err
	}
	if err := e.checkBoard(board); err != nil {
		return nil, err
	}

	boards := make([]*gridbuilder.Board, len(algorithms))
	for i := range algorithms {
		boards[i] = board.Clone()
	}

	type result struct {
		run *PathRun
		err error
	}
	indices := make([]int, len(algorithms))
	for i := range indices {
		indices[i] = i
	}
	results := concurrent.RunAll[int, result](e.cfg.CompareWorkers, indices, func(i int) result {
		run, err := e.traverse(ctx, algorithms[i], boards[i])
		return result{run: run, err: err}
	})

	runs := make([]*PathRun, len(results))
	for i, res := range results {
		if res.err != nil {
			return nil, res.err
		}
		runs[i] = res.run
	}
	e.log.Info("search comparison finished", zap.Int("algorithms", len(runs)), zap.Int("rows", board.Rows()),
		zap.Int("cols", board.Cols()))
	return runs, nil
}

func (e *Engine) checkArray(values []float64) error {
	if e.cfg.MaxArraySize > 0 && len(values) > e.cfg.MaxArraySize {
		return util.WrapErrorf(ErrLimitExceeded, util.ErrBadParamInput, "array of %d values exceeds the limit of %d",
			len(values), e.cfg.MaxArraySize)
	}
	return nil
}

func (e *Engine) checkBoard(board *gridbuilder.Board) error {
	if board == nil {
		return util.WrapErrorf(pathfinding.ErrInvalidGrid, util.ErrBadParamInput, "no grid given")
	}
	cells := board.Rows() * board.Cols()
	if e.cfg.MaxGridCells > 0 && cells > e.cfg.MaxGridCells {
		return util.WrapErrorf(ErrLimitExceeded, util.ErrBadParamInput, "grid of %d cells exceeds the limit of %d",
			cells, e.cfg.MaxGridCells)
	}
	return nil
}

func parseAll[A any](names []string, all func() []A, parse func(string) (A, error)) ([]A, error) {
	if len(names) == 0 {
		return all(), nil
	}
	algorithms := make([]A, 0, len(names))
	for _, name := range names {
		algorithm, err := parse(name)
		if err != nil {
			return nil, err
		}
		algorithms = append(algorithms, algorithm)
	}
	return algorithms, nil
}

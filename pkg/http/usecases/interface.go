package usecases

import (
	"context"

	"github.com/lintang-b-s/algotrace/pkg/engine"
	"github.com/lintang-b-s/algotrace/pkg/gridbuilder"
)

type TraceEngine interface {
	Sort(ctx context.Context, name string, values []float64) (*engine.SortRun, error)
	Traverse(ctx context.Context, name string, board *gridbuilder.Board) (*engine.PathRun, error)
	CompareSort(ctx context.Context, names []string, values []float64) ([]*engine.SortRun, error)
	CompareTraverse(ctx context.Context, names []string, board *gridbuilder.Board) ([]*engine.PathRun, error)
	Config() engine.Config
}

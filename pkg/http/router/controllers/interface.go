package controllers

import (
	"context"

	"github.com/lintang-b-s/algotrace/pkg/engine"
	"github.com/lintang-b-s/algotrace/pkg/gridbuilder"
	"github.com/lintang-b-s/algotrace/pkg/http/usecases"
)

type TraceService interface {
	Sort(ctx context.Context, algorithm string, values []float64) (*engine.SortRun, error)
	CompareSort(ctx context.Context, algorithms []string, values []float64) ([]*engine.SortRun, error)
	Traverse(ctx context.Context, algorithm string, board *gridbuilder.Board) (*engine.PathRun, error)
	CompareTraverse(ctx context.Context, algorithms []string, board *gridbuilder.Board) ([]*engine.PathRun, error)
	BuildBoard(spec usecases.BoardSpec) (*gridbuilder.Board, error)
	Limits() engine.Config
}

type GeneratorService interface {
	RandomArray(n, min, max int, seed uint64) ([]int, error)
	GenerateBoard(kind string, rows, cols int, density float64, seed uint64) (*gridbuilder.Board, error)
}

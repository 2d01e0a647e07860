package main

import (
	"io"

	"github.com/lintang-b-s/algotrace/pkg/engine"
	"github.com/lintang-b-s/algotrace/pkg/http/usecases"
	"github.com/lintang-b-s/algotrace/pkg/tracecodec"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type traverseOptions struct {
	algorithm string
	compare   bool
	board     boardOptions
}

func newTraverseCmd() *cobra.Command {
	opts := &traverseOptions{}
	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Record the visit order and path of a grid pathfinding algorithm",
		Example: `  algotrace traverse -a dijkstra --kind random --density 0.25 --seed 11
  algotrace traverse -a dfs --layout board.txt --out dfs.trace.bz2
  algotrace traverse --compare --kind maze`,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := opts.board.build()
			if err != nil {
				return err
			}
			if opts.compare {
				runs, err := traceEngine.CompareTraverse(cmd.Context(), nil, board)
				if err != nil {
					return err
				}
				out := make(pathComparison, len(runs))
				for i, run := range runs {
					out[i] = newPathOutput(run)
				}
				return render(cmd.OutOrStdout(), outputFormat, out)
			}

			run, err := traceEngine.Traverse(cmd.Context(), opts.algorithm, board)
			if err != nil {
				return err
			}
			if archivePath != "" {
				trace := &tracecodec.PathTrace{
					Algorithm: run.Algorithm.String(),
					Layout:    board.Layout(),
					Visited:   run.Visited,
					Path:      run.Path,
				}
				if err := tracecodec.WriteFile(archivePath, func(w io.Writer) error {
					return tracecodec.WritePathTrace(w, trace)
				}); err != nil {
					return err
				}
				log.Info("path trace archived", zap.String("file", archivePath), zap.Int("visited", len(run.Visited)))
			}
			return render(cmd.OutOrStdout(), outputFormat, newPathOutput(run))
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "dijkstra", "dijkstra, astar, bfs or dfs")
	cmd.Flags().BoolVar(&opts.compare, "compare", false, "run every pathfinding algorithm on the same board")
	cmd.Flags().StringVar(&archivePath, "out", "", "write the trace to this .trace.bz2 archive")
	opts.board.register(cmd, usecases.BOARD_RANDOM)
	return cmd
}

func newPathOutput(run *engine.PathRun) pathOutput {
	b := run.Board
	path := make([]cellOutput, len(run.Path))
	for i, idx := range run.Path {
		path[i] = toCellOutput(b.CellOf(idx))
	}
	return pathOutput{
		ID:           run.ID.String(),
		Algorithm:    run.Algorithm.String(),
		Rows:         b.Rows(),
		Cols:         b.Cols(),
		Found:        run.Found,
		VisitedCount: len(run.Visited),
		PathLength:   len(run.Path),
		Path:         path,
		PathPolyline: tracecodec.EncodePath(b.Grid(), run.Path),
		Rendered:     b.Render(),
		ElapsedMs:    float64(run.Elapsed.Microseconds()) / 1000,
	}
}

package main

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lintang-b-s/algotrace/pkg"
	"github.com/lintang-b-s/algotrace/pkg/gridbuilder"
	"github.com/lintang-b-s/algotrace/pkg/http/usecases"
	"github.com/spf13/cobra"
)

type boardOptions struct {
	layoutFile string
	kind       string
	rows, cols int
	density    float64
	seed       uint64
}

func (o *boardOptions) register(cmd *cobra.Command, defaultKind string) {
	cmd.Flags().StringVar(&o.layoutFile, "layout", "", "read the board from a layout file ('.', '#', 'S', 'E' per cell, one row per line)")
	cmd.Flags().StringVar(&o.kind, "kind", defaultKind, "generated board: empty, random or maze")
	cmd.Flags().IntVar(&o.rows, "rows", pkg.DEFAULT_GRID_ROWS, "board rows")
	cmd.Flags().IntVar(&o.cols, "cols", pkg.DEFAULT_GRID_COLS, "board columns")
	cmd.Flags().Float64Var(&o.density, "density", pkg.DEFAULT_WALL_DENSITY, "wall probability for random boards")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "random seed, 0 picks one from the clock")
}

// build. the layout file wins over the generator flags.
func (o *boardOptions) build() (*gridbuilder.Board, error) {
	if o.layoutFile != "" {
		f, err := os.Open(o.layoutFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		layout, err := readLayout(f)
		if err != nil {
			return nil, err
		}
		return gridbuilder.FromLayout(layout)
	}

	if o.seed == 0 {
		o.seed = uint64(time.Now().UnixNano())
	}
	return usecases.NewGeneratorService(log).GenerateBoard(o.kind, o.rows, o.cols, o.density, o.seed)
}

// readLayout. one row per line, blank lines and surrounding spaces ignored.
func readLayout(r io.Reader) ([]string, error) {
	layout := make([]string, 0)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		layout = append(layout, line)
	}
	return layout, sc.Err()
}

func newBoardCmd() *cobra.Command {
	opts := &boardOptions{}
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Generate a board layout (empty, random walls or a maze)",
		Example: `  algotrace board --kind maze --rows 21 --cols 41 --seed 3 > maze.txt
  algotrace traverse -a astar --layout maze.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := opts.build()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFormat, newBoardOutput(opts, board))
		},
	}
	opts.register(cmd, usecases.BOARD_MAZE)
	return cmd
}

func newBoardOutput(opts *boardOptions, board *gridbuilder.Board) boardOutput {
	kind := opts.kind
	if opts.layoutFile != "" {
		kind = "layout"
	}
	return boardOutput{
		Kind:   kind,
		Rows:   board.Rows(),
		Cols:   board.Cols(),
		Seed:   opts.seed,
		Start:  toCellOutput(board.StartCell()),
		End:    toCellOutput(board.EndCell()),
		Walls:  toCellOutputs(board.Walls()),
		Layout: board.Layout(),
	}
}

func toCellOutput(c gridbuilder.Cell) cellOutput {
	return cellOutput{Row: c.Row, Col: c.Col}
}

func toCellOutputs(cells []gridbuilder.Cell) []cellOutput {
	out := make([]cellOutput, len(cells))
	for i, c := range cells {
		out[i] = toCellOutput(c)
	}
	return out
}

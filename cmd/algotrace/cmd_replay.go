package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/gridbuilder"
	"github.com/lintang-b-s/algotrace/pkg/playback"
	"github.com/lintang-b-s/algotrace/pkg/tracecodec"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type replayOptions struct {
	delay  time.Duration
	from   int
	redraw bool
}

func newReplayCmd() *cobra.Command {
	opts := &replayOptions{}
	cmd := &cobra.Command{
		Use:   "replay <archive.trace.bz2>",
		Short: "Replay a recorded trace frame by frame",
		Example: `  algotrace replay bubble.trace.bz2 --delay 100ms
  algotrace replay astar.trace.bz2 --delay 20ms --redraw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trace, err := tracecodec.ReadFile(args[0])
			if err != nil {
				return err
			}
			pacer := playback.NewRatePacer(opts.delay)
			w := cmd.OutOrStdout()

			switch trace.Kind {
			case tracecodec.SORT_KIND:
				return replaySort(cmd, w, trace.Sort, pacer, opts)
			default:
				return replayPath(cmd, w, trace.Path, pacer, opts)
			}
		},
	}
	cmd.Flags().DurationVar(&opts.delay, "delay", 0, "time between frames, 0 prints everything at once")
	cmd.Flags().IntVar(&opts.from, "from", 0, "skip to this frame before playing")
	cmd.Flags().BoolVar(&opts.redraw, "redraw", false, "print the whole board after every path frame")
	return cmd
}

func replaySort(cmd *cobra.Command, w io.Writer, trace *tracecodec.SortTrace, pacer playback.Pacer,
	opts *replayOptions) error {
	state := playback.NewSortState(trace.Values)
	if err := state.ApplyTo(trace.Steps, opts.from); err != nil {
		return err
	}
	seq := playback.NewSequencer(trace.Steps)
	if err := seq.Seek(opts.from); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s sort, %d values, %d steps\n", trace.Algorithm, len(trace.Values), len(trace.Steps))
	fmt.Fprintf(w, "%8s  %s\n", "start", formatValues(state.Values()))
	err := seq.Play(cmd.Context(), pacer, func(i int, step da.Step[float64]) error {
		if err := state.Apply(step); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "%8d  %-18s %s\n", i, step.String(), formatSortState(state))
		return err
	})
	if err != nil {
		log.Info("replay stopped", zap.Int("position", seq.Position()), zap.Error(err))
		return err
	}
	_, err = fmt.Fprintf(w, "%8s  %s\n", "done", formatValues(state.Values()))
	return err
}

// formatSortState. values with markers: sorted positions get a trailing ', the compared pair is bracketed.
func formatSortState[T da.Number](state *playback.SortState[T]) string {
	values := state.Values()
	ci, cj, comparing := state.Comparing()
	parts := make([]string, len(values))
	for k, v := range values {
		s := fmt.Sprintf("%v", v)
		if state.IsSorted(k) {
			s += "'"
		}
		if comparing && (k == ci || k == cj) {
			s = "<" + s + ">"
		}
		parts[k] = s
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func replayPath(cmd *cobra.Command, w io.Writer, trace *tracecodec.PathTrace, pacer playback.Pacer,
	opts *replayOptions) error {
	board, err := gridbuilder.FromLayout(trace.Layout)
	if err != nil {
		return err
	}
	state := playback.NewGridState(board.Rows()*board.Cols(), trace.Visited, trace.Path)
	seq := state.Sequencer()
	if err := seq.Seek(opts.from); err != nil {
		return err
	}
	for k := 0; k < opts.from; k++ {
		f, _ := seq.At(k)
		markFrame(board, f)
	}

	fmt.Fprintf(w, "%s on %dx%d, %d visited, %d path cells\n", trace.Algorithm, board.Rows(), board.Cols(),
		len(trace.Visited), len(trace.Path))
	err = seq.Play(cmd.Context(), pacer, func(i int, f playback.Frame) error {
		markFrame(board, f)
		if opts.redraw {
			fmt.Fprintf(w, "frame %d/%d\n", i+1, seq.Len())
			_, err := fmt.Fprintln(w, strings.Join(board.Render(), "\n"))
			return err
		}
		_, err := fmt.Fprintf(w, "%8d  %-5s %s\n", i, f.Kind, board.CellOf(f.Index))
		return err
	})
	if err != nil {
		log.Info("replay stopped", zap.Int("position", seq.Position()), zap.Error(err))
		return err
	}

	if !opts.redraw {
		fmt.Fprintln(w, strings.Join(board.Render(), "\n"))
	}
	outcome := "no path"
	if state.Found() {
		outcome = fmt.Sprintf("path of %d cells", len(trace.Path))
	}
	_, err = fmt.Fprintln(w, outcome)
	return err
}

func markFrame(board *gridbuilder.Board, f playback.Frame) {
	node := board.Grid().GetNode(f.Index)
	switch f.Kind {
	case playback.VISIT_FRAME:
		node.Visit()
	case playback.PATH_FRAME:
		node.MarkPath()
	}
}

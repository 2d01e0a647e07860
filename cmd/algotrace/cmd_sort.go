package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lintang-b-s/algotrace/pkg"
	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/engine"
	"github.com/lintang-b-s/algotrace/pkg/generator"
	"github.com/lintang-b-s/algotrace/pkg/tracecodec"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type sortOptions struct {
	algorithm string
	compare   bool
	random    int
	min, max  int
	seed      uint64
	showSteps bool
}

func newSortCmd() *cobra.Command {
	opts := &sortOptions{}
	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Record the step trace of a sorting algorithm",
		Example: `  algotrace sort -a bubble 5 3 4 1 2
  algotrace sort -a merge --random 20 --seed 7 --out merge.trace.bz2
  algotrace sort --compare --random 200`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := sortInput(opts, args)
			if err != nil {
				return err
			}
			if opts.compare {
				return runSortComparison(cmd, values)
			}
			return runSort(cmd, opts, values)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "bubble", "bubble, selection, insertion, merge or quick")
	cmd.Flags().BoolVar(&opts.compare, "compare", false, "run every sorting algorithm on the same input")
	cmd.Flags().IntVar(&opts.random, "random", 0, "sort n random values instead of the arguments")
	cmd.Flags().IntVar(&opts.min, "min", pkg.DEFAULT_ARRAY_MIN, "smallest random value")
	cmd.Flags().IntVar(&opts.max, "max", pkg.DEFAULT_ARRAY_MAX, "largest random value")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	cmd.Flags().BoolVar(&opts.showSteps, "steps", true, "include every step in the output")
	cmd.Flags().StringVar(&archivePath, "out", "", "write the trace to this .trace.bz2 archive")
	return cmd
}

func sortInput(opts *sortOptions, args []string) ([]float64, error) {
	if opts.random > 0 {
		seed := opts.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		ints, err := generator.RandomArray(opts.random, opts.min, opts.max, seed)
		if err != nil {
			return nil, err
		}
		log.Debug("random input generated", zap.Int("n", opts.random), zap.Uint64("seed", seed))
		values := make([]float64, len(ints))
		for i, v := range ints {
			values[i] = float64(v)
		}
		return values, nil
	}
	return parseArgs(args)
}

func parseArgs(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d %q is not a number", i, arg)
		}
		values[i] = v
	}
	return values, nil
}

func runSort(cmd *cobra.Command, opts *sortOptions, values []float64) error {
	run, err := traceEngine.Sort(cmd.Context(), opts.algorithm, values)
	if err != nil {
		return err
	}

	if archivePath != "" {
		trace := tracecodec.NewSortTrace(run.Algorithm.String(), run.Input, run.Steps)
		if err := tracecodec.WriteFile(archivePath, func(w io.Writer) error {
			return tracecodec.WriteSortTrace(w, trace)
		}); err != nil {
			return err
		}
		log.Info("sort trace archived", zap.String("file", archivePath), zap.Int("steps", len(run.Steps)))
	}

	return render(cmd.OutOrStdout(), outputFormat, newSortOutput(run, opts.showSteps))
}

func runSortComparison(cmd *cobra.Command, values []float64) error {
	runs, err := traceEngine.CompareSort(cmd.Context(), nil, values)
	if err != nil {
		return err
	}
	out := make(sortComparison, len(runs))
	for i, run := range runs {
		out[i] = newSortOutput(run, false)
	}
	return render(cmd.OutOrStdout(), outputFormat, out)
}

func newSortOutput(run *engine.SortRun, withSteps bool) sortOutput {
	out := sortOutput{
		ID:        run.ID.String(),
		Algorithm: run.Algorithm.String(),
		Input:     run.Input,
		Sorted:    run.Sorted,
		Counts:    countsByName(run.Counts),
		ElapsedMs: float64(run.Elapsed.Microseconds()) / 1000,
	}
	if withSteps {
		out.Steps = make([]string, len(run.Steps))
		for k, s := range run.Steps {
			out.Steps[k] = s.String()
		}
	}
	return out
}

func countsByName(counts map[da.StepType]int) map[string]int {
	out := make(map[string]int, len(counts))
	for t, n := range counts {
		out[t.String()] = n
	}
	return out
}

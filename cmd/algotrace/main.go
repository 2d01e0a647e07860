package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/algotrace/pkg/engine"
	"github.com/lintang-b-s/algotrace/pkg/logger"
	"github.com/lintang-b-s/algotrace/pkg/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputFormat string
	archivePath  string

	log         *zap.Logger
	traceEngine *engine.Engine
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "algotrace",
		Short: "Record and replay step traces of sorting and grid pathfinding algorithms",
		Long: `algotrace runs a sorting or pathfinding algorithm, records every step it takes
and prints the trace, writes it to a .trace.bz2 archive or replays an archive at a chosen pace.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := util.ReadConfig(); err != nil {
				return err
			}
			if err := checkOutputFormat(outputFormat); err != nil {
				return err
			}
			var err error
			log, err = logger.New()
			if err != nil {
				return err
			}
			traceEngine = engine.NewEngine(log, engine.ConfigFromViper())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", OUTPUT_TEXT, "output format: text, json or yaml")
	rootCmd.AddCommand(newSortCmd(), newTraverseCmd(), newBoardCmd(), newReplayCmd())
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

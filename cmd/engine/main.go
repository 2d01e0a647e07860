package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/algotrace/pkg/engine"
	"github.com/lintang-b-s/algotrace/pkg/http"
	"github.com/lintang-b-s/algotrace/pkg/http/usecases"
	"github.com/lintang-b-s/algotrace/pkg/logger"
	"github.com/lintang-b-s/algotrace/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", false, "limit requests per second (RATE_LIMIT_RPS, RATE_LIMIT_BURST)")
	port         = flag.Int("port", 0, "http port, overrides API_PORT when set")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	if *port > 0 {
		viper.Set("API_PORT", *port)
	}

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	traceEngine := engine.NewEngine(logger, engine.ConfigFromViper())

	api := http.NewServer(logger)

	traceService := usecases.NewTraceService(logger, traceEngine)
	generatorService := usecases.NewGeneratorService(logger)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, *useRateLimit, traceService, generatorService)

	signal := http.GracefulShutdown()

	logger.Info("algotrace server stopping", zap.String("signal", signal.String()))
	cleanup()
	if err := api.Wait(); err != nil && err != context.Canceled {
		logger.Error("api stopped with error", zap.Error(err))
	}
	logger.Info("algotrace server stopped")
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}

package main

import (
	"context"
	"flag"

	"github.com/kashi-pulse/kashipath/pkg/datastructure"
	"github.com/kashi-pulse/kashipath/pkg/engine"
	"github.com/kashi-pulse/kashipath/pkg/http"
	"github.com/kashi-pulse/kashipath/pkg/http/usecases"
	"github.com/kashi-pulse/kashipath/pkg/logger"
	"github.com/kashi-pulse/kashipath/pkg/util"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", false, "enable per-client rate limiting on the API")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Warn("config file not loaded, using defaults", zap.Error(err))
	}

	seed, err := datastructure.LoadSeedTopology()
	if err != nil {
		panic(err)
	}

	pathEngine, err := engine.NewEngine(seed, logger)
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)

	navigationService := usecases.NewNavigationService(logger, pathEngine)
	governanceService := usecases.NewGovernanceService(logger, pathEngine)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, *useRateLimit, navigationService, governanceService)

	signal := http.GracefulShutdown()

	logger.Info("Kashi-Pulse Path Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}

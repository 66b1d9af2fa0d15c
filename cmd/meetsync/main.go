// Package main wires together the meet-sync binary.
//
// The binary performs exactly one sync pass and exits; an external scheduler
// (cron, systemd timer) is expected to invoke it on a cadence or on demand.
// Exit code 0 means the run completed, including runs with contained
// per-record failures; a non-zero exit signals a fatal error the scheduler
// should surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/liftwatch/meet-sync/internal/app"
	"github.com/liftwatch/meet-sync/internal/config"
	"github.com/liftwatch/meet-sync/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfgPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		return 1
	}
	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		return 1
	}
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("service init failed", zap.Error(err))
		return 1
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		logger.Error("sync run failed", zap.Error(err))
		return 1
	}
	return 0
}

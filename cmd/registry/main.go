package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/team-registry/internal/app"
	"github.com/riskibarqy/team-registry/internal/config"
	"github.com/riskibarqy/team-registry/internal/observability"
	"github.com/riskibarqy/team-registry/internal/platform/logging"
	"go.opentelemetry.io/otel"
)

const (
	exitOK       = 0
	exitFailed   = 1
	exitRejected = 2
)

func main() {
	os.Exit(run(os.Stdout))
}

// run writes the report to stdout and returns the process exit code. Every
// deferred cleanup has finished by the time main exits.
func run(stdout io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return exitFailed
	}

	logger := logging.NewJSON(cfg.LogLevel)
	if cfg.AppEnv == config.EnvDev {
		logger = logging.NewConsole(cfg.LogLevel)
	}
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init tracing", "error", err)
		return exitFailed
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("shutdown tracing", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, span := otel.Tracer("team-registry/cmd/registry").Start(ctx, "registry.run")
	defer span.End()

	result, err := app.New(cfg, logger).Run(ctx, stdout)
	if err != nil {
		logger.ErrorContext(ctx, "registry run failed", "error", err)
		return exitFailed
	}
	if len(result.Failures) > 0 {
		logger.WarnContext(ctx, "seed finished with rejected items", "failures", len(result.Failures))
		return exitRejected
	}

	return exitOK
}

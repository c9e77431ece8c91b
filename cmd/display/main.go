package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/court-score-service/internal/client"
	"github.com/preston-bernstein/court-score-service/internal/config"
	"github.com/preston-bernstein/court-score-service/internal/display"
	"github.com/preston-bernstein/court-score-service/internal/domain/match"
	"github.com/preston-bernstein/court-score-service/internal/logging"
	"github.com/preston-bernstein/court-score-service/internal/metrics"
	"github.com/preston-bernstein/court-score-service/internal/poller"
	"github.com/preston-bernstein/court-score-service/internal/timeutil"
)

const (
	appVersion  = "dev"
	clientName  = "display"
	serviceName = "court-score-display"

	metricsShutdownTimeout = 5 * time.Second
)

func main() {
	if os.Getenv("SKIP_DISPLAY_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
		Output:  os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg.Clients, logger, os.Stdout); err != nil {
		logging.Error(logger, "display stopped", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.ClientConfig, logger *slog.Logger, out io.Writer) error {
	telemetry := cfg.Metrics.Telemetry()
	if telemetry.ServiceName == "" {
		telemetry.ServiceName = serviceName
	}
	recorder, metricsHandler, shutdownMetrics, err := metrics.Setup(ctx, telemetry)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		recorder, metricsHandler = metrics.NewRecorder(), nil
		shutdownMetrics = func(context.Context) error { return nil }
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := shutdownMetrics(shutdownCtx); err != nil {
			logging.Warn(logger, "metrics shutdown failed", logging.FieldError, err)
		}
	}()

	cl := client.New(client.Config{
		BaseURL:  cfg.ScoreURL,
		Timeout:  cfg.Timeout,
		Name:     clientName,
		Recorder: recorder,
	})

	board := display.New(match.Defaults(), display.NewTextRenderer(out), display.Options{
		Interval: cfg.DisplayRedraw,
		Location: timeutil.ResolveLocation(cfg.DisplayTimezone),
		Logger:   logger,
	})
	plr := poller.New(clientName, cl, board, logger, recorder, cfg.DisplayPoll)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return plr.Run(gctx)
	})
	g.Go(func() error {
		return board.Run(gctx)
	})
	if metricsHandler != nil && telemetry.Port != "" {
		g.Go(func() error {
			// A metrics listener failure leaves the client running.
			if err := metrics.Serve(gctx, ":"+telemetry.Port, metricsHandler); err != nil {
				logging.Warn(logger, "metrics listener stopped", logging.FieldError, err)
			}
			return nil
		})
	}
	return g.Wait()
}

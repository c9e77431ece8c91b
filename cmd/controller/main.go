package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/court-score-service/internal/client"
	"github.com/preston-bernstein/court-score-service/internal/config"
	"github.com/preston-bernstein/court-score-service/internal/controller"
	"github.com/preston-bernstein/court-score-service/internal/domain/match"
	"github.com/preston-bernstein/court-score-service/internal/logging"
	"github.com/preston-bernstein/court-score-service/internal/metrics"
	"github.com/preston-bernstein/court-score-service/internal/poller"
)

const (
	appVersion  = "dev"
	clientName  = "controller"
	serviceName = "court-score-controller"

	metricsShutdownTimeout = 5 * time.Second
)

func main() {
	if os.Getenv("SKIP_CONTROLLER_RUN") == "1" {
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

	if err := run(ctx, cfg.Clients, logger, os.Stdin, os.Stdout); err != nil {
		logging.Error(logger, "controller stopped", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.ClientConfig, logger *slog.Logger, in io.Reader, out io.Writer) error {
	var court match.Side
	if cfg.ControllerCourt != "" {
		side, err := match.ParseSide(cfg.ControllerCourt)
		if err != nil {
			return err
		}
		court = side
	}

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

	initial, err := cl.Read(ctx)
	if err != nil {
		logging.Warn(logger, "initial read failed, starting from defaults",
			slog.String(logging.FieldClient, clientName),
			slog.Any(logging.FieldError, err),
		)
		initial = match.Defaults()
	}

	ctrl := controller.New(initial, cl, controller.Options{
		Court:  court,
		Logger: logger,
		Name:   clientName,
	})
	plr := poller.New(clientName, cl, ctrl, logger, recorder, cfg.ControllerPoll)

	managed := string(court)
	if managed == "" {
		managed = "both"
	}
	logging.Info(logger, "controller started",
		slog.String(logging.FieldClient, clientName),
		slog.String(logging.FieldCourt, managed),
	)

	g, gctx := errgroup.WithContext(ctx)
	session, endSession := context.WithCancel(gctx)
	defer endSession()

	g.Go(func() error {
		return plr.Run(session)
	})
	if metricsHandler != nil && telemetry.Port != "" {
		g.Go(func() error {
			// A metrics listener failure leaves the client running.
			if err := metrics.Serve(session, ":"+telemetry.Port, metricsHandler); err != nil {
				logging.Warn(logger, "metrics listener stopped", logging.FieldError, err)
			}
			return nil
		})
	}
	g.Go(func() error {
		err := readCommands(session, ctrl, in, out)
		// End of input ends the session.
		_ = plr.Stop(context.Background())
		endSession()
		return err
	})
	return g.Wait()
}

// readCommands executes one controller command per input line until in is
// exhausted or ctx is cancelled.
func readCommands(ctx context.Context, ctrl *controller.Controller, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	fmt.Fprintln(out, controller.Usage)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			report, err := ctrl.Exec(ctx, line)
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			if report != "" {
				fmt.Fprintln(out, report)
			}
		}
	}
}

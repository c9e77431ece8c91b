package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/court-score-service/internal/config"
	"github.com/preston-bernstein/court-score-service/internal/http/handlers"
	"github.com/preston-bernstein/court-score-service/internal/testutil"
)

// Smoke test to ensure main honors SKIP_DISPLAY_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_DISPLAY_RUN", "1")
	main()
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunDrawsPulledState(t *testing.T) {
	runDisplayUntilNames(t, config.MetricsConfig{})
}

func TestRunDrawsPulledStateWithClientMetrics(t *testing.T) {
	runDisplayUntilNames(t, config.MetricsConfig{Enabled: true, Port: "0"})
}

func runDisplayUntilNames(t *testing.T, mcfg config.MetricsConfig) {
	t.Helper()
	svc := testutil.NewScoreService(testutil.SampleState())
	ts := httptest.NewServer(handlers.NewHandler(svc, nil, 0))
	defer ts.Close()

	cfg := config.ClientConfig{
		ScoreURL:        ts.URL,
		Timeout:         time.Second,
		DisplayPoll:     10 * time.Millisecond,
		DisplayRedraw:   10 * time.Millisecond,
		DisplayTimezone: "UTC",
		Metrics:         mcfg,
	}
	out := &syncBuffer{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, cfg, nil, out) }()

	deadline := time.After(2 * time.Second)
	for !strings.Contains(out.String(), "ANA") {
		select {
		case <-deadline:
			cancel()
			t.Fatalf("expected pulled names on the board, got %q", out.String())
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run did not return after cancel")
	}
}

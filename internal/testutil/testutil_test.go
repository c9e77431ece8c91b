package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
)

func TestMatchClockStartsAtMatchStart(t *testing.T) {
	clock := NewMatchClock()
	if !clock.Now().Equal(MatchStart) {
		t.Fatalf("expected clock at %v, got %v", MatchStart, clock.Now())
	}
	clock.Advance(90 * time.Second)
	if got := clock.Since(MatchStart); got != 90*time.Second {
		t.Fatalf("expected 90s elapsed, got %s", got)
	}
}

func TestSampleStateIsValid(t *testing.T) {
	s := SampleState()
	if err := match.Validate(s); err != nil {
		t.Fatalf("expected valid sample state, got %v", err)
	}
	if s.Left.P1Name == "" || s.Right.Template != match.TemplateTennis {
		t.Fatalf("unexpected sample state %+v", s)
	}
	if *IntPtr(4) != 4 || *StringPtr("x") != "x" || !*BoolPtr(true) {
		t.Fatalf("expected pointer helpers to round trip")
	}
}

func TestNewScoreServiceSeedsState(t *testing.T) {
	svc := NewScoreService(SampleState())
	if got := svc.Current(); got.Left.P1Name != "ANA" {
		t.Fatalf("expected seeded state, got %+v", got)
	}
	if _, err := svc.Apply(context.Background(), match.Delta{Left: &match.CourtDelta{P1: IntPtr(9)}}); err != nil {
		t.Fatalf("unexpected apply error: %v", err)
	}
	if svc.Current().Left.P1 != 9 {
		t.Fatalf("expected merged point")
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	})

	rr := Serve(handler, http.MethodPost, "/score", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/score", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Seen", r.Header.Get("If-None-Match"))
	})
	rr3 := ServeWithHeaders(echo, http.MethodGet, "/score", nil, map[string]string{"If-None-Match": `"abc"`})
	if got := rr3.Header().Get("Seen"); got != `"abc"` {
		t.Fatalf("expected header forwarded, got %q", got)
	}
}

func TestServerStubs(t *testing.T) {
	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	if err := sh.ListenAndServe(); err == nil {
		t.Fatalf("expected listen error")
	}
	if err := sh.Shutdown(context.Background()); err == nil {
		t.Fatalf("expected shutdown error")
	}
	if sh.Addr() != ":0" || sh.Handler() == nil {
		t.Fatalf("expected default addr and handler")
	}
	if sh.ListenCalls() != 1 || sh.ShutdownCalls() != 1 {
		t.Fatalf("expected listen/shutdown calls, got %d/%d", sh.ListenCalls(), sh.ShutdownCalls())
	}

	closed := &StubHTTPServer{ListenErr: http.ErrServerClosed, AddrVal: ":3000"}
	if err := closed.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
	if closed.Addr() != ":3000" {
		t.Fatalf("expected addr passthrough")
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{})}
	if err := b.ListenAndServe(); err != nil {
		t.Fatalf("expected nil listen error for blocking server")
	}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}
	if b.ShutdownCalls() != 1 {
		t.Fatalf("expected shutdown called once")
	}

	expired, cancel := context.WithCancel(context.Background())
	cancel()
	held := &BlockingHTTPServer{Unblock: make(chan struct{})}
	if err := held.Shutdown(expired); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	logger.Debug("hidden")
	if !strings.Contains(buf.String(), "hello") || strings.Contains(buf.String(), "hidden") {
		t.Fatalf("expected info output only, got %s", buf.String())
	}
	debugLogger, debugBuf := NewDebugBufferLogger()
	debugLogger.Debug("visible")
	if !strings.Contains(debugBuf.String(), "visible") {
		t.Fatalf("expected debug output, got %s", debugBuf.String())
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

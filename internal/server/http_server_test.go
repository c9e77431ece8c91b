package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
	"github.com/preston-bernstein/court-score-service/internal/testutil"
)

type stubListener struct {
	addr net.Addr
}

func (s *stubListener) Accept() (net.Conn, error) { return nil, errors.New("accept failure") }
func (s *stubListener) Close() error              { return nil }
func (s *stubListener) Addr() net.Addr            { return s.addr }

func TestNetHTTPServerListenAndServeWithCustomListener(t *testing.T) {
	l := &stubListener{addr: &net.TCPAddr{IP: net.IPv4zero, Port: 0}}
	srv := &http.Server{Handler: http.NewServeMux()}
	s := netHTTPServer{srv: srv, listener: l}

	if err := s.ListenAndServe(); err == nil {
		t.Fatalf("expected serve error from stub listener")
	}
}

func TestNetHTTPServerServesScoreOverListener(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	cfg := testConfig()
	built := buildHTTPServer(cfg, testutil.NewScoreService(testutil.SampleState()), nil, nil).(netHTTPServer)
	s := netHTTPServer{srv: built.srv, listener: l}

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	resp, err := http.Get("http://" + l.Addr().String() + "/score")
	if err != nil {
		t.Fatalf("get score: %v", err)
	}
	var state match.MatchState
	decodeErr := json.NewDecoder(resp.Body).Decode(&state)
	_ = resp.Body.Close()
	if decodeErr != nil {
		t.Fatalf("decode: %v", decodeErr)
	}
	if state.Right.P1Name != "CARLA" {
		t.Fatalf("expected seeded state over the wire, got %+v", state.Right)
	}

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	select {
	case err := <-done:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Fatalf("expected ErrServerClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("serve did not return after shutdown")
	}
}

func TestNetHTTPServerAccessors(t *testing.T) {
	handler := http.NewServeMux()
	srv := &http.Server{Addr: ":3000", Handler: handler}
	s := netHTTPServer{srv: srv}

	if s.Addr() != ":3000" {
		t.Fatalf("expected addr passthrough")
	}
	if s.Handler() != handler {
		t.Fatalf("expected handler passthrough")
	}
	_ = s.Shutdown(context.Background())
}

func TestBuildHTTPServerAppliesTimeouts(t *testing.T) {
	built := buildHTTPServer(testConfig(), testutil.NewScoreService(match.Defaults()), nil, nil).(netHTTPServer)
	if built.srv.ReadHeaderTimeout != readHeaderTimeout || built.srv.WriteTimeout != writeTimeout {
		t.Fatalf("expected configured timeouts, got %+v", built.srv)
	}
	if built.Addr() != ":0" {
		t.Fatalf("expected addr from config port, got %s", built.Addr())
	}
}

// Package teststubs provides concurrency-safe doubles for the poller source
// and sink and the controller pusher.
package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
)

// StubSource is a test double for poller.Source.
type StubSource struct {
	mu    sync.Mutex
	state match.MatchState
	err   error

	Calls atomic.Int32
	// Reads, when non-nil, receives a value after every Read. Sends never block.
	Reads chan struct{}
}

// NewStubSource returns a source serving state.
func NewStubSource(state match.MatchState) *StubSource {
	return &StubSource{state: state, Reads: make(chan struct{}, 16)}
}

// Set replaces the served state and error.
func (s *StubSource) Set(state match.MatchState, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.err = err
}

// Read returns the configured state and error while tracking calls.
func (s *StubSource) Read(ctx context.Context) (match.MatchState, error) {
	_ = ctx
	s.mu.Lock()
	state, err := s.state.Clone(), s.err
	s.mu.Unlock()

	s.Calls.Add(1)
	if s.Reads != nil {
		select {
		case s.Reads <- struct{}{}:
		default:
		}
	}
	return state, err
}

// RecordingSink is a test double for poller.Sink.
type RecordingSink struct {
	mu      sync.Mutex
	applied []match.MatchState
}

// Apply records state.
func (s *RecordingSink) Apply(state match.MatchState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = append(s.applied, state.Clone())
}

// Applied returns every recorded state in order.
func (s *RecordingSink) Applied() []match.MatchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]match.MatchState, len(s.applied))
	copy(out, s.applied)
	return out
}

// StubPusher is a test double for controller.Pusher.
type StubPusher struct {
	mu     sync.Mutex
	deltas []match.Delta
	Err    error
}

// Merge records delta and returns Err.
func (p *StubPusher) Merge(ctx context.Context, delta match.Delta) error {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deltas = append(p.deltas, delta)
	return p.Err
}

// Deltas returns every pushed delta in order.
func (p *StubPusher) Deltas() []match.Delta {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]match.Delta, len(p.deltas))
	copy(out, p.deltas)
	return out
}

// Last returns the most recent delta, or the zero Delta.
func (p *StubPusher) Last() match.Delta {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.deltas) == 0 {
		return match.Delta{}
	}
	return p.deltas[len(p.deltas)-1]
}

// Package controller holds a controller client's local view of the match and
// the user actions that mutate it. Each action updates the local copy first
// and then pushes the smallest delta that carries the change.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
	"github.com/preston-bernstein/court-score-service/internal/history"
	"github.com/preston-bernstein/court-score-service/internal/logging"
)

var (
	// ErrCourtFiltered is returned for actions on a court this controller does not manage.
	ErrCourtFiltered = errors.New("court not managed by this controller")
	// ErrUnknownCourt is returned for a side other than left or right.
	ErrUnknownCourt = errors.New("unknown court")
	// ErrUnknownTemplate is returned when switching to an unsupported template.
	ErrUnknownTemplate = errors.New("unknown template")
)

// Pusher sends deltas to the authoritative store.
type Pusher interface {
	Merge(ctx context.Context, delta match.Delta) error
}

// Options tunes a Controller. Zero values are usable.
type Options struct {
	// Court restricts actions to one side; empty manages both.
	Court           match.Side
	HistoryCapacity int
	Clock           clockwork.Clock
	Logger          *slog.Logger
	Name            string
}

// Controller owns a local MatchState, its undo history and a Pusher.
type Controller struct {
	pusher Pusher
	clock  clockwork.Clock
	logger *slog.Logger
	court  match.Side
	name   string

	mu      sync.Mutex
	state   match.MatchState
	history *history.Stack
}

// New constructs a Controller starting from initial.
func New(initial match.MatchState, pusher Pusher, opts Options) *Controller {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	name := opts.Name
	if name == "" {
		name = "controller"
	}
	return &Controller{
		pusher:  pusher,
		clock:   clock,
		logger:  opts.Logger,
		court:   opts.Court,
		name:    name,
		state:   initial.Clone(),
		history: history.New(opts.HistoryCapacity),
	}
}

// Apply takes a pulled authoritative snapshot as the new local view. Every
// top-level field of the snapshot replaces the local one; history is kept.
func (c *Controller) Apply(state match.MatchState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state.Clone()
}

// State returns a copy of the local view.
func (c *Controller) State() match.MatchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// HistoryLen reports how many undo steps are available.
func (c *Controller) HistoryLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Len()
}

// Court reports the managed side, empty when both are managed.
func (c *Controller) Court() match.Side {
	return c.court
}

// change is the outcome of one action against the local state.
type change struct {
	next      match.MatchState
	delta     match.Delta
	historied bool
}

// mutate runs fn under the lock and pushes its delta after releasing it.
// It reports false when fn declines to change anything.
func (c *Controller) mutate(ctx context.Context, action string, fn func(cur match.MatchState) (change, bool)) bool {
	c.mu.Lock()
	ch, ok := fn(c.state.Clone())
	if !ok {
		c.mu.Unlock()
		return false
	}
	if ch.historied {
		c.history.Push(c.state)
	}
	c.state = ch.next
	c.mu.Unlock()

	c.push(ctx, action, ch.delta)
	return true
}

func (c *Controller) push(ctx context.Context, action string, delta match.Delta) {
	if c.pusher == nil {
		return
	}
	if err := c.pusher.Merge(ctx, delta); err != nil {
		logging.Warn(c.logger, "controller push failed",
			slog.String(logging.FieldClient, c.name),
			slog.String("action", action),
			slog.Any(logging.FieldFields, delta.Fields()),
			slog.Any(logging.FieldError, err),
		)
	}
}

func (c *Controller) checkCourt(side match.Side) error {
	if _, err := match.ParseSide(string(side)); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownCourt, side)
	}
	if c.court != "" && c.court != side {
		return fmt.Errorf("%w: %s", ErrCourtFiltered, side)
	}
	return nil
}

func checkTemplate(t match.Template) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, t)
	}
	return nil
}

func courtDelta(next match.MatchState, side match.Side) match.Delta {
	return match.Delta{}.WithCourt(side, match.FullCourt(next.Court(side)))
}

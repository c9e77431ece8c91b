// Package display keeps the board's local view of the match and redraws it
// on its own interval, independent of the poll loop that refreshes it.
package display

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
	"github.com/preston-bernstein/court-score-service/internal/logging"
)

const defaultRedrawInterval = 100 * time.Millisecond

// Renderer draws one frame.
type Renderer interface {
	Render(ctx context.Context, frame Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, frame Frame) error

func (f RendererFunc) Render(ctx context.Context, frame Frame) error { return f(ctx, frame) }

// Options tunes a Display. Zero values are usable.
type Options struct {
	Interval time.Duration
	Clock    clockwork.Clock
	Location *time.Location
	Logger   *slog.Logger
}

// Display owns the board's local view. Apply replaces it wholesale.
type Display struct {
	renderer Renderer
	interval time.Duration
	clock    clockwork.Clock
	loc      *time.Location
	logger   *slog.Logger

	mu    sync.RWMutex
	state match.MatchState
}

// New constructs a Display starting from initial.
func New(initial match.MatchState, renderer Renderer, opts Options) *Display {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultRedrawInterval
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Display{
		renderer: renderer,
		interval: interval,
		clock:    clock,
		loc:      opts.Location,
		logger:   opts.Logger,
		state:    initial.Clone(),
	}
}

// Apply replaces the local view with a pulled snapshot.
func (d *Display) Apply(state match.MatchState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = state.Clone()
}

// State returns a copy of the local view.
func (d *Display) State() match.MatchState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.Clone()
}

// Frame builds the board for the local view at now.
func (d *Display) Frame(now time.Time) Frame {
	return BuildFrame(d.State(), now, d.loc)
}

// Run redraws on the configured interval until ctx ends. Render errors are
// logged and the next tick draws again.
func (d *Display) Run(ctx context.Context) error {
	ticker := d.clock.NewTicker(d.interval)
	defer ticker.Stop()

	d.redraw(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			d.redraw(ctx)
		}
	}
}

func (d *Display) redraw(ctx context.Context) {
	if d.renderer == nil {
		return
	}
	if err := d.renderer.Render(ctx, d.Frame(d.clock.Now())); err != nil && ctx.Err() == nil {
		logging.Warn(d.logger, "display render failed", slog.Any(logging.FieldError, err))
	}
}

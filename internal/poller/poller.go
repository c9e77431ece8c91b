package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
	"github.com/preston-bernstein/court-score-service/internal/logging"
	"github.com/preston-bernstein/court-score-service/internal/metrics"
)

const defaultInterval = time.Second

// Source reads the authoritative state.
type Source interface {
	Read(ctx context.Context) (match.MatchState, error)
}

// Sink receives each successfully pulled state.
type Sink interface {
	Apply(state match.MatchState)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(state match.MatchState)

func (f SinkFunc) Apply(state match.MatchState) { f(state) }

// Poller pulls the full state on an interval and hands it to a Sink.
// Failed reads are logged and counted; the next tick tries again.
type Poller struct {
	name     string
	source   Source
	sink     Sink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	clock    clockwork.Clock

	ticker   clockwork.Ticker
	done     chan struct{}
	exited   chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults. name labels logs and metrics.
func New(name string, source Source, sink Sink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		name:     name,
		source:   source,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		clock:    clockwork.NewRealClock(),
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
}

// WithClock swaps the time source. Call before Start.
func (p *Poller) WithClock(clock clockwork.Clock) *Poller {
	if clock != nil {
		p.clock = clock
	}
	return p
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.ticker = p.clock.NewTicker(p.interval)
	p.startMu.Unlock()

	go p.loop(ctx)
}

// Run starts the poller and blocks until it exits.
func (p *Poller) Run(ctx context.Context) error {
	p.Start(ctx)
	<-p.exited
	return nil
}

// Stop halts the polling loop and waits for it to exit or ctx to end.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		close(p.done)
	})

	p.startMu.Lock()
	started := p.started
	p.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-p.exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.exited)
	defer p.ticker.Stop()

	logging.Info(p.logger, "poller started",
		slog.String(logging.FieldClient, p.name),
		slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()),
	)
	p.fetchOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			logging.Info(p.logger, "poller stopped", slog.String(logging.FieldClient, p.name))
			return
		case <-p.done:
			logging.Info(p.logger, "poller stopped", slog.String(logging.FieldClient, p.name))
			return
		case <-p.ticker.Chan():
			p.fetchOnce(ctx)
		}
	}
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := p.clock.Now()
	p.recordAttempt(start)

	state, err := p.source.Read(ctx)
	elapsed := p.clock.Since(start)
	p.metrics.RecordPollerCycle(p.name, elapsed, err)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logging.Warn(p.logger, "poller read failed",
			slog.String(logging.FieldClient, p.name),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any(logging.FieldError, err),
		)
		p.recordFailure(err, start)
		return
	}

	if p.sink != nil {
		p.sink.Apply(state)
	}
	logging.Debug(p.logger, "poller applied snapshot",
		slog.String(logging.FieldClient, p.name),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	if failures := p.recordSuccess(start); failures > 0 {
		logging.Info(p.logger, "poller recovered",
			slog.String(logging.FieldClient, p.name),
			slog.Int("failures", failures),
		)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

// recordSuccess resets the failure streak and returns its previous length.
func (p *Poller) recordSuccess(at time.Time) int {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	failures := p.status.ConsecutiveFailures
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	return failures
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

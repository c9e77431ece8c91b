package metrics

import (
	"sync"
	"time"
)

// Operation names used as in-memory stat keys.
const (
	OpMerge = "merge"
	OpPush  = "push"
	OpPoll  = "poll"
)

type opStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about store merges and
// client sync calls, mirrored into OpenTelemetry instruments when configured.
// A nil Recorder is valid and records nothing.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*opStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*opStats),
		otel:  otel,
	}
}

// RecordMerge tracks one merge into the authoritative store.
func (r *Recorder) RecordMerge(fields []string, err error) {
	if r == nil {
		return
	}
	r.record(OpMerge, 0, err)
	if r.otel != nil {
		r.otel.recordMerge(fields, err)
	}
}

// RecordPush tracks a client delta push.
func (r *Recorder) RecordPush(client string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.record(OpPush, duration, err)
	if r.otel != nil {
		r.otel.recordPush(client, duration, err)
	}
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(client string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.record(OpPoll, duration, err)
	if r.otel != nil {
		r.otel.recordPoller(client, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Calls returns the total attempts recorded for an operation.
func (r *Recorder) Calls(op string) int {
	return r.Snapshot(op).Calls
}

// Errors returns the failed attempts recorded for an operation.
func (r *Recorder) Errors(op string) int {
	return r.Snapshot(op).Errors
}

// Snapshot returns a copy of the current stats for an operation.
type Snapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(op string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[op]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

func (r *Recorder) record(op string, duration time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[op]
	if !ok {
		stats = &opStats{}
		r.stats[op] = stats
	}
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
}

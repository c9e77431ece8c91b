package score

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
	"github.com/preston-bernstein/court-score-service/internal/logging"
	"github.com/preston-bernstein/court-score-service/internal/metrics"
	"github.com/preston-bernstein/court-score-service/internal/store"
)

// Service coordinates reads and merges against the authoritative Store.
type Service struct {
	store    store.Store
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewService constructs a Service with the provided Store. recorder and
// logger may be nil.
func NewService(st store.Store, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{store: st, recorder: recorder, logger: logger}
}

// Current returns the current match state.
func (s *Service) Current() match.MatchState {
	return s.store.Read()
}

// Snapshot returns the current state and a fingerprint of its content.
func (s *Service) Snapshot() (match.MatchState, string) {
	return s.store.Snapshot()
}

// Apply merges delta into the store. Rejected deltas leave the state
// unchanged and return an error wrapping match.ErrInvalidDelta.
func (s *Service) Apply(ctx context.Context, delta match.Delta) (match.MatchState, error) {
	fields := delta.Fields()
	logger := logging.FromContext(ctx, s.logger)

	next, err := s.store.Merge(delta)
	s.recorder.RecordMerge(fields, err)
	if err != nil {
		logging.Warn(logger, "score delta rejected",
			slog.Any(logging.FieldFields, fields),
			slog.Any(logging.FieldError, err),
		)
		return next, err
	}

	logging.Info(logger, "score delta merged", slog.Any(logging.FieldFields, fields))
	return next, nil
}

// Fingerprint identifies the current content for HTTP revalidation.
func (s *Service) Fingerprint() string {
	_, fp := s.store.Snapshot()
	return fp
}

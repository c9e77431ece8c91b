package testutil

import (
	"context"

	"github.com/preston-bernstein/court-score-service/internal/app/score"
	"github.com/preston-bernstein/court-score-service/internal/domain/match"
	"github.com/preston-bernstein/court-score-service/internal/metrics"
	"github.com/preston-bernstein/court-score-service/internal/store"
)

// NewScoreService builds a score service backed by an in-memory store seeded with state.
func NewScoreService(state match.MatchState) *score.Service {
	return score.NewService(store.NewMemoryStore(state), nil, nil)
}

// NewRecorderWithShutdown returns an in-memory recorder and a no-op shutdown.
func NewRecorderWithShutdown() (*metrics.Recorder, func(context.Context) error) {
	return metrics.NewRecorder(), func(context.Context) error { return nil }
}

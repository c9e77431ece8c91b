package store

import (
	"encoding/json"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
)

// Store is the authoritative holder of the match state. Merge is
// last-write-wins per field with no versioning or conflict detection.
type Store interface {
	Read() match.MatchState
	Snapshot() (match.MatchState, string)
	Merge(delta match.Delta) (match.MatchState, error)
}

// MemoryStore keeps the single authoritative state in memory.
type MemoryStore struct {
	mu          sync.RWMutex
	state       match.MatchState
	fingerprint string
}

// NewMemoryStore constructs a store seeded with initial. An invalid seed
// falls back to match.Defaults.
func NewMemoryStore(initial match.MatchState) *MemoryStore {
	if match.Validate(initial) != nil {
		initial = match.Defaults()
	}
	s := &MemoryStore{}
	s.set(initial.Clone())
	return s
}

// Read returns a copy of the current state.
func (s *MemoryStore) Read() match.MatchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Snapshot returns a copy of the current state together with its fingerprint.
func (s *MemoryStore) Snapshot() (match.MatchState, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone(), s.fingerprint
}

// Merge applies delta and returns the resulting state. A delta whose result
// fails validation is rejected whole and leaves the state untouched.
func (s *MemoryStore) Merge(delta match.Delta) (match.MatchState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := match.Merge(s.state, delta)
	if err := match.Validate(next); err != nil {
		return s.state.Clone(), err
	}
	if err := match.ValidateDelta(delta, next); err != nil {
		return s.state.Clone(), err
	}
	s.set(next)
	return next.Clone(), nil
}

// Fingerprint identifies the current content. Equal states share a
// fingerprint; it carries no ordering.
func (s *MemoryStore) Fingerprint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fingerprint
}

func (s *MemoryStore) set(state match.MatchState) {
	s.state = state
	s.fingerprint = Fingerprint(state)
}

// Fingerprint hashes the canonical JSON encoding of state.
func Fingerprint(state match.MatchState) string {
	raw, err := json.Marshal(state)
	if err != nil {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64(raw), 16)
}

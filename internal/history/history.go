// Package history keeps a controller's bounded undo stack. It is local to one
// controller and never shared or synchronized.
package history

import "github.com/preston-bernstein/court-score-service/internal/domain/match"

// DefaultCapacity is how many snapshots a controller keeps.
const DefaultCapacity = 10

// Stack is a bounded LIFO of MatchState snapshots. When full, pushing evicts
// the oldest entry. It is not safe for concurrent use.
type Stack struct {
	capacity  int
	snapshots []match.MatchState
}

// New constructs a Stack; non-positive capacity falls back to DefaultCapacity.
func New(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{
		capacity:  capacity,
		snapshots: make([]match.MatchState, 0, capacity),
	}
}

// Push stores a deep copy of s.
func (h *Stack) Push(s match.MatchState) {
	if len(h.snapshots) == h.capacity {
		copy(h.snapshots, h.snapshots[1:])
		h.snapshots = h.snapshots[:len(h.snapshots)-1]
	}
	h.snapshots = append(h.snapshots, s.Clone())
}

// Pop removes and returns the most recent snapshot.
func (h *Stack) Pop() (match.MatchState, bool) {
	if len(h.snapshots) == 0 {
		return match.MatchState{}, false
	}
	last := h.snapshots[len(h.snapshots)-1]
	h.snapshots[len(h.snapshots)-1] = match.MatchState{}
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return last, true
}

// Len reports how many snapshots are held.
func (h *Stack) Len() int {
	return len(h.snapshots)
}

// Cap reports the eviction threshold.
func (h *Stack) Cap() int {
	return h.capacity
}

// Clear drops every snapshot.
func (h *Stack) Clear() {
	h.snapshots = h.snapshots[:0]
}

// Package timer computes court elapsed time from a stored duration and an
// optional running start instant.
package timer

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
)

// Elapsed returns whole seconds on the clock at now. A start later than now
// adds nothing, so a skewed client never sees negative time.
func Elapsed(stored int, start *match.Instant, now time.Time) int {
	if start == nil {
		return stored
	}
	diff := now.UnixMilli() - int64(*start)
	if diff < 0 {
		return stored
	}
	return stored + int(diff/1000)
}

// CourtElapsed is Elapsed for a court's timer fields.
func CourtElapsed(c match.CourtState, now time.Time) int {
	return Elapsed(c.TimerStored, c.TimerStart, now)
}

// Toggle stops a running timer, folding the elapsed time into TimerStored,
// or starts a stopped one at now.
func Toggle(c match.CourtState, now time.Time) match.CourtState {
	next := c.Clone()
	if next.TimerStart != nil {
		next.TimerStored = CourtElapsed(next, now)
		next.TimerStart = nil
		return next
	}
	start := match.InstantOf(now)
	next.TimerStart = &start
	return next
}

// Reset stops the timer and zeroes it.
func Reset(c match.CourtState) match.CourtState {
	next := c.Clone()
	next.TimerStart = nil
	next.TimerStored = 0
	return next
}

// Format renders seconds as MM:SS. Minutes keep counting past 59.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

package testutil

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// MatchStart is a fixed instant used as "now" in clock-driven tests.
var MatchStart = time.Date(2024, time.June, 1, 18, 30, 0, 0, time.UTC)

// NewMatchClock returns a fake clock parked at MatchStart.
func NewMatchClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(MatchStart)
}

// Package testutil holds shared fixtures and HTTP helpers for tests. Server,
// storage, transport, config and telemetry packages assert with the testing
// package and t.Fatalf; the domain, history, controller and display packages
// assert with testify's require. Both registers use the helpers here.
package testutil

import "github.com/preston-bernstein/court-score-service/internal/domain/match"

// SampleState returns a valid state with named players and points on both
// courts and the video stopped, so the score panels are on screen.
func SampleState() match.MatchState {
	s := match.Defaults()
	s.RunningText = "FINALS DAY"
	s.Motion.Active = false
	s.Left.P1Name = "ANA"
	s.Left.P2Name = "BEA"
	s.Left.P1 = 3
	s.Left.P2 = 1
	s.Right.Template = match.TemplateTennis
	s.Right.P1Name = "CARLA"
	s.Right.P2Name = "DANI"
	s.Right.P1 = 2
	s.Right.P1Sets = 1
	return s
}

// IntPtr returns a pointer to v for building deltas.
func IntPtr(v int) *int { return &v }

// StringPtr returns a pointer to v for building deltas.
func StringPtr(v string) *string { return &v }

// BoolPtr returns a pointer to v for building deltas.
func BoolPtr(v bool) *bool { return &v }

package match

import (
	"fmt"
	"time"
)

// Template selects the scoring and display format of a court.
type Template string

const (
	TemplateAmericano Template = "americano"
	TemplateTennis    Template = "tennis"
	TemplateTimer     Template = "timer"
)

// Valid reports whether t is one of the known templates.
func (t Template) Valid() bool {
	switch t {
	case TemplateAmericano, TemplateTennis, TemplateTimer:
		return true
	}
	return false
}

// ViewMode selects what the board shows in its data layer.
type ViewMode string

const (
	ViewScore ViewMode = "score"
	ViewText  ViewMode = "text"
)

// Valid reports whether v is one of the known view modes.
func (v ViewMode) Valid() bool {
	return v == ViewScore || v == ViewText
}

// Side identifies one of the two courts.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Sides lists both courts in display order.
var Sides = []Side{SideLeft, SideRight}

// ParseSide converts a raw court name.
func ParseSide(raw string) (Side, error) {
	switch Side(raw) {
	case SideLeft, SideRight:
		return Side(raw), nil
	}
	return "", fmt.Errorf("unknown court %q", raw)
}

// Player identifies one side of a court match.
type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

// ParsePlayer converts "1" or "2".
func ParsePlayer(raw string) (Player, error) {
	switch raw {
	case "1":
		return Player1, nil
	case "2":
		return Player2, nil
	}
	return 0, fmt.Errorf("unknown player %q", raw)
}

// Instant is a wall-clock instant carried as Unix epoch milliseconds.
type Instant int64

// InstantOf converts t to an Instant.
func InstantOf(t time.Time) Instant {
	return Instant(t.UnixMilli())
}

// Time converts the instant back to a time.Time.
func (i Instant) Time() time.Time {
	return time.UnixMilli(int64(i))
}

// CourtState is the scoring state of one court.
type CourtState struct {
	Template    Template `json:"template"`
	P1Name      string   `json:"p1Name"`
	P2Name      string   `json:"p2Name"`
	P1Sets      int      `json:"p1Sets"`
	P2Sets      int      `json:"p2Sets"`
	P1          int      `json:"p1"`
	P2          int      `json:"p2"`
	TimerStart  *Instant `json:"timerStart"`
	TimerStored int      `json:"timerStored"`
}

// Running reports whether the court timer is counting.
func (c CourtState) Running() bool {
	return c.TimerStart != nil
}

// Clone returns a copy that shares no memory with c.
func (c CourtState) Clone() CourtState {
	if c.TimerStart != nil {
		start := *c.TimerStart
		c.TimerStart = &start
	}
	return c
}

// MotionConfig describes the video overlay.
type MotionConfig struct {
	Src          string `json:"src"`
	Active       bool   `json:"active"`
	AsBackground bool   `json:"asBackground"`
	ShowClock    bool   `json:"showClock"`
}

// MatchState is the full state shown on the board.
type MatchState struct {
	ViewMode    ViewMode     `json:"viewMode"`
	RunningText string       `json:"runningText"`
	IsAnimating bool         `json:"isAnimating"`
	ShowClock   bool         `json:"showClock"`
	Motion      MotionConfig `json:"motion"`
	Left        CourtState   `json:"left"`
	Right       CourtState   `json:"right"`
}

// Clone returns a deep copy of s.
func (s MatchState) Clone() MatchState {
	s.Left = s.Left.Clone()
	s.Right = s.Right.Clone()
	return s
}

// Court returns a copy of the court on the given side.
func (s MatchState) Court(side Side) CourtState {
	if side == SideRight {
		return s.Right.Clone()
	}
	return s.Left.Clone()
}

// WithCourt returns a copy of s with the court on side replaced.
func (s MatchState) WithCourt(side Side, c CourtState) MatchState {
	next := s.Clone()
	if side == SideRight {
		next.Right = c.Clone()
	} else {
		next.Left = c.Clone()
	}
	return next
}

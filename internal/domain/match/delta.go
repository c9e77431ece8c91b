package match

import (
	"bytes"
	"encoding/json"
)

// OptionalInstant is a timerStart patch. Set distinguishes an absent key
// from an explicit null; Value is nil for null.
type OptionalInstant struct {
	Set   bool
	Value *Instant
}

// SetInstant returns a patch that starts the timer at i.
func SetInstant(i Instant) OptionalInstant {
	return OptionalInstant{Set: true, Value: &i}
}

// ClearInstant returns a patch that stops the timer.
func ClearInstant() OptionalInstant {
	return OptionalInstant{Set: true}
}

// IsZero reports an absent patch so omitzero drops it when encoding.
func (o OptionalInstant) IsZero() bool {
	return !o.Set
}

// MarshalJSON encodes null or the epoch milliseconds.
func (o OptionalInstant) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(int64(*o.Value))
}

// UnmarshalJSON is called for null too, which is what lets Set record it.
func (o *OptionalInstant) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return err
	}
	v := Instant(ms)
	o.Value = &v
	return nil
}

// CourtDelta is a partial CourtState.
type CourtDelta struct {
	Template    *Template       `json:"template,omitempty"`
	P1Name      *string         `json:"p1Name,omitempty"`
	P2Name      *string         `json:"p2Name,omitempty"`
	P1Sets      *int            `json:"p1Sets,omitempty"`
	P2Sets      *int            `json:"p2Sets,omitempty"`
	P1          *int            `json:"p1,omitempty"`
	P2          *int            `json:"p2,omitempty"`
	TimerStart  OptionalInstant `json:"timerStart,omitzero"`
	TimerStored *int            `json:"timerStored,omitempty"`
}

// MotionDelta is a partial MotionConfig.
type MotionDelta struct {
	Src          *string `json:"src,omitempty"`
	Active       *bool   `json:"active,omitempty"`
	AsBackground *bool   `json:"asBackground,omitempty"`
	ShowClock    *bool   `json:"showClock,omitempty"`
}

// Delta is a partial MatchState: only the fields a client intends to change.
type Delta struct {
	ViewMode    *ViewMode    `json:"viewMode,omitempty"`
	RunningText *string      `json:"runningText,omitempty"`
	IsAnimating *bool        `json:"isAnimating,omitempty"`
	ShowClock   *bool        `json:"showClock,omitempty"`
	Motion      *MotionDelta `json:"motion,omitempty"`
	Left        *CourtDelta  `json:"left,omitempty"`
	Right       *CourtDelta  `json:"right,omitempty"`
}

// Empty reports whether the delta carries no top-level field.
func (d Delta) Empty() bool {
	return len(d.Fields()) == 0
}

// Fields lists the present top-level keys in a stable order.
func (d Delta) Fields() []string {
	fields := make([]string, 0, 7)
	if d.ViewMode != nil {
		fields = append(fields, "viewMode")
	}
	if d.RunningText != nil {
		fields = append(fields, "runningText")
	}
	if d.IsAnimating != nil {
		fields = append(fields, "isAnimating")
	}
	if d.ShowClock != nil {
		fields = append(fields, "showClock")
	}
	if d.Motion != nil {
		fields = append(fields, "motion")
	}
	if d.Left != nil {
		fields = append(fields, "left")
	}
	if d.Right != nil {
		fields = append(fields, "right")
	}
	return fields
}

// Court returns the patch for side, or nil when absent.
func (d Delta) Court(side Side) *CourtDelta {
	if side == SideRight {
		return d.Right
	}
	return d.Left
}

// WithCourt sets the patch for one court.
func (d Delta) WithCourt(side Side, c *CourtDelta) Delta {
	if side == SideRight {
		d.Right = c
	} else {
		d.Left = c
	}
	return d
}

// FullCourt builds a patch carrying every field of c.
func FullCourt(c CourtState) *CourtDelta {
	c = c.Clone()
	template := c.Template
	start := ClearInstant()
	if c.TimerStart != nil {
		start = SetInstant(*c.TimerStart)
	}
	return &CourtDelta{
		Template:    &template,
		P1Name:      &c.P1Name,
		P2Name:      &c.P2Name,
		P1Sets:      &c.P1Sets,
		P2Sets:      &c.P2Sets,
		P1:          &c.P1,
		P2:          &c.P2,
		TimerStart:  start,
		TimerStored: &c.TimerStored,
	}
}

// FullMotion builds a patch carrying every field of m.
func FullMotion(m MotionConfig) *MotionDelta {
	return &MotionDelta{
		Src:          &m.Src,
		Active:       &m.Active,
		AsBackground: &m.AsBackground,
		ShowClock:    &m.ShowClock,
	}
}

// FullState builds a delta that replaces every field of the target.
func FullState(s MatchState) Delta {
	view := s.ViewMode
	text := s.RunningText
	animating := s.IsAnimating
	clock := s.ShowClock
	return Delta{
		ViewMode:    &view,
		RunningText: &text,
		IsAnimating: &animating,
		ShowClock:   &clock,
		Motion:      FullMotion(s.Motion),
		Left:        FullCourt(s.Left),
		Right:       FullCourt(s.Right),
	}
}

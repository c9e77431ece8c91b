package match

import (
	"errors"
	"fmt"
)

// ErrInvalidDelta marks a delta rejected at the boundary.
var ErrInvalidDelta = errors.New("invalid delta")

// MaxTennisIndex is the advantage index in the tennis label sequence.
const MaxTennisIndex = 4

// Validate checks the invariants every stored state must hold.
func Validate(s MatchState) error {
	if !s.ViewMode.Valid() {
		return fmt.Errorf("%w: viewMode %q", ErrInvalidDelta, s.ViewMode)
	}
	for _, side := range Sides {
		if err := validateCourt(s.Court(side)); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidDelta, side, err)
		}
	}
	return nil
}

func validateCourt(c CourtState) error {
	if !c.Template.Valid() {
		return fmt.Errorf("template %q", c.Template)
	}
	counters := []struct {
		name  string
		value int
	}{
		{"p1", c.P1},
		{"p2", c.P2},
		{"p1Sets", c.P1Sets},
		{"p2Sets", c.P2Sets},
		{"timerStored", c.TimerStored},
	}
	for _, ctr := range counters {
		if ctr.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %d", ctr.name, ctr.value)
		}
	}
	if c.Template == TemplateTennis && c.P1 == MaxTennisIndex && c.P2 == MaxTennisIndex {
		return errors.New("both players cannot hold advantage")
	}
	return nil
}

// ValidateDelta checks delta against the state it produced. A tennis point
// index above advantage is only accepted when the same delta switches the
// template, so counters carried over from another template survive.
func ValidateDelta(d Delta, next MatchState) error {
	for _, side := range Sides {
		cd := d.Court(side)
		if cd == nil || cd.Template != nil || next.Court(side).Template != TemplateTennis {
			continue
		}
		for _, p := range []*int{cd.P1, cd.P2} {
			if p != nil && *p > MaxTennisIndex {
				return fmt.Errorf("%w: %s: tennis point index %d above %d", ErrInvalidDelta, side, *p, MaxTennisIndex)
			}
		}
	}
	return nil
}

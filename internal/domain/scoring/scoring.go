// Package scoring holds the per-court state transitions. Every function
// returns a new value and leaves its input untouched.
package scoring

import (
	"strconv"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
	"github.com/preston-bernstein/court-score-service/internal/domain/timer"
)

// TennisLabels is the display sequence for tennis point indices.
var TennisLabels = [...]string{"0", "15", "30", "40", "AD"}

const (
	tennisForty     = 3
	tennisAdvantage = 4
)

// Score applies one point for player on the court at side. It is suppressed
// while the running-text overlay is shown; changed is false in that case.
func Score(s match.MatchState, side match.Side, player match.Player) (next match.MatchState, changed bool) {
	if s.ViewMode == match.ViewText {
		return s.Clone(), false
	}
	return s.WithCourt(side, ScoreCourt(s.Court(side), player)), true
}

// ScoreCourt dispatches a point on the court's template.
func ScoreCourt(c match.CourtState, player match.Player) match.CourtState {
	next := c.Clone()
	switch c.Template {
	case match.TemplateAmericano:
		if player == match.Player1 {
			next.P1++
		} else {
			next.P2++
		}
	case match.TemplateTennis:
		next = scoreTennis(next, player)
	}
	return next
}

func scoreTennis(c match.CourtState, player match.Player) match.CourtState {
	my, opp := &c.P1, &c.P2
	mySets := &c.P1Sets
	if player == match.Player2 {
		my, opp = &c.P2, &c.P1
		mySets = &c.P2Sets
	}

	switch {
	case *my == tennisForty && *opp < tennisForty, *my == tennisAdvantage:
		*mySets++
		c.P1, c.P2 = 0, 0
	case *my == tennisForty && *opp == tennisForty:
		*my = tennisAdvantage
	case *my == tennisForty && *opp == tennisAdvantage:
		*opp = tennisForty
	default:
		*my++
	}
	return c
}

// ResetCourt zeroes points, sets and the timer but keeps names and template.
func ResetCourt(c match.CourtState) match.CourtState {
	next := timer.Reset(c)
	next.P1, next.P2 = 0, 0
	next.P1Sets, next.P2Sets = 0, 0
	return next
}

// PointLabel renders a point value for the board.
func PointLabel(template match.Template, value int) string {
	if template == match.TemplateTennis {
		if value < 0 || value >= len(TennisLabels) {
			return TennisLabels[0]
		}
		return TennisLabels[value]
	}
	return strconv.Itoa(value)
}

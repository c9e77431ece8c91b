package controller

import (
	"context"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
	"github.com/preston-bernstein/court-score-service/internal/domain/scoring"
	"github.com/preston-bernstein/court-score-service/internal/domain/timer"
)

// Point scores one point for player on side. It reports false and records
// nothing while the running-text overlay is shown.
func (c *Controller) Point(ctx context.Context, side match.Side, player match.Player) (bool, error) {
	if err := c.checkCourt(side); err != nil {
		return false, err
	}
	return c.mutate(ctx, "point", func(cur match.MatchState) (change, bool) {
		next, changed := scoring.Score(cur, side, player)
		if !changed {
			return change{}, false
		}
		return change{next: next, delta: courtDelta(next, side), historied: true}, true
	}), nil
}

// ResetCourt zeroes points, sets and the timer on side.
func (c *Controller) ResetCourt(ctx context.Context, side match.Side) error {
	return c.courtAction(ctx, "reset_court", side, true, scoring.ResetCourt)
}

// ToggleTimer starts or pauses the court timer.
func (c *Controller) ToggleTimer(ctx context.Context, side match.Side) error {
	now := c.clock.Now()
	return c.courtAction(ctx, "toggle_timer", side, false, func(court match.CourtState) match.CourtState {
		return timer.Toggle(court, now)
	})
}

// ResetTimer stops the court timer and clears its stored time.
func (c *Controller) ResetTimer(ctx context.Context, side match.Side) error {
	return c.courtAction(ctx, "reset_timer", side, false, timer.Reset)
}

// SetNames replaces both player labels on side.
func (c *Controller) SetNames(ctx context.Context, side match.Side, p1, p2 string) error {
	return c.courtAction(ctx, "set_names", side, false, func(court match.CourtState) match.CourtState {
		court.P1Name = p1
		court.P2Name = p2
		return court
	})
}

// SetTemplate switches the scoring format on side. Points are kept.
func (c *Controller) SetTemplate(ctx context.Context, side match.Side, t match.Template) error {
	if err := checkTemplate(t); err != nil {
		return err
	}
	return c.courtAction(ctx, "set_template", side, false, func(court match.CourtState) match.CourtState {
		court.Template = t
		return court
	})
}

// RemoteSetTemplate is the per-court remote variant of SetTemplate: it also
// brings the board back to the score view and stops the video.
func (c *Controller) RemoteSetTemplate(ctx context.Context, side match.Side, t match.Template) error {
	if err := c.checkCourt(side); err != nil {
		return err
	}
	if err := checkTemplate(t); err != nil {
		return err
	}
	c.mutate(ctx, "remote_set_template", func(cur match.MatchState) (change, bool) {
		court := cur.Court(side)
		court.Template = t
		next := cur.WithCourt(side, court)
		next.ViewMode = match.ViewScore
		next.Motion.Active = false

		delta := courtDelta(next, side)
		viewMode := next.ViewMode
		active := false
		delta.ViewMode = &viewMode
		delta.Motion = &match.MotionDelta{Active: &active}
		return change{next: next, delta: delta}, true
	})
	return nil
}

func (c *Controller) courtAction(ctx context.Context, action string, side match.Side, historied bool, fn func(match.CourtState) match.CourtState) error {
	if err := c.checkCourt(side); err != nil {
		return err
	}
	c.mutate(ctx, action, func(cur match.MatchState) (change, bool) {
		next := cur.WithCourt(side, fn(cur.Court(side)))
		return change{next: next, delta: courtDelta(next, side), historied: historied}, true
	})
	return nil
}

// LocalTimer returns the elapsed seconds on side according to the local view.
func (c *Controller) LocalTimer(side match.Side) int {
	c.mu.Lock()
	court := c.state.Court(side)
	c.mu.Unlock()
	return timer.CourtElapsed(court, c.clock.Now())
}

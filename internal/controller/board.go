package controller

import (
	"context"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
)

// ToggleViewMode flips between the score and running-text views and stops the video.
func (c *Controller) ToggleViewMode(ctx context.Context) {
	c.mutate(ctx, "toggle_view_mode", func(cur match.MatchState) (change, bool) {
		next := cur
		if cur.ViewMode == match.ViewText {
			next.ViewMode = match.ViewScore
		} else {
			next.ViewMode = match.ViewText
		}
		next.Motion.Active = false

		viewMode := next.ViewMode
		active := false
		return change{next: next, delta: match.Delta{
			ViewMode: &viewMode,
			Motion:   &match.MotionDelta{Active: &active},
		}}, true
	})
}

// SetRunningText replaces the marquee text.
func (c *Controller) SetRunningText(ctx context.Context, text string) {
	c.mutate(ctx, "set_running_text", func(cur match.MatchState) (change, bool) {
		cur.RunningText = text
		return change{next: cur, delta: match.Delta{RunningText: &text}}, true
	})
}

// ToggleAnimating starts or stops the marquee scroll.
func (c *Controller) ToggleAnimating(ctx context.Context) {
	c.mutate(ctx, "toggle_animating", func(cur match.MatchState) (change, bool) {
		cur.IsAnimating = !cur.IsAnimating
		animating := cur.IsAnimating
		return change{next: cur, delta: match.Delta{IsAnimating: &animating}}, true
	})
}

// ToggleClock flips both the board clock and the video overlay clock.
func (c *Controller) ToggleClock(ctx context.Context) {
	c.mutate(ctx, "toggle_clock", func(cur match.MatchState) (change, bool) {
		cur.ShowClock = !cur.ShowClock
		cur.Motion.ShowClock = !cur.Motion.ShowClock
		show, motionShow := cur.ShowClock, cur.Motion.ShowClock
		return change{next: cur, delta: match.Delta{
			ShowClock: &show,
			Motion:    &match.MotionDelta{ShowClock: &motionShow},
		}}, true
	})
}

// ToggleMotion starts or stops the video.
func (c *Controller) ToggleMotion(ctx context.Context) {
	c.motionAction(ctx, "toggle_motion", func(m match.MotionConfig) match.MotionConfig {
		m.Active = !m.Active
		return m
	})
}

// ToggleMotionBackground moves the video between foreground and background.
func (c *Controller) ToggleMotionBackground(ctx context.Context) {
	c.motionAction(ctx, "toggle_motion_background", func(m match.MotionConfig) match.MotionConfig {
		m.AsBackground = !m.AsBackground
		return m
	})
}

// PlayMotion selects src and starts playing it.
func (c *Controller) PlayMotion(ctx context.Context, src string) {
	c.motionAction(ctx, "play_motion", func(m match.MotionConfig) match.MotionConfig {
		m.Src = src
		m.Active = true
		return m
	})
}

func (c *Controller) motionAction(ctx context.Context, action string, fn func(match.MotionConfig) match.MotionConfig) {
	c.mutate(ctx, action, func(cur match.MatchState) (change, bool) {
		cur.Motion = fn(cur.Motion)
		return change{next: cur, delta: match.Delta{Motion: match.FullMotion(cur.Motion)}}, true
	})
}

// Undo restores the most recent historied snapshot and pushes it whole. It
// reports false when there is nothing to undo. Remote edits made since the
// snapshot are overwritten.
func (c *Controller) Undo(ctx context.Context) bool {
	c.mu.Lock()
	prev, ok := c.history.Pop()
	if !ok {
		c.mu.Unlock()
		return false
	}
	c.state = prev.Clone()
	c.mu.Unlock()

	c.push(ctx, "undo", match.FullState(prev))
	return true
}

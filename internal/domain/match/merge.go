package match

// Merge applies d to s and returns the result. left, right and motion merge
// one level deep; every other present field replaces. Fields absent from d
// are untouched. s itself is never modified.
func Merge(s MatchState, d Delta) MatchState {
	next := s.Clone()
	if d.ViewMode != nil {
		next.ViewMode = *d.ViewMode
	}
	if d.RunningText != nil {
		next.RunningText = *d.RunningText
	}
	if d.IsAnimating != nil {
		next.IsAnimating = *d.IsAnimating
	}
	if d.ShowClock != nil {
		next.ShowClock = *d.ShowClock
	}
	if d.Motion != nil {
		next.Motion = mergeMotion(next.Motion, *d.Motion)
	}
	if d.Left != nil {
		next.Left = mergeCourt(next.Left, *d.Left)
	}
	if d.Right != nil {
		next.Right = mergeCourt(next.Right, *d.Right)
	}
	return next
}

func mergeCourt(c CourtState, d CourtDelta) CourtState {
	if d.Template != nil {
		c.Template = *d.Template
	}
	if d.P1Name != nil {
		c.P1Name = *d.P1Name
	}
	if d.P2Name != nil {
		c.P2Name = *d.P2Name
	}
	if d.P1Sets != nil {
		c.P1Sets = *d.P1Sets
	}
	if d.P2Sets != nil {
		c.P2Sets = *d.P2Sets
	}
	if d.P1 != nil {
		c.P1 = *d.P1
	}
	if d.P2 != nil {
		c.P2 = *d.P2
	}
	if d.TimerStart.Set {
		if d.TimerStart.Value == nil {
			c.TimerStart = nil
		} else {
			start := *d.TimerStart.Value
			c.TimerStart = &start
		}
	}
	if d.TimerStored != nil {
		c.TimerStored = *d.TimerStored
	}
	return c
}

func mergeMotion(m MotionConfig, d MotionDelta) MotionConfig {
	if d.Src != nil {
		m.Src = *d.Src
	}
	if d.Active != nil {
		m.Active = *d.Active
	}
	if d.AsBackground != nil {
		m.AsBackground = *d.AsBackground
	}
	if d.ShowClock != nil {
		m.ShowClock = *d.ShowClock
	}
	return m
}

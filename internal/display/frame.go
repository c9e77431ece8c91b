package display

import (
	"strings"
	"time"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
	"github.com/preston-bernstein/court-score-service/internal/domain/scoring"
	"github.com/preston-bernstein/court-score-service/internal/domain/timer"
	"github.com/preston-bernstein/court-score-service/internal/timeutil"
)

const (
	marqueeRepeat   = 20
	marqueeFallback = "PADEL CHAMPIONS"
)

// Frame is everything the board draws at one instant, layered back to front.
type Frame struct {
	At         time.Time
	Background bool
	Video      *VideoLayer
	Data       *DataLayer
}

// VideoLayer is the motion clip. Foreground clips cover the data layer and
// may carry their own clock overlay.
type VideoLayer struct {
	Src        string
	Foreground bool
	Clock      string
}

// DataLayer holds either the marquee or the two court panels, plus the main clock.
type DataLayer struct {
	Marquee *Marquee
	Courts  []CourtPanel
	Clock   string
}

// Marquee is the running-text view.
type Marquee struct {
	Text      string
	Animating bool
}

// CourtPanel is one court as drawn. Right panels are mirrored.
type CourtPanel struct {
	Side     match.Side
	Template match.Template
	Mirrored bool
	P1Name   string
	P2Name   string
	P1Points string
	P2Points string
	ShowSets bool
	P1Sets   int
	P2Sets   int
	Timer    string
}

// BuildFrame computes the board for state at now. Clocks are formatted in loc.
func BuildFrame(state match.MatchState, now time.Time, loc *time.Location) Frame {
	m := state.Motion
	clock := timeutil.FormatClock(now, loc)
	f := Frame{
		At:         now,
		Background: !m.Active || !m.AsBackground,
	}

	if m.Active && m.Src != "" {
		v := &VideoLayer{Src: m.Src, Foreground: !m.AsBackground}
		if v.Foreground && state.ShowClock {
			v.Clock = clock
		}
		f.Video = v
	}

	if !m.Active || m.AsBackground {
		d := &DataLayer{}
		if state.ViewMode == match.ViewText {
			d.Marquee = buildMarquee(state)
		} else {
			d.Courts = []CourtPanel{
				buildPanel(match.SideLeft, state.Left, now),
				buildPanel(match.SideRight, state.Right, now),
			}
		}
		if state.ShowClock {
			d.Clock = clock
		}
		f.Data = d
	}
	return f
}

func buildMarquee(state match.MatchState) *Marquee {
	text := state.RunningText
	if text == "" {
		text = marqueeFallback
	}
	return &Marquee{
		Text:      strings.Repeat(text, marqueeRepeat),
		Animating: state.IsAnimating,
	}
}

func buildPanel(side match.Side, c match.CourtState, now time.Time) CourtPanel {
	template := c.Template
	if template == "" {
		template = match.TemplateAmericano
	}
	p := CourtPanel{
		Side:     side,
		Template: template,
		Mirrored: side == match.SideRight,
		P1Name:   c.P1Name,
		P2Name:   c.P2Name,
	}
	switch template {
	case match.TemplateTimer:
		p.Timer = timer.Format(timer.CourtElapsed(c, now))
	case match.TemplateTennis:
		p.ShowSets = true
		p.P1Sets, p.P2Sets = c.P1Sets, c.P2Sets
		fallthrough
	default:
		p.P1Points = scoring.PointLabel(template, c.P1)
		p.P2Points = scoring.PointLabel(template, c.P2)
	}
	return p
}

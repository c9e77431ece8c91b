package display

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// TextRenderer writes a one-line description of each frame that differs
// from the previous one. It stands in for a real board in terminals and logs.
type TextRenderer struct {
	w    io.Writer
	mu   sync.Mutex
	last string
}

// NewTextRenderer returns a TextRenderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// Render writes frame when its description changed.
func (r *TextRenderer) Render(ctx context.Context, frame Frame) error {
	_ = ctx
	line := Describe(frame)
	r.mu.Lock()
	defer r.mu.Unlock()
	if line == r.last {
		return nil
	}
	r.last = line
	_, err := fmt.Fprintln(r.w, line)
	return err
}

// Describe renders frame as a single line of text.
func Describe(frame Frame) string {
	var parts []string
	if v := frame.Video; v != nil {
		layer := "video(bg)"
		if v.Foreground {
			layer = "video"
		}
		part := layer + " " + v.Src
		if v.Clock != "" {
			part += " " + v.Clock
		}
		parts = append(parts, part)
	}
	if d := frame.Data; d != nil {
		if d.Clock != "" {
			parts = append(parts, d.Clock)
		}
		if m := d.Marquee; m != nil {
			text := m.Text
			if runes := []rune(text); len(runes) > 40 {
				text = string(runes[:40]) + "..."
			}
			parts = append(parts, fmt.Sprintf("text %q", text))
		}
		for _, p := range d.Courts {
			parts = append(parts, describePanel(p))
		}
	}
	if len(parts) == 0 {
		return "blank"
	}
	return strings.Join(parts, " | ")
}

func describePanel(p CourtPanel) string {
	switch {
	case p.Timer != "":
		return fmt.Sprintf("%s timer %s", p.Side, p.Timer)
	case p.ShowSets:
		return fmt.Sprintf("%s %s %s(%d) %s - %s %s(%d)", p.Side, p.Template,
			p.P1Name, p.P1Sets, p.P1Points, p.P2Points, p.P2Name, p.P2Sets)
	default:
		return fmt.Sprintf("%s %s %s %s - %s %s", p.Side, p.Template,
			p.P1Name, p.P1Points, p.P2Points, p.P2Name)
	}
}

package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
)

// ErrUnknownCommand is returned by Exec for unrecognised input.
var ErrUnknownCommand = errors.New("unknown command")

// ErrUsage is returned by Exec when a command has the wrong arguments.
var ErrUsage = errors.New("usage")

// Usage lists the line commands understood by Exec.
const Usage = `commands:
  point <left|right> <1|2>
  reset <left|right>
  timer <left|right> <toggle|reset>
  names <left|right> <p1> <p2>
  template <left|right> <americano|tennis|timer>
  remote-template <left|right> <americano|tennis|timer>
  view | text <message> | animate | clock
  motion | motion-bg | play <src>
  undo | show | help`

// Exec runs one line command against the controller and returns a short
// report of the outcome. Blank lines are ignored.
func (c *Controller) Exec(ctx context.Context, line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	cmd, rest := strings.ToLower(args[0]), args[1:]

	switch cmd {
	case "help":
		return Usage, nil
	case "show":
		return c.summary(), nil
	case "undo":
		if !c.Undo(ctx) {
			return "nothing to undo", nil
		}
		return c.summary(), nil
	case "view":
		c.ToggleViewMode(ctx)
	case "text":
		c.SetRunningText(ctx, remainder(line))
	case "animate":
		c.ToggleAnimating(ctx)
	case "clock":
		c.ToggleClock(ctx)
	case "motion":
		c.ToggleMotion(ctx)
	case "motion-bg":
		c.ToggleMotionBackground(ctx)
	case "play":
		if len(rest) != 1 {
			return "", fmt.Errorf("%w: play <src>", ErrUsage)
		}
		c.PlayMotion(ctx, rest[0])
	case "point", "reset", "timer", "names", "template", "remote-template":
		return c.execCourt(ctx, cmd, rest)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	return c.summary(), nil
}

// remainder returns line after the command word and its single separator,
// keeping the rest of the spacing as typed.
func remainder(line string) string {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return ""
	}
	_, size := utf8.DecodeRuneInString(line[i:])
	return line[i+size:]
}

func (c *Controller) execCourt(ctx context.Context, cmd string, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: %s <left|right> ...", ErrUsage, cmd)
	}
	side, err := match.ParseSide(strings.ToLower(args[0]))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnknownCourt, err)
	}
	args = args[1:]

	switch cmd {
	case "point":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: point <left|right> <1|2>", ErrUsage)
		}
		player, perr := match.ParsePlayer(args[0])
		if perr != nil {
			return "", fmt.Errorf("%w: %v", ErrUsage, perr)
		}
		scored, serr := c.Point(ctx, side, player)
		if serr != nil {
			return "", serr
		}
		if !scored {
			return "scoring is locked while the running text is shown", nil
		}
	case "reset":
		err = c.ResetCourt(ctx, side)
	case "timer":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: timer <left|right> <toggle|reset>", ErrUsage)
		}
		switch strings.ToLower(args[0]) {
		case "toggle":
			err = c.ToggleTimer(ctx, side)
		case "reset":
			err = c.ResetTimer(ctx, side)
		default:
			return "", fmt.Errorf("%w: timer <left|right> <toggle|reset>", ErrUsage)
		}
	case "names":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: names <left|right> <p1> <p2>", ErrUsage)
		}
		err = c.SetNames(ctx, side, args[0], args[1])
	case "template", "remote-template":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: %s <left|right> <template>", ErrUsage, cmd)
		}
		t := match.Template(strings.ToLower(args[0]))
		if cmd == "template" {
			err = c.SetTemplate(ctx, side, t)
		} else {
			err = c.RemoteSetTemplate(ctx, side, t)
		}
	}
	if err != nil {
		return "", err
	}
	return c.summary(), nil
}

// summary renders the managed courts on one line each.
func (c *Controller) summary() string {
	state := c.State()
	var b strings.Builder
	fmt.Fprintf(&b, "view=%s text=%q undo=%d", state.ViewMode, state.RunningText, c.HistoryLen())
	for _, side := range match.Sides {
		if c.court != "" && c.court != side {
			continue
		}
		court := state.Court(side)
		fmt.Fprintf(&b, "\n%s [%s] %s %d - %d %s sets %d-%d timer %ds",
			side, court.Template, court.P1Name, court.P1, court.P2, court.P2Name,
			court.P1Sets, court.P2Sets, c.LocalTimer(side))
	}
	return b.String()
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
)

// ErrInvalidDefaults is returned when a defaults file cannot seed the store.
var ErrInvalidDefaults = errors.New("invalid defaults file")

type courtDefaults struct {
	Template *string `yaml:"template"`
	P1Name   *string `yaml:"p1Name"`
	P2Name   *string `yaml:"p2Name"`
}

type motionDefaults struct {
	Src          *string `yaml:"src"`
	Active       *bool   `yaml:"active"`
	AsBackground *bool   `yaml:"asBackground"`
	ShowClock    *bool   `yaml:"showClock"`
}

// fileDefaults is the on-disk shape of DEFAULTS_FILE. Scores and timers
// always start at zero, so only labels and presentation can be seeded.
type fileDefaults struct {
	ViewMode    *string         `yaml:"viewMode"`
	RunningText *string         `yaml:"runningText"`
	IsAnimating *bool           `yaml:"isAnimating"`
	ShowClock   *bool           `yaml:"showClock"`
	Motion      *motionDefaults `yaml:"motion"`
	Left        *courtDefaults  `yaml:"left"`
	Right       *courtDefaults  `yaml:"right"`
}

// LoadDefaults returns the initial match state. An empty path yields
// match.Defaults; otherwise the YAML file at path is layered on top.
func LoadDefaults(path string) (match.MatchState, error) {
	if path == "" {
		return match.Defaults(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return match.MatchState{}, err
	}
	defer f.Close()
	return ParseDefaults(f)
}

// ParseDefaults decodes YAML defaults from r onto match.Defaults.
func ParseDefaults(r io.Reader) (match.MatchState, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return match.MatchState{}, err
	}
	base := match.Defaults()
	if len(bytes.TrimSpace(raw)) == 0 {
		return base, nil
	}

	var fd fileDefaults
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&fd); err != nil {
		return match.MatchState{}, fmt.Errorf("%w: %v", ErrInvalidDefaults, err)
	}

	state := match.Merge(base, fd.delta())
	if err := match.Validate(state); err != nil {
		return match.MatchState{}, fmt.Errorf("%w: %v", ErrInvalidDefaults, err)
	}
	return state, nil
}

func (fd fileDefaults) delta() match.Delta {
	d := match.Delta{
		RunningText: fd.RunningText,
		IsAnimating: fd.IsAnimating,
		ShowClock:   fd.ShowClock,
		Left:        fd.Left.delta(),
		Right:       fd.Right.delta(),
	}
	if fd.ViewMode != nil {
		vm := match.ViewMode(*fd.ViewMode)
		d.ViewMode = &vm
	}
	if m := fd.Motion; m != nil {
		d.Motion = &match.MotionDelta{
			Src:          m.Src,
			Active:       m.Active,
			AsBackground: m.AsBackground,
			ShowClock:    m.ShowClock,
		}
	}
	return d
}

func (c *courtDefaults) delta() *match.CourtDelta {
	if c == nil {
		return nil
	}
	d := &match.CourtDelta{P1Name: c.P1Name, P2Name: c.P2Name}
	if c.Template != nil {
		t := match.Template(*c.Template)
		d.Template = &t
	}
	return d
}

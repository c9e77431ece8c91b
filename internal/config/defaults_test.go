package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
)

func TestLoadDefaultsEmptyPath(t *testing.T) {
	got, err := LoadDefaults("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != match.Defaults() {
		t.Fatalf("expected built-in defaults, got %+v", got)
	}
}

func TestParseDefaultsLayersOnBuiltins(t *testing.T) {
	doc := `
runningText: "FINALS DAY "
motion:
  active: false
left:
  p1Name: NORTH
  template: timer
`
	got, err := ParseDefaults(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := match.Defaults()
	want.RunningText = "FINALS DAY "
	want.Motion.Active = false
	want.Left.P1Name = "NORTH"
	want.Left.Template = match.TemplateTimer
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestParseDefaultsRejectsUnknownKeys(t *testing.T) {
	_, err := ParseDefaults(strings.NewReader("left:\n  p1: 3\n"))
	if !errors.Is(err, ErrInvalidDefaults) {
		t.Fatalf("expected ErrInvalidDefaults, got %v", err)
	}
}

func TestParseDefaultsRejectsInvalidTemplate(t *testing.T) {
	_, err := ParseDefaults(strings.NewReader("right:\n  template: squash\n"))
	if !errors.Is(err, ErrInvalidDefaults) {
		t.Fatalf("expected ErrInvalidDefaults, got %v", err)
	}
}

func TestLoadDefaultsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	if err := os.WriteFile(path, []byte("viewMode: text\n"), 0o600); err != nil {
		t.Fatalf("write defaults: %v", err)
	}
	got, err := LoadDefaults(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ViewMode != match.ViewText {
		t.Fatalf("expected text view, got %s", got.ViewMode)
	}
}

func TestLoadDefaultsMissingFile(t *testing.T) {
	if _, err := LoadDefaults(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

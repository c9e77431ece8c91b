package timeutil

import "time"

// ClockLayout is the board's wall-clock format (HH:MM, 24-hour).
const ClockLayout = "15:04"

// FormatClock formats t as HH:MM in loc. A nil loc keeps t's location.
func FormatClock(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(ClockLayout)
}

// ResolveLocation loads an IANA zone by name. Empty or unknown names yield time.Local.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.Local
}

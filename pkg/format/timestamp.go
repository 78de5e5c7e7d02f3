package format

import (
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseTimestamp accepts ISO-8601 date-times with or without an offset.
// Values without an offset are read as UTC. A bare date is pinned to noon
// so it never slides across midnight.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return d.Add(12 * time.Hour), true
	}
	return time.Time{}, false
}

// Time renders the wall clock of ts as HH:MM.
func Time(ts string) string {
	t, ok := ParseTimestamp(ts)
	if !ok {
		return "--:--"
	}
	return t.Format("15:04")
}

// Date renders ts as "Mon, 02 Jan".
func Date(ts string) string {
	t, ok := ParseTimestamp(ts)
	if !ok {
		return "--"
	}
	return t.Format("Mon, 02 Jan")
}

package format

import (
	"regexp"
	"strconv"
	"time"
)

var isoDuration = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// ParseDuration reads an ISO-8601 duration such as PT3H25M or P1DT2H.
func ParseDuration(s string) (time.Duration, bool) {
	m := isoDuration.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "PT" {
		return 0, false
	}

	var d time.Duration
	units := []time.Duration{24 * time.Hour, time.Hour, time.Minute}
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0, false
		}
		d += time.Duration(n) * unit
	}
	if m[4] != "" {
		secs, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return 0, false
		}
		d += time.Duration(secs * float64(time.Second))
	}
	return d, true
}

// Duration renders an ISO-8601 duration as "3h 25m". Days are folded into
// hours. Empty, invalid or zero durations render as "--".
func Duration(iso string) string {
	d, ok := ParseDuration(iso)
	if !ok {
		return "--"
	}
	return Elapsed(d)
}

// Between renders the time from start to end the same way as Duration.
func Between(start, end string) string {
	s, okStart := ParseTimestamp(start)
	e, okEnd := ParseTimestamp(end)
	if !okStart || !okEnd || e.Before(s) {
		return "--"
	}
	return Elapsed(e.Sub(s))
}

func Elapsed(d time.Duration) string {
	total := int(d.Minutes())
	hours, minutes := total/60, total%60

	switch {
	case hours > 0 && minutes > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(minutes) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h"
	case minutes > 0:
		return strconv.Itoa(minutes) + "m"
	}
	return "--"
}

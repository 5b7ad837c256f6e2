package schedule

import "strings"

// TimeWindow is an instant-of-day interval in minutes from midnight.
type TimeWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ParseClock parses a single clock time in either 12-hour labelled form
// ("09:00AM", "1:30pm") or 24-hour form ("14:30"). Returns minutes from
// midnight and whether parsing succeeded.
func ParseClock(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	meridiem := ""
	upper := strings.ToUpper(s)
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		meridiem = upper[len(upper)-2:]
		s = strings.TrimSpace(s[:len(s)-2])
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hour, ok := parseDigits(parts[0])
	if !ok {
		return 0, false
	}
	minute, ok := parseDigits(parts[1])
	if !ok || minute > 59 {
		return 0, false
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return 0, false
		}
	}

	return hour*60 + minute, true
}

// ParseTimeWindow parses a "start-end" range where each side may be 12-hour or
// 24-hour form. Absent ("", "NA") or malformed input yields ok=false, which
// downstream overlap checks treat as "never overlaps". This fail-open policy
// mirrors the catalog's tolerance for junk time strings; a malformed but real
// window silently never conflicts with anything.
func ParseTimeWindow(raw string) (TimeWindow, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "na") {
		return TimeWindow{}, false
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return TimeWindow{}, false
	}
	start, ok := ParseClock(parts[0])
	if !ok {
		return TimeWindow{}, false
	}
	end, ok := ParseClock(parts[1])
	if !ok {
		return TimeWindow{}, false
	}
	return TimeWindow{Start: start, End: end}, true
}

// windowsOverlap uses strict inequalities in both directions: a section ending
// exactly when another starts is not a conflict.
func windowsOverlap(a, b TimeWindow) bool {
	return a.Start < b.End && b.Start < a.End
}

// Overlaps reports whether two day/time intervals collide. False when either
// window is absent or malformed, either day set is empty, or the day sets
// share no common day.
func Overlaps(daysA []string, timesA string, daysB []string, timesB string) bool {
	if len(daysA) == 0 || len(daysB) == 0 {
		return false
	}
	if !shareDay(daysA, daysB) {
		return false
	}
	winA, ok := ParseTimeWindow(timesA)
	if !ok {
		return false
	}
	winB, ok := ParseTimeWindow(timesB)
	if !ok {
		return false
	}
	return windowsOverlap(winA, winB)
}

func shareDay(daysA, daysB []string) bool {
	for _, a := range daysA {
		for _, b := range daysB {
			if a == b {
				return true
			}
		}
	}
	return false
}

func parseDigits(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 2 {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

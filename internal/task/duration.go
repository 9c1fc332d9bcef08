package task

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
	minutesPerWeek = 7 * minutesPerDay
)

var (
	bareNumberRe = regexp.MustCompile(`^\d+$`)
	durationRe   = regexp.MustCompile(`^(\d+)\s*([a-z]+)$`)
	compactRe    = regexp.MustCompile(`^(\d+)([mhdw])\s+(\d+)([mhdw])$`)
)

// ParseDuration converts a human time string into whole minutes. It accepts
// "30m", "2h", "1d", "1w" (case-insensitive, surrounding whitespace ignored),
// bare integers, which are taken as minutes, and every form FormatDuration
// produces: the spelled-out units ("2 hours") and the compact two-unit
// fallback ("1h 30m"). Zero, negative and malformed input is rejected.
func ParseDuration(text string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if bareNumberRe.MatchString(s) {
		return unitMinutes(s, "m", text)
	}

	if m := durationRe.FindStringSubmatch(s); m != nil {
		return unitMinutes(m[1], m[2], text)
	}

	if m := compactRe.FindStringSubmatch(s); m != nil {
		hi, err := unitMinutes(m[1], m[2], text)
		if err != nil {
			return 0, err
		}
		lo, err := unitMinutes(m[3], m[4], text)
		if err != nil {
			return 0, err
		}
		return hi + lo, nil
	}

	return 0, fmt.Errorf("malformed duration %q", text)
}

func unitMinutes(value, unit, text string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("malformed duration %q", text)
	}
	if n <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}

	switch unit {
	case "m", "min", "mins", "minute", "minutes":
		return n, nil
	case "h", "hr", "hrs", "hour", "hours":
		return n * minutesPerHour, nil
	case "d", "day", "days":
		return n * minutesPerDay, nil
	case "w", "week", "weeks":
		return n * minutesPerWeek, nil
	}
	return 0, fmt.Errorf("unknown time unit %q", unit)
}

// FormatDuration renders minutes using the largest unit that divides evenly,
// pluralized ("2 hours", "1 week"). When no unit divides evenly it falls back
// to a compact two-unit form ("1h 30m", "1d 2h", "1w 3d"). Zero or negative
// minutes render as the empty string.
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	switch {
	case minutes%minutesPerWeek == 0:
		return pluralize(minutes/minutesPerWeek, "week")
	case minutes%minutesPerDay == 0:
		return pluralize(minutes/minutesPerDay, "day")
	case minutes%minutesPerHour == 0:
		return pluralize(minutes/minutesPerHour, "hour")
	case minutes < minutesPerHour:
		return pluralize(minutes, "minute")
	case minutes < minutesPerDay:
		return fmt.Sprintf("%dh %dm", minutes/minutesPerHour, minutes%minutesPerHour)
	case minutes < minutesPerWeek:
		return fmt.Sprintf("%dd %dh", minutes/minutesPerDay, (minutes%minutesPerDay)/minutesPerHour)
	default:
		return fmt.Sprintf("%dw %dd", minutes/minutesPerWeek, (minutes%minutesPerWeek)/minutesPerDay)
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Package timeofday converts between "HH:MM" strings and minute-of-day
// values. Planner clocks are absolute minutes counted from midnight of the
// first trip day, so a value of 1500 means 01:00 on the following day.
package timeofday

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the length of one calendar day in minutes
const MinutesPerDay = 24 * 60

// Unset is printed for negative (missing) times
const Unset = "--:--"

// Parse converts "HH:MM" into minutes since midnight.
// "24:00" is accepted and yields 1440 so it can be used as an end-of-day bound.
func Parse(s string) (int, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}

	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}

// MustParse is Parse for static tables; it panics on malformed input
func MustParse(s string) int {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Format renders minutes as "HH:MM". Values of a day or more keep counting
// hours (1500 -> "25:00"); use FormatAbsolute for day-aware output.
func Format(minutes int) string {
	if minutes < 0 {
		return Unset
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// OfDay reduces an absolute minute value to the time of day
func OfDay(abs int) int {
	v := abs % MinutesPerDay
	if v < 0 {
		v += MinutesPerDay
	}
	return v
}

// DayOffset returns how many whole days abs lies past the reference midnight
func DayOffset(abs int) int {
	if abs < 0 {
		return -((-abs + MinutesPerDay - 1) / MinutesPerDay)
	}
	return abs / MinutesPerDay
}

// StartOfDay returns the absolute minute of midnight for day index d
func StartOfDay(d int) int {
	return d * MinutesPerDay
}

// FormatAbsolute renders an absolute value relative to the midnight of
// day base, e.g. "06:30 (+1d)" for a time on the following day.
func FormatAbsolute(abs, base int) string {
	if abs < 0 {
		return Unset
	}
	offset := DayOffset(abs) - base
	if offset <= 0 {
		return Format(OfDay(abs))
	}
	return fmt.Sprintf("%s (+%dd)", Format(OfDay(abs)), offset)
}

// Package timeutil parses the human-friendly dates and times accepted on the
// command line.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/planner/pkg/task"
)

var (
	offsetPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	offsetUnits   = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
	dayLayouts = []string{task.DateLayout, "2006-1-2"}
)

// ParseDay resolves input relative to now and returns local midnight of the
// day in now's location. Accepted forms: "" or "today", "tomorrow",
// "yesterday", "2024-06-10", "2024-6-10", "6/10" (the next such date), and
// signed offsets like "+3d", "-1w" or "+1w2d".
func ParseDay(input string, now time.Time) (time.Time, error) {
	today := task.Midnight(now)
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if s[0] == '+' || s[0] == '-' {
		days, err := ParseOffset(s[1:])
		if err != nil {
			return time.Time{}, err
		}
		if s[0] == '-' {
			days = -days
		}
		return today.AddDate(0, 0, days), nil
	}

	for _, layout := range dayLayouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}

	t, err := time.ParseInLocation("1/2", s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD, M/D, today, tomorrow or +Nd", input)
	}
	t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
	// If you said 1/3 on 12/5, you meant next year, not 11 months ago.
	if t.Before(today) {
		t = t.AddDate(1, 0, 0)
	}
	return t, nil
}

// ParseOffset parses a day count such as "3d", "1w" or "1w2d".
func ParseOffset(input string) (int, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, fmt.Errorf("empty offset")
	}
	total := 0
	for len(remaining) > 0 {
		matches := offsetPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid offset segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid offset value %q: %w", matches[1], err)
		}
		unit, ok := offsetUnits[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported offset unit %q", matches[2])
		}
		total += value * unit
		remaining = remaining[len(matches[0]):]
	}
	return total, nil
}

// ParseMonth resolves "2024-06", "2024-6", "this", "next" or "prev" to the
// first of that month in now's location.
func ParseMonth(input string, now time.Time) (time.Time, error) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	switch s := strings.ToLower(strings.TrimSpace(input)); s {
	case "", "this":
		return first, nil
	case "next":
		return first.AddDate(0, 1, 0), nil
	case "prev", "last":
		return first.AddDate(0, -1, 0), nil
	default:
		for _, layout := range []string{task.MonthLayout, "2006-1"} {
			if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("invalid month %q: expected YYYY-MM", input)
	}
}

// ParseClock normalises "9:05" or "0905" to zero-padded "09:05".
func ParseClock(input string) (string, error) {
	s := strings.TrimSpace(input)
	for _, layout := range []string{task.TimeLayout, "15:4", "1504"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(task.TimeLayout), nil
		}
	}
	return "", fmt.Errorf("invalid time %q: expected HH:MM", input)
}

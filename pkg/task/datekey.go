package task

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the canonical date key layout.
	DateLayout = "2006-01-02"
	// MonthLayout is the layout of month keys used for monthly goals.
	MonthLayout = "2006-01"
	// TimeLayout is the time of day layout.
	TimeLayout = "15:04"
)

// DateKey formats t as a date key in t's own location. It is the join key between
// tasks, calendar cells and stamps, so every component derives keys through here.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthKey formats t as a YYYY-MM key in t's own location.
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// Midnight truncates t to the start of its calendar day in its own location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDateKey parses a date key and returns local midnight of that day in loc.
// A nil loc means time.Local.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("task: invalid date %q: %w", key, err)
	}
	return t, nil
}

// ParseMonthKey parses a YYYY-MM key and returns the first of that month in loc.
func ParseMonthKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(MonthLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("task: invalid month %q: %w", key, err)
	}
	return t, nil
}

package schedule

import (
	"fmt"
	"time"

	"tableflip.dev/planner/pkg/task"
)

var weekdaysJA = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// DayLabel renders a full heading such as "2024年6月10日(月)".
func DayLabel(t time.Time) string {
	return fmt.Sprintf("%d年%d月%d日(%s)", t.Year(), int(t.Month()), t.Day(), weekdaysJA[t.Weekday()])
}

// GroupLabel renders a short heading such as "6月11日(火)" for a date key.
// Unparseable keys are returned unchanged.
func GroupLabel(key string) string {
	t, err := task.ParseDateKey(key, time.UTC)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%d月%d日(%s)", int(t.Month()), t.Day(), weekdaysJA[t.Weekday()])
}

package schedule

import (
	"testing"
	"time"

	"tableflip.dev/planner/pkg/task"
)

func ids(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestTodaySortedByTime(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", DueDate: "2024-06-10", Time: "09:00", Tag: task.TagWork},
		{ID: "2", DueDate: "2024-06-10", Time: "08:00", Tag: task.TagStudy},
	}
	w := Build(tasks, time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC))
	got := ids(w.Today)
	if len(got) != 2 || got[0] != "2" || got[1] != "1" {
		t.Fatalf("expected [2 1], got %v", got)
	}
	if len(w.Upcoming) != 0 {
		t.Fatalf("expected no upcoming tasks, got %v", w.Upcoming)
	}
	if tasks[0].ID != "1" {
		t.Fatalf("input must not be reordered")
	}
}

func TestTodayStableForEqualTimes(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", DueDate: "2024-06-10", Time: "09:00"},
		{ID: "b", DueDate: "2024-06-10", Time: "09:00"},
		{ID: "c", DueDate: "2024-06-10", Time: "07:30"},
	}
	got := ids(Build(tasks, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)).Today)
	if got[0] != "c" || got[1] != "a" || got[2] != "b" {
		t.Fatalf("expected [c a b], got %v", got)
	}
}

func TestUpcomingBoundsAndGrouping(t *testing.T) {
	now := time.Date(2024, time.June, 10, 23, 30, 0, 0, time.UTC)
	tasks := []task.Task{
		{ID: "yesterday", DueDate: "2024-06-09", Time: "10:00"},
		{ID: "today", DueDate: "2024-06-10", Time: "10:00"},
		{ID: "tomorrow-late", DueDate: "2024-06-11", Time: "18:00"},
		{ID: "week", DueDate: "2024-06-17", Time: "23:59"},
		{ID: "tomorrow-early", DueDate: "2024-06-11", Time: "06:00"},
		{ID: "eight", DueDate: "2024-06-18", Time: "00:00"},
		{ID: "mid", DueDate: "2024-06-13", Time: "12:00"},
	}
	w := Build(tasks, now)

	if len(w.Upcoming) != 3 {
		t.Fatalf("expected 3 groups, got %d: %+v", len(w.Upcoming), w.Upcoming)
	}
	if w.Upcoming[0].Date != "2024-06-11" || w.Upcoming[1].Date != "2024-06-13" || w.Upcoming[2].Date != "2024-06-17" {
		t.Fatalf("unexpected group dates: %+v", w.Upcoming)
	}
	first := ids(w.Upcoming[0].Tasks)
	if first[0] != "tomorrow-early" || first[1] != "tomorrow-late" {
		t.Fatalf("expected time order within a day, got %v", first)
	}
	if w.Count() != 4 {
		t.Fatalf("expected 4 upcoming tasks, got %d", w.Count())
	}
	if got := ids(w.Today); len(got) != 1 || got[0] != "today" {
		t.Fatalf("expected only today's task, got %v", got)
	}
}

func TestUpcomingRangeAcrossMonthEnd(t *testing.T) {
	from, to := UpcomingRange(time.Date(2024, time.February, 27, 9, 0, 0, 0, time.UTC))
	if from != "2024-02-28" || to != "2024-03-05" {
		t.Fatalf("expected 2024-02-28..2024-03-05, got %s..%s", from, to)
	}
}

func TestEmptyInput(t *testing.T) {
	w := Build(nil, time.Now())
	if len(w.Today) != 0 || len(w.Upcoming) != 0 {
		t.Fatalf("expected empty window, got %+v", w)
	}
}

func TestLabels(t *testing.T) {
	if got := DayLabel(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)); got != "2024年6月10日(月)" {
		t.Fatalf("unexpected day label %q", got)
	}
	if got := GroupLabel("2024-06-11"); got != "6月11日(火)" {
		t.Fatalf("unexpected group label %q", got)
	}
	if got := GroupLabel("someday"); got != "someday" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

package calendar

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"testing"
	"time"

	"pgregory.net/rapid"

	"tableflip.dev/planner/pkg/index"
	"tableflip.dev/planner/pkg/task"
)

// Every month tiles whole weeks and contains each of its days exactly once.
func TestProperty_GridTilesWeeks(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		year := rapid.IntRange(1, 9999).Draw(t, "year")
		month0 := rapid.IntRange(-24, 35).Draw(t, "month0")

		cells := Build(Options{Year: year, Month0: month0, Location: time.UTC})
		if len(cells)%7 != 0 {
			t.Fatalf("cell count %d is not a multiple of 7", len(cells))
		}

		first := FirstOfMonth(year, month0, time.UTC)
		want := DaysIn(first)
		days := 0
		leading := 0
		for i, c := range cells {
			if c.Padding {
				if days == 0 {
					leading++
				}
				continue
			}
			days++
			if c.Day != days {
				t.Fatalf("cell %d has day %d, expected %d", i, c.Day, days)
			}
		}
		if days != want {
			t.Fatalf("expected %d days, got %d", want, days)
		}
		if leading != int(first.Weekday()) {
			t.Fatalf("expected %d leading cells, got %d", first.Weekday(), leading)
		}
	})
}

// Month -1 of year Y is December of Y-1.
func TestProperty_NegativeMonthWraps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		year := rapid.IntRange(2, 9999).Draw(t, "year")
		a := Build(Options{Year: year, Month0: -1, Location: time.UTC})
		b := Build(Options{Year: year - 1, Month0: 11, Location: time.UTC})
		if len(a) != len(b) {
			t.Fatalf("length mismatch %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i].Padding != b[i].Padding || a[i].Day != b[i].Day {
				t.Fatalf("cell %d differs", i)
			}
		}
	})
}

// Markers hold at most three tags of the day's tasks, and none on the selected day.
func TestProperty_TagMarkersBounded(t *testing.T) {
	tags := task.AllTags()
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		tasks := make([]task.Task, n)
		for i := range tasks {
			tasks[i] = task.Task{
				ID:      fmt.Sprintf("t-%d", i),
				DueDate: fmt.Sprintf("2024-06-%02d", rapid.IntRange(1, 30).Draw(t, "day")),
				Tag:     tags[rapid.IntRange(0, len(tags)-1).Draw(t, "tag")],
			}
		}
		selected := rapid.IntRange(1, 30).Draw(t, "selected")
		idx := index.Build(tasks)
		cells := Build(Options{
			Year:     2024,
			Month0:   5,
			Selected: time.Date(2024, time.June, selected, 0, 0, 0, 0, time.UTC),
			Index:    idx,
			Location: time.UTC,
		})
		for _, c := range cells {
			if c.Padding {
				continue
			}
			if c.Selected && len(c.Tags) != 0 {
				t.Fatalf("selected day %s has markers", c.Date)
			}
			if len(c.Tags) > MaxTagMarkers {
				t.Fatalf("day %s has %d markers", c.Date, len(c.Tags))
			}
			present := make(map[task.Tag]bool)
			for _, tk := range idx.Get(c.Date) {
				present[tk.Tag] = true
			}
			seen := make(map[task.Tag]bool)
			for _, tag := range c.Tags {
				if !present[tag] {
					t.Fatalf("day %s shows absent tag %s", c.Date, tag)
				}
				if seen[tag] {
					t.Fatalf("day %s repeats tag %s", c.Date, tag)
				}
				seen[tag] = true
			}
		}
	})
}

func snapshot(idx *index.DateIndex) map[string][]task.Task {
	out := make(map[string][]task.Task)
	for _, k := range idx.Keys() {
		out[k] = slices.Clone(idx.Get(k))
	}
	return out
}

// Build reads the index and stamp set without changing either.
func TestProperty_GridLeavesInputUntouched(t *testing.T) {
	tags := task.AllTags()
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		tasks := make([]task.Task, n)
		for i := range tasks {
			tasks[i] = task.Task{
				ID:      fmt.Sprintf("t-%d", i),
				DueDate: fmt.Sprintf("2024-06-%02d", rapid.IntRange(1, 30).Draw(t, "day")),
				Time:    fmt.Sprintf("%02d:00", rapid.IntRange(0, 23).Draw(t, "hour")),
				Tag:     tags[rapid.IntRange(0, len(tags)-1).Draw(t, "tag")],
			}
		}
		tasks = rapid.Permutation(tasks).Draw(t, "shuffled")
		tasksBefore := slices.Clone(tasks)

		idx := index.Build(tasks)
		keysBefore := slices.Clone(idx.Keys())
		groupsBefore := snapshot(idx)

		stamps := NewStampSet()
		for _, d := range rapid.SliceOfN(rapid.IntRange(1, 30), 0, 10).Draw(t, "stamps") {
			stamps[fmt.Sprintf("2024-06-%02d", d)] = struct{}{}
		}
		stampsBefore := maps.Clone(stamps)

		_ = Build(Options{
			Year:     2024,
			Month0:   5,
			Selected: time.Date(2024, time.June, rapid.IntRange(1, 30).Draw(t, "selected"), 0, 0, 0, 0, time.UTC),
			Today:    time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC),
			Index:    idx,
			Stamped:  stamps,
			Location: time.UTC,
		})

		if !reflect.DeepEqual(tasks, tasksBefore) {
			t.Fatal("task slice changed")
		}
		if !reflect.DeepEqual(idx.Keys(), keysBefore) || !reflect.DeepEqual(snapshot(idx), groupsBefore) {
			t.Fatal("index changed")
		}
		if !reflect.DeepEqual(stamps, stampsBefore) {
			t.Fatal("stamp set changed")
		}
	})
}

// Package calendar builds month grids annotated with tasks, stamps and selection.
package calendar

import (
	"time"

	"tableflip.dev/planner/pkg/index"
	"tableflip.dev/planner/pkg/task"
)

// MaxTagMarkers caps the number of tag markers shown on a day.
const MaxTagMarkers = 3

// Cell is one slot of a month grid. Padding cells carry no date.
type Cell struct {
	Padding  bool       `json:"padding,omitempty"`
	Date     string     `json:"date,omitempty"`
	Day      int        `json:"day,omitempty"`
	Selected bool       `json:"selected,omitempty"`
	Today    bool       `json:"today,omitempty"`
	Stamped  bool       `json:"stamped,omitempty"`
	Tags     []task.Tag `json:"tags,omitempty"`
	Tasks    int        `json:"tasks,omitempty"`
}

// StampSet holds stamped date keys.
type StampSet map[string]struct{}

// NewStampSet builds a set from date keys.
func NewStampSet(keys ...string) StampSet {
	s := make(StampSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether key is stamped. A nil set has nothing stamped.
func (s StampSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Options describes the month to build. Month0 is zero based and may fall
// outside 0..11; it is normalised by calendar arithmetic.
type Options struct {
	Year     int
	Month0   int
	Selected time.Time
	Today    time.Time
	Index    *index.DateIndex
	Stamped  StampSet
	Location *time.Location
}

// Build lays out the month as whole weeks starting on Sunday: leading padding,
// one cell per day, then trailing padding up to a multiple of seven.
func Build(o Options) []Cell {
	loc := o.Location
	if loc == nil {
		loc = time.Local
	}
	first := FirstOfMonth(o.Year, o.Month0, loc)
	offset := int(first.Weekday())
	days := DaysIn(first)

	selectedKey := keyOrEmpty(o.Selected)
	todayKey := keyOrEmpty(o.Today)

	cells := make([]Cell, 0, offset+days+6)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{Padding: true})
	}

	year, month, _ := first.Date()
	for day := 1; day <= days; day++ {
		key := task.DateKey(time.Date(year, month, day, 0, 0, 0, 0, loc))
		tasks := o.Index.Get(key)
		c := Cell{
			Date:     key,
			Day:      day,
			Selected: key == selectedKey,
			Today:    key == todayKey,
			Stamped:  o.Stamped.Has(key),
			Tasks:    len(tasks),
		}
		if !c.Selected {
			c.Tags = TagMarkers(tasks)
		}
		cells = append(cells, c)
	}

	trailing := (7 - (offset+days)%7) % 7
	for i := 0; i < trailing; i++ {
		cells = append(cells, Cell{Padding: true})
	}
	return cells
}

// TagMarkers returns the distinct tags of tasks in first-seen order, capped at
// MaxTagMarkers.
func TagMarkers(tasks []task.Task) []task.Tag {
	var tags []task.Tag
	seen := make(map[task.Tag]bool, MaxTagMarkers)
	for _, t := range tasks {
		if seen[t.Tag] {
			continue
		}
		seen[t.Tag] = true
		tags = append(tags, t.Tag)
		if len(tags) == MaxTagMarkers {
			break
		}
	}
	return tags
}

// FirstOfMonth returns local midnight on day 1 of the normalised month.
func FirstOfMonth(year, month0 int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, loc)
}

// FirstWeekday is the weekday of day 1 of the month, Sunday being 0.
func FirstWeekday(year, month0 int) time.Weekday {
	return FirstOfMonth(year, month0, time.UTC).Weekday()
}

// DaysIn returns the number of days in month's month, taken as day 0 of the
// following month.
func DaysIn(month time.Time) int {
	return time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, month.Location()).Day()
}

// YearMonth is the YYYY-MM key of the normalised month.
func YearMonth(year, month0 int) string {
	return task.MonthKey(FirstOfMonth(year, month0, time.UTC))
}

// Weeks splits a grid into rows of seven.
func Weeks(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, (len(cells)+6)/7)
	for start := 0; start < len(cells); start += 7 {
		end := min(start+7, len(cells))
		rows = append(rows, cells[start:end])
	}
	return rows
}

func keyOrEmpty(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return task.DateKey(t)
}

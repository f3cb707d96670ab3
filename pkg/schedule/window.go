// Package schedule derives the day and upcoming-week task lists.
package schedule

import (
	"sort"
	"time"

	"tableflip.dev/planner/pkg/task"
)

// Horizon is how many days past the reference day count as upcoming.
const Horizon = 7

// Group holds the tasks due on one upcoming date.
type Group struct {
	Date  string      `json:"date"`
	Tasks []task.Task `json:"tasks"`
}

// Window is the schedule seen from one reference instant.
type Window struct {
	Date     string      `json:"date"`
	Today    []task.Task `json:"today"`
	Upcoming []Group     `json:"upcoming"`
}

// Build selects the tasks due on now's calendar day, ordered by time, and the
// tasks due from tomorrow through Horizon days out, ordered by date then time
// and grouped by date. Tasks is never modified.
func Build(tasks []task.Task, now time.Time) Window {
	todayKey := task.DateKey(now)
	w := Window{Date: todayKey}

	for _, t := range tasks {
		if t.DueDate == todayKey {
			w.Today = append(w.Today, t)
		}
	}
	sort.SliceStable(w.Today, func(i, j int) bool {
		return w.Today[i].Time < w.Today[j].Time
	})

	from, to := UpcomingRange(now)
	var upcoming []task.Task
	for _, t := range tasks {
		if t.DueDate >= from && t.DueDate <= to {
			upcoming = append(upcoming, t)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].SortKey() < upcoming[j].SortKey()
	})
	w.Upcoming = group(upcoming)
	return w
}

// UpcomingRange returns the inclusive date key bounds of the upcoming list:
// tomorrow (from local midnight) through Horizon days after now.
func UpcomingRange(now time.Time) (from, to string) {
	midnight := task.Midnight(now)
	return task.DateKey(midnight.AddDate(0, 0, 1)), task.DateKey(now.AddDate(0, 0, Horizon))
}

// Count returns the number of upcoming tasks across all groups.
func (w Window) Count() int {
	n := 0
	for _, g := range w.Upcoming {
		n += len(g.Tasks)
	}
	return n
}

// group splits date-sorted tasks on date change.
func group(sorted []task.Task) []Group {
	var groups []Group
	for _, t := range sorted {
		if n := len(groups); n > 0 && groups[n-1].Date == t.DueDate {
			groups[n-1].Tasks = append(groups[n-1].Tasks, t)
			continue
		}
		groups = append(groups, Group{Date: t.DueDate, Tasks: []task.Task{t}})
	}
	return groups
}

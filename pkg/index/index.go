// Package index groups tasks by their due date.
package index

import "tableflip.dev/planner/pkg/task"

// DateIndex is an ordered multi-map from date key to the tasks due that day.
// Keys keep first-seen order and each group keeps input order. Dates with no
// tasks have no entry.
type DateIndex struct {
	keys   []string
	groups map[string][]task.Task
}

// Build indexes tasks by DueDate. Malformed dates are kept as literal keys.
// The input slice is not retained.
func Build(tasks []task.Task) *DateIndex {
	idx := &DateIndex{groups: make(map[string][]task.Task)}
	for _, t := range tasks {
		if _, ok := idx.groups[t.DueDate]; !ok {
			idx.keys = append(idx.keys, t.DueDate)
		}
		idx.groups[t.DueDate] = append(idx.groups[t.DueDate], t)
	}
	return idx
}

// Get returns the tasks due on key, or nil. The returned slice is shared with
// the index and must not be modified.
func (d *DateIndex) Get(key string) []task.Task {
	if d == nil {
		return nil
	}
	return d.groups[key]
}

// Has reports whether any task is due on key.
func (d *DateIndex) Has(key string) bool {
	return len(d.Get(key)) > 0
}

// Keys returns the date keys in first-seen order.
func (d *DateIndex) Keys() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len is the number of distinct dates.
func (d *DateIndex) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

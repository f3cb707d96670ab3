package index

import (
	"fmt"
	"reflect"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"tableflip.dev/planner/pkg/task"
)

func genTasks(t *rapid.T) []task.Task {
	n := rapid.IntRange(0, 40).Draw(t, "n")
	tasks := make([]task.Task, n)
	for i := range tasks {
		day := rapid.IntRange(1, 5).Draw(t, "day")
		tasks[i] = task.Task{
			ID:      fmt.Sprintf("t-%d", i),
			DueDate: fmt.Sprintf("2024-06-%02d", day),
			Time:    "09:00",
		}
	}
	return tasks
}

// Groups partition the input and each group preserves input order.
func TestProperty_IndexPartitionsInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tasks := genTasks(t)
		idx := Build(tasks)

		seen := 0
		for _, key := range idx.Keys() {
			group := idx.Get(key)
			if len(group) == 0 {
				t.Fatalf("key %s has an empty group", key)
			}
			last := -1
			for _, g := range group {
				if g.DueDate != key {
					t.Fatalf("task %s filed under %s", g.ID, key)
				}
				var pos int
				if _, err := fmt.Sscanf(g.ID, "t-%d", &pos); err != nil {
					t.Fatalf("bad id %s", g.ID)
				}
				if pos <= last {
					t.Fatalf("group %s out of input order", key)
				}
				last = pos
				seen++
			}
		}
		if seen != len(tasks) {
			t.Fatalf("expected %d indexed tasks, got %d", len(tasks), seen)
		}
	})
}

func TestProperty_IndexLeavesInputUntouched(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tasks := rapid.Permutation(genTasks(t)).Draw(t, "shuffled")
		before := slices.Clone(tasks)

		_ = Build(tasks)

		if !reflect.DeepEqual(tasks, before) {
			t.Fatalf("input changed:\nbefore %v\nafter  %v", before, tasks)
		}
	})
}

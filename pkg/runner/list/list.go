// Package list provides the runner that prints tasks grouped by due date.
package list

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/index"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/schedule"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/timeutil"
)

// List prints every task, or the tasks due on one day.
type List struct {
	ShowID bool
	On     string
	// Open hides completed tasks.
	Open bool
	Now  time.Time

	Service *app.Service
	JSON    bool
	Out     io.Writer
}

// Do executes the list operation.
func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no persistence")
	}

	all, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	all = n.filtered(all)

	idx := index.Build(all)
	keys := idx.Keys()
	if n.On != "" {
		now := n.Now
		if now.IsZero() {
			now = n.Service.Now()
		}
		day, err := timeutil.ParseDay(n.On, now)
		if err != nil {
			return err
		}
		keys = []string{task.DateKey(day)}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	if n.JSON {
		out := make([]task.Task, 0, len(all))
		for _, k := range keys {
			out = append(out, idx.Get(k)...)
		}
		return pp.JSON(out)
	}

	pp.NewLine()
	if len(keys) == 0 {
		pp.Empty("タスクはありません。")
		return nil
	}
	for _, k := range keys {
		pp.TitleWithCount(schedule.GroupLabel(k), len(idx.Get(k)))
		pp.Tasks(idx.Get(k)...)
	}
	return nil
}

func (n *List) filtered(all []task.Task) []task.Task {
	if !n.Open {
		return all
	}
	c := make([]task.Task, 0, len(all))
	for _, t := range all {
		if !t.Done {
			c = append(c, t)
		}
	}
	return c
}

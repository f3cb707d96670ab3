// Package stamp provides the runner that stamps or clears dates.
package stamp

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/timeutil"
)

// Stamp marks a date as achieved, or clears the mark, then prints its month.
type Stamp struct {
	Date  string
	Clear bool
	Now   time.Time

	Service *app.Service
	JSON    bool
	Out     io.Writer
}

// Do executes the stamp operation.
func (n *Stamp) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not stamp, no persistence")
	}
	now := n.Now
	if now.IsZero() {
		now = n.Service.Now()
	}
	day, err := timeutil.ParseDay(n.Date, now)
	if err != nil {
		return err
	}
	key := task.DateKey(day)

	if n.Clear {
		err = n.Service.Unstamp(ctx, key)
	} else {
		err = n.Service.Stamp(ctx, key)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(map[string]any{"date": key, "stamped": !n.Clear})
	}

	view, err := n.Service.Month(ctx, app.MonthOptions{
		Year:     day.Year(),
		Month0:   int(day.Month()) - 1,
		Selected: day,
		Now:      now,
	})
	if err != nil {
		return err
	}
	pp.NewLine()
	pp.Month(view.YearMonth, view.Goal, view.Cells)
	return nil
}

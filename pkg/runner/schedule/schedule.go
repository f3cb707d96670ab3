// Package schedule provides the runner that prints a day and the week after it.
package schedule

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/timeutil"
)

// Schedule prints the tasks of a reference day and the following week.
type Schedule struct {
	ShowID bool
	On     string
	Now    time.Time

	Service *app.Service
	JSON    bool
	Out     io.Writer
}

// Do executes the schedule print.
func (n *Schedule) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show schedule, no persistence")
	}
	ref := n.Now
	if ref.IsZero() {
		ref = n.Service.Now()
	}
	if n.On != "" {
		day, err := timeutil.ParseDay(n.On, ref)
		if err != nil {
			return err
		}
		ref = day
	}

	w, err := n.Service.Schedule(ctx, ref)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	if n.JSON {
		return pp.JSON(w)
	}
	pp.NewLine()
	pp.Schedule(ref, w)
	return nil
}

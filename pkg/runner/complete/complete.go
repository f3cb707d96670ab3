// Package complete provides the runner logic for toggling tasks done.
package complete

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/schedule"
	"tableflip.dev/planner/pkg/task"
)

// Complete flips the done flag of a task.
type Complete struct {
	ID      string
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

// Do executes the toggle for the configured task ID and reprints its day.
func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no persistence")
	}

	t, err := n.Service.ToggleTask(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	if n.JSON {
		return pp.JSON(t)
	}

	day, err := task.ParseDateKey(t.DueDate, n.Service.Now().Location())
	if err != nil {
		return err
	}
	all, err := n.Service.Day(ctx, day)
	if err != nil {
		return err
	}
	pp.NewLine()
	pp.Title(schedule.DayLabel(day))
	pp.Tasks(all...)
	return nil
}

// Package goal provides the runner that shows or sets a monthly goal.
package goal

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

// Goal prints the goal of a month, or replaces it when Text is set.
type Goal struct {
	Month string
	// Text replaces the goal; nil only prints it and empty clears it.
	Text *string
	Now  time.Time

	Service *app.Service
	JSON    bool
	Out     io.Writer
}

// Do executes the goal operation.
func (n *Goal) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set goal, no persistence")
	}
	now := n.Now
	if now.IsZero() {
		now = n.Service.Now()
	}
	first, err := timeutil.ParseMonth(n.Month, now)
	if err != nil {
		return err
	}
	key := task.MonthKey(first)

	if n.Text != nil {
		if err := n.Service.SetGoal(ctx, key, *n.Text); err != nil {
			return err
		}
	}
	goal, err := n.Service.Goal(ctx, key)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(map[string]string{"month": key, "goal": goal})
	}
	pp.NewLine()
	pp.Title(key + " 今月自分がなりたい姿")
	if goal == "" {
		pp.Empty("目標を設定しましょう")
		return nil
	}
	pp.Text(goal)
	return nil
}

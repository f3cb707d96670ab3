// Package calendar provides the runner that prints a month grid.
package calendar

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/schedule"
	"tableflip.dev/planner/pkg/timeutil"
)

// Calendar prints one month with stamps, tag markers and the month's goal.
type Calendar struct {
	Month string
	// On selects a day; its tasks are listed under the grid.
	On  string
	Now time.Time

	Service *app.Service
	JSON    bool
	Out     io.Writer
}

// Do executes the calendar print.
func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no persistence")
	}
	now := n.Now
	if now.IsZero() {
		now = n.Service.Now()
	}

	var selected time.Time
	if n.On != "" {
		day, err := timeutil.ParseDay(n.On, now)
		if err != nil {
			return err
		}
		selected = day
	}

	month := n.Month
	first, err := timeutil.ParseMonth(month, now)
	if err != nil {
		return err
	}
	if month == "" && !selected.IsZero() {
		first = time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, selected.Location())
	}

	view, err := n.Service.Month(ctx, app.MonthOptions{
		Year:     first.Year(),
		Month0:   int(first.Month()) - 1,
		Selected: selected,
		Now:      now,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	if n.JSON {
		return pp.JSON(view)
	}

	pp.NewLine()
	pp.Month(view.YearMonth, view.Goal, view.Cells)
	if selected.IsZero() {
		return nil
	}
	tasks, err := n.Service.Day(ctx, selected)
	if err != nil {
		return err
	}
	pp.TitleWithCount(schedule.DayLabel(selected), len(tasks))
	if len(tasks) == 0 {
		pp.Empty("この日のタスクはありません。")
		return nil
	}
	pp.Tasks(tasks...)
	return nil
}

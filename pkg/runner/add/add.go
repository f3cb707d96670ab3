// Package add provides the runner that creates tasks.
package add

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/prompt"
	"tableflip.dev/planner/pkg/schedule"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/timeutil"
)

// Prompter collects task fields interactively.
type Prompter interface {
	Task(defaults prompt.Answers) (prompt.Answers, error)
}

// Add creates a task and prints the tasks due the same day.
type Add struct {
	Title string
	On    string
	At    string
	Tag   string

	// Prompter, when set, is asked for every field, seeded with the flags.
	Prompter Prompter
	Now      time.Time

	Service *app.Service
	JSON    bool
	Out     io.Writer
}

// Do executes the add operation.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no persistence")
	}
	now := n.Now
	if now.IsZero() {
		now = n.Service.Now()
	}

	day, err := timeutil.ParseDay(n.On, now)
	if err != nil {
		return err
	}
	var hhmm string
	if n.At != "" {
		if hhmm, err = timeutil.ParseClock(n.At); err != nil {
			return err
		}
	}
	tag, err := task.ParseTag(n.Tag)
	if err != nil {
		return err
	}

	opts := app.AddTaskOptions{
		Title:   n.Title,
		DueDate: task.DateKey(day),
		Time:    hhmm,
		Tag:     tag,
	}

	if n.Prompter != nil {
		answers, err := n.Prompter.Task(prompt.Answers{
			Title:   opts.Title,
			DueDate: opts.DueDate,
			Time:    opts.Time,
			Tag:     opts.Tag,
		})
		if err != nil {
			return err
		}
		opts = app.AddTaskOptions{
			Title:   answers.Title,
			DueDate: answers.DueDate,
			Time:    answers.Time,
			Tag:     answers.Tag,
		}
		if day, err = task.ParseDateKey(opts.DueDate, now.Location()); err != nil {
			return err
		}
	}

	t, err := n.Service.AddTask(ctx, opts)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	if n.JSON {
		return pp.JSON(t)
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

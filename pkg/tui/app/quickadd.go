package teaui

import (
	"errors"
	"strings"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/timeutil"
)

// parseQuickAdd reads "[HH:MM] title [#tag]". The due date is filled in by
// the caller.
func parseQuickAdd(input string) (app.AddTaskOptions, error) {
	fields := strings.Fields(input)
	var opts app.AddTaskOptions

	if len(fields) > 0 {
		if hhmm, err := timeutil.ParseClock(fields[0]); err == nil && strings.Contains(fields[0], ":") {
			opts.Time = hhmm
			fields = fields[1:]
		}
	}
	if n := len(fields); n > 0 && strings.HasPrefix(fields[n-1], "#") {
		tag, err := task.ParseTag(strings.TrimPrefix(fields[n-1], "#"))
		if err != nil {
			return app.AddTaskOptions{}, err
		}
		opts.Tag = tag
		fields = fields[:n-1]
	}

	opts.Title = strings.Join(fields, " ")
	if opts.Title == "" {
		return app.AddTaskOptions{}, errors.New("title is required")
	}
	return opts, nil
}

// Package app provides the planner operations shared by the CLI, the TUI and
// the MCP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/index"
	"tableflip.dev/planner/pkg/schedule"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

// Service wraps persistence and the calendar/schedule builders so UIs and CLIs
// can share logic.
type Service struct {
	Persistence store.Persistence
	// Location is the calendar the planner runs in; nil means time.Local.
	Location *time.Location
}

var errNoPersistence = errors.New("app: no persistence configured")

// DefaultTime is used for tasks added without a time.
const DefaultTime = "09:00"

// AddTaskOptions captures the parameters used to create a task.
type AddTaskOptions struct {
	Title   string
	DueDate string
	Time    string
	Tag     task.Tag
}

// MonthOptions selects the month rendered by Month.
type MonthOptions struct {
	Year     int
	Month0   int
	Selected time.Time
	Now      time.Time
}

// MonthView is a calendar month with its goal.
type MonthView struct {
	YearMonth string          `json:"yearMonth"`
	Goal      string          `json:"goal"`
	Cells     []calendar.Cell `json:"cells"`
}

func (s *Service) loc() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

// Now is the current instant in the service's location.
func (s *Service) Now() time.Time {
	return time.Now().In(s.loc())
}

// Tasks lists all tasks ordered by due date and time.
func (s *Service) Tasks(ctx context.Context) ([]task.Task, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.ListTasks(ctx), nil
}

// AddTask validates and stores a new task.
func (s *Service) AddTask(ctx context.Context, opts AddTaskOptions) (task.Task, error) {
	if s.Persistence == nil {
		return task.Task{}, errNoPersistence
	}
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		return task.Task{}, fmt.Errorf("%w: title required", task.ErrInvalid)
	}
	tag := opts.Tag
	if tag == "" {
		tag = task.TagOther
	}
	hhmm := opts.Time
	if hhmm == "" {
		hhmm = DefaultTime
	}
	t := task.Task{
		Title:   title,
		DueDate: opts.DueDate,
		Time:    hhmm,
		Tag:     tag,
	}
	if err := t.Validate(); err != nil {
		return task.Task{}, err
	}
	if err := s.Persistence.StoreTask(&t); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// ToggleTask flips the done flag of the task with the given id.
func (s *Service) ToggleTask(ctx context.Context, id string) (task.Task, error) {
	if s.Persistence == nil {
		return task.Task{}, errNoPersistence
	}
	t, err := s.Persistence.Task(id)
	if err != nil {
		return task.Task{}, err
	}
	t.Done = !t.Done
	if err := s.Persistence.StoreTask(&t); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// DeleteTask removes the task with the given id.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	return s.Persistence.DeleteTask(id)
}

// Stamps returns every stamped date.
func (s *Service) Stamps(ctx context.Context) (calendar.StampSet, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return calendar.NewStampSet(s.Persistence.Stamps(ctx)...), nil
}

// Stamp marks date as achieved.
func (s *Service) Stamp(ctx context.Context, date string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	if _, err := task.ParseDateKey(date, s.loc()); err != nil {
		return fmt.Errorf("%w: %v", task.ErrInvalid, err)
	}
	return s.Persistence.Stamp(date)
}

// Unstamp clears the stamp on date.
func (s *Service) Unstamp(ctx context.Context, date string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	if _, err := task.ParseDateKey(date, s.loc()); err != nil {
		return fmt.Errorf("%w: %v", task.ErrInvalid, err)
	}
	return s.Persistence.Unstamp(date)
}

// ToggleStamp flips the stamp on date and reports whether it is now stamped.
func (s *Service) ToggleStamp(ctx context.Context, date string) (bool, error) {
	stamps, err := s.Stamps(ctx)
	if err != nil {
		return false, err
	}
	if stamps.Has(date) {
		return false, s.Unstamp(ctx, date)
	}
	return true, s.Stamp(ctx, date)
}

// Goal returns the goal text for a YYYY-MM month, empty when unset.
func (s *Service) Goal(ctx context.Context, month string) (string, error) {
	if s.Persistence == nil {
		return "", errNoPersistence
	}
	goal, err := s.Persistence.Goal(month)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	return goal, err
}

// SetGoal stores the goal for a YYYY-MM month. Empty text clears it.
func (s *Service) SetGoal(ctx context.Context, month, text string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	if _, err := task.ParseMonthKey(month, s.loc()); err != nil {
		return fmt.Errorf("%w: %v", task.ErrInvalid, err)
	}
	return s.Persistence.SetGoal(month, strings.TrimSpace(text))
}

// Month builds the calendar grid for a month along with its goal.
func (s *Service) Month(ctx context.Context, opts MonthOptions) (*MonthView, error) {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	stamps, err := s.Stamps(ctx)
	if err != nil {
		return nil, err
	}
	yearMonth := calendar.YearMonth(opts.Year, opts.Month0)
	goal, err := s.Goal(ctx, yearMonth)
	if err != nil {
		return nil, err
	}
	now := opts.Now
	if now.IsZero() {
		now = s.Now()
	}
	cells := calendar.Build(calendar.Options{
		Year:     opts.Year,
		Month0:   opts.Month0,
		Selected: opts.Selected,
		Today:    now,
		Index:    index.Build(tasks),
		Stamped:  stamps,
		Location: s.loc(),
	})
	return &MonthView{YearMonth: yearMonth, Goal: goal, Cells: cells}, nil
}

// Day lists the tasks due on date ordered by time.
func (s *Service) Day(ctx context.Context, date time.Time) ([]task.Task, error) {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.Build(tasks, date).Today, nil
}

// Schedule builds the day and upcoming-week view as seen from now.
func (s *Service) Schedule(ctx context.Context, now time.Time) (schedule.Window, error) {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return schedule.Window{}, err
	}
	return schedule.Build(tasks, now.In(s.loc())), nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

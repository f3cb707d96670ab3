// Package mcp provides the Model Context Protocol server integration for the
// planner.
package mcp

import (
	"context"
	"errors"
	"strings"
	"time"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/schedule"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/timeutil"
)

// Service adapts the planner service to transport-friendly shapes.
type Service struct {
	App *app.Service
	// Clock overrides the current time; nil uses App.Now.
	Clock func() time.Time
}

// TaskDTO is a transport-friendly projection of a task.
type TaskDTO struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	DueDate string `json:"dueDate"`
	Time    string `json:"time"`
	Tag     string `json:"tag"`
	Done    bool   `json:"done"`
}

// CellDTO is a calendar cell; padding cells carry only Padding.
type CellDTO struct {
	Padding  bool     `json:"padding,omitempty"`
	Date     string   `json:"date,omitempty"`
	Day      int      `json:"day,omitempty"`
	Selected bool     `json:"selected,omitempty"`
	Today    bool     `json:"today,omitempty"`
	Stamped  bool     `json:"stamped,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// MonthDTO is one calendar month laid out as weeks.
type MonthDTO struct {
	Month string      `json:"month"`
	Goal  string      `json:"goal"`
	Weeks [][]CellDTO `json:"weeks"`
}

// GroupDTO is the set of tasks due on one upcoming day.
type GroupDTO struct {
	Date  string    `json:"date"`
	Label string    `json:"label"`
	Tasks []TaskDTO `json:"tasks"`
}

// ScheduleDTO is the day list and upcoming week seen from Date.
type ScheduleDTO struct {
	Date     string     `json:"date"`
	Label    string     `json:"label"`
	Today    []TaskDTO  `json:"today"`
	Upcoming []GroupDTO `json:"upcoming"`
}

// NewService builds a service wrapper around the planner service.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return s.App.Now()
}

func (s *Service) ready() error {
	if s == nil || s.App == nil || s.App.Persistence == nil {
		return errors.New("mcp: persistence is not configured")
	}
	return nil
}

// ListTasks returns every task, optionally limited to one due date.
func (s *Service) ListTasks(ctx context.Context, date string) ([]TaskDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	tasks, err := s.App.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	date = strings.TrimSpace(date)
	out := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		if date != "" && t.DueDate != date {
			continue
		}
		out = append(out, toDTO(t))
	}
	return out, nil
}

// AddTask creates a task. Date accepts anything timeutil.ParseDay does.
func (s *Service) AddTask(ctx context.Context, title, date, clock, tag string) (*TaskDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	now := s.now()
	day := now
	if strings.TrimSpace(date) != "" {
		var err error
		if day, err = timeutil.ParseDay(date, now); err != nil {
			return nil, err
		}
	}
	var hhmm string
	if strings.TrimSpace(clock) != "" {
		var err error
		if hhmm, err = timeutil.ParseClock(clock); err != nil {
			return nil, err
		}
	}
	parsedTag, err := task.ParseTag(tag)
	if err != nil {
		return nil, err
	}
	t, err := s.App.AddTask(ctx, app.AddTaskOptions{
		Title:   title,
		DueDate: task.DateKey(day),
		Time:    hhmm,
		Tag:     parsedTag,
	})
	if err != nil {
		return nil, err
	}
	dto := toDTO(t)
	return &dto, nil
}

// ToggleTask flips the done flag of a task.
func (s *Service) ToggleTask(ctx context.Context, id string) (*TaskDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("mcp: id is required")
	}
	t, err := s.App.ToggleTask(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(t)
	return &dto, nil
}

// DeleteTask removes a task.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return errors.New("mcp: id is required")
	}
	return s.App.DeleteTask(ctx, id)
}

// Month builds the calendar for a month such as "2024-06", "this" or "next".
// Selected, when set, is a date the grid highlights.
func (s *Service) Month(ctx context.Context, month, selected string) (*MonthDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	now := s.now()
	first, err := timeutil.ParseMonth(month, now)
	if err != nil {
		return nil, err
	}
	var sel time.Time
	if strings.TrimSpace(selected) != "" {
		if sel, err = timeutil.ParseDay(selected, now); err != nil {
			return nil, err
		}
	}
	view, err := s.App.Month(ctx, app.MonthOptions{
		Year:     first.Year(),
		Month0:   int(first.Month()) - 1,
		Selected: sel,
		Now:      now,
	})
	if err != nil {
		return nil, err
	}
	out := &MonthDTO{Month: view.YearMonth, Goal: view.Goal}
	for _, week := range calendar.Weeks(view.Cells) {
		row := make([]CellDTO, 0, len(week))
		for _, c := range week {
			row = append(row, toCellDTO(c))
		}
		out.Weeks = append(out.Weeks, row)
	}
	return out, nil
}

// Schedule returns the day and upcoming-week view for date (default today).
func (s *Service) Schedule(ctx context.Context, date string) (*ScheduleDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	ref := s.now()
	if strings.TrimSpace(date) != "" {
		day, err := timeutil.ParseDay(date, ref)
		if err != nil {
			return nil, err
		}
		ref = day
	}
	w, err := s.App.Schedule(ctx, ref)
	if err != nil {
		return nil, err
	}
	out := &ScheduleDTO{
		Date:     w.Date,
		Label:    schedule.DayLabel(ref),
		Today:    toDTOs(w.Today),
		Upcoming: make([]GroupDTO, 0, len(w.Upcoming)),
	}
	for _, g := range w.Upcoming {
		out.Upcoming = append(out.Upcoming, GroupDTO{
			Date:  g.Date,
			Label: schedule.GroupLabel(g.Date),
			Tasks: toDTOs(g.Tasks),
		})
	}
	return out, nil
}

// SetStamp stamps or unstamps a date.
func (s *Service) SetStamp(ctx context.Context, date string, stamped bool) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	day, err := timeutil.ParseDay(date, s.now())
	if err != nil {
		return "", err
	}
	key := task.DateKey(day)
	if stamped {
		return key, s.App.Stamp(ctx, key)
	}
	return key, s.App.Unstamp(ctx, key)
}

// SetGoal stores the goal of a month. Empty text clears it.
func (s *Service) SetGoal(ctx context.Context, month, text string) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	first, err := timeutil.ParseMonth(month, s.now())
	if err != nil {
		return "", err
	}
	key := task.MonthKey(first)
	return key, s.App.SetGoal(ctx, key, text)
}

func toDTOs(tasks []task.Task) []TaskDTO {
	out := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toDTO(t))
	}
	return out
}

func toDTO(t task.Task) TaskDTO {
	return TaskDTO{
		ID:      t.ID,
		Title:   t.Title,
		DueDate: t.DueDate,
		Time:    t.Time,
		Tag:     string(t.Tag),
		Done:    t.Done,
	}
}

func toCellDTO(c calendar.Cell) CellDTO {
	if c.Padding {
		return CellDTO{Padding: true}
	}
	dto := CellDTO{
		Date:     c.Date,
		Day:      c.Day,
		Selected: c.Selected,
		Today:    c.Today,
		Stamped:  c.Stamped,
	}
	for _, tag := range c.Tags {
		dto.Tags = append(dto.Tags, string(tag))
	}
	return dto
}

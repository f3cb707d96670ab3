// Package task defines the planner's task model and its date key format.
package task

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("task: invalid")

// Task is a single dated to-do item.
type Task struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	DueDate string    `json:"dueDate"`
	Time    string    `json:"time"`
	Tag     Tag       `json:"tag"`
	Done    bool      `json:"done"`
	Created time.Time `json:"created,omitempty"`
}

// New builds an open task due on the day of due at the given time of day.
func New(title string, due time.Time, at string, tag Tag) Task {
	return Task{
		Title:   title,
		DueDate: DateKey(due),
		Time:    at,
		Tag:     tag,
	}
}

// SortKey is the combined date and time key used to order tasks across days.
func (t Task) SortKey() string {
	return t.DueDate + "T" + t.Time
}

func (t Task) String() string {
	mark := " "
	if t.Done {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s %s %s (%s)", mark, t.DueDate, t.Time, t.Title, t.Tag)
}

// Validate checks the preconditions the calendar and schedule builders rely on:
// a round-tripping date key, a zero-padded HH:MM time and a known tag.
func (t Task) Validate() error {
	d, err := time.Parse(DateLayout, t.DueDate)
	if err != nil || d.Format(DateLayout) != t.DueDate {
		return fmt.Errorf("%w: due date %q is not YYYY-MM-DD", ErrInvalid, t.DueDate)
	}
	if !ValidTime(t.Time) {
		return fmt.Errorf("%w: time %q is not HH:MM", ErrInvalid, t.Time)
	}
	if !t.Tag.Valid() {
		return fmt.Errorf("%w: unknown tag %q", ErrInvalid, t.Tag)
	}
	return nil
}

// ValidTime reports whether s is a zero-padded 24h HH:MM time.
func ValidTime(s string) bool {
	if len(s) != len(TimeLayout) {
		return false
	}
	v, err := time.Parse(TimeLayout, s)
	return err == nil && v.Format(TimeLayout) == s
}

// Package prompt asks for task fields interactively.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/timeutil"
)

// Answers holds the normalised fields collected for a new task.
type Answers struct {
	Title   string
	DueDate string
	Time    string
	Tag     task.Tag
}

// Prompter runs the prompts against In and Out. Nil streams fall back to the
// terminal.
type Prompter struct {
	In  io.Reader
	Out io.Writer
	Now time.Time
}

var templates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}: ",
	Valid:   "{{ . | green }}: ",
	Invalid: "{{ . | red }}: ",
	Success: "{{ . | bold }}: ",
}

// Task asks for every field of a new task, offering defaults as the starting
// value of each prompt.
func (p Prompter) Task(defaults Answers) (Answers, error) {
	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}

	title, err := p.ask("Title", defaults.Title, ValidateTitle)
	if err != nil {
		return Answers{}, err
	}

	date, err := p.ask("Date", defaultString(defaults.DueDate, task.DateKey(now)), DateValidator(now))
	if err != nil {
		return Answers{}, err
	}
	day, _ := timeutil.ParseDay(date, now)

	clock, err := p.ask("Time (HH:MM)", defaults.Time, ValidateTime)
	if err != nil {
		return Answers{}, err
	}
	hhmm, _ := timeutil.ParseClock(clock)

	tag, err := p.selectTag(defaults.Tag)
	if err != nil {
		return Answers{}, err
	}

	return Answers{
		Title:   strings.TrimSpace(title),
		DueDate: task.DateKey(day),
		Time:    hhmm,
		Tag:     tag,
	}, nil
}

func (p Prompter) ask(label, def string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Templates: templates,
		Validate:  validate,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %s: %w", strings.ToLower(label), err)
	}
	return result, nil
}

func (p Prompter) selectTag(def task.Tag) (task.Tag, error) {
	tags := task.AllTags()
	cursor := 0
	for i, t := range tags {
		if t == def {
			cursor = i
		}
	}
	sel := promptui.Select{
		Label:     "Tag",
		Items:     task.TagNames(),
		CursorPos: cursor,
		HideHelp:  true,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}?",
			Active:   "➜  {{ . | bold }}",
			Inactive: "   {{ . }}",
			Selected: "Tag: {{ . | bold }}",
		},
		Stdin:  p.stdin(),
		Stdout: p.stdout(),
	}
	i, _, err := sel.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: tag: %w", err)
	}
	return tags[i], nil
}

func (p Prompter) stdin() io.ReadCloser {
	if p.In == nil {
		return nil
	}
	return io.NopCloser(p.In)
}

func (p Prompter) stdout() io.WriteCloser {
	if p.Out == nil {
		return nil
	}
	return nopCloser{p.Out}
}

// ValidateTitle rejects blank titles.
func ValidateTitle(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("title is required")
	}
	return nil
}

// DateValidator accepts anything timeutil.ParseDay understands relative to now.
func DateValidator(now time.Time) promptui.ValidateFunc {
	return func(input string) error {
		_, err := timeutil.ParseDay(input, now)
		return err
	}
}

// ValidateTime accepts an empty answer or a clock time.
func ValidateTime(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	_, err := timeutil.ParseClock(input)
	return err
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

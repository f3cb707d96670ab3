// Package printers renders planner data for the terminal.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

var tagColors = map[task.Tag]*color.Color{
	task.TagWork:    color.New(color.FgBlue),
	task.TagPrivate: color.New(color.FgGreen),
	task.TagStudy:   color.New(color.FgMagenta),
	task.TagOther:   color.New(color.FgWhite, color.Faint),
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

// Empty prints a faint placeholder line.
func (pp *PrettyPrint) Empty(msg string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.out(), " %s\n\n", msg)
}

// Tasks prints tasks as a table: done mark, date, time, title and tag.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		pp.Empty("none")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	done := color.New(color.Faint, color.CrossedOut)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		mark := glyph.Check(t.Done).String()
		title := t.Title
		if t.Done {
			title = done.Sprint(title)
		}
		row := []interface{}{mark, t.DueDate, t.Time, title, TagLabel(t.Tag)}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(t.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// TagLabel colours a tag name the way the calendar colours its markers.
func TagLabel(tag task.Tag) string {
	c, ok := tagColors[tag]
	if !ok {
		return string(tag)
	}
	return c.Sprint(string(tag))
}

// TagMarker is the coloured dot drawn for tag on a calendar day.
func TagMarker(tag task.Tag) string {
	c, ok := tagColors[tag]
	if !ok {
		return glyph.Marker.String()
	}
	return c.Sprint(glyph.Marker.String())
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s
}

package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/task"
)

const width = len("Su     Mo     Tu     We     Th     Fr     Sa    ")

// Month prints the month title, its goal and the grid. Stamped days carry a
// star and each day shows up to three tag markers.
func (pp *PrettyPrint) Month(yearMonth, goal string, cells []calendar.Cell) {
	w := pp.out()

	title := yearMonth
	if t, err := task.ParseMonthKey(yearMonth, time.UTC); err == nil {
		title = fmt.Sprintf("%d年 %d月", t.Year(), int(t.Month()))
	}
	tf := color.New(color.Bold)
	_, _ = tf.Fprintln(w, center(title, width))

	g := color.New(color.Italic)
	if goal == "" {
		g = color.New(color.Italic, color.Faint)
		goal = "目標を設定しましょう"
	}
	_, _ = g.Fprintf(w, "%s %s\n\n", glyph.Goal, goal)

	header := color.New(color.Faint)
	sun := color.New(color.FgRed)
	sat := color.New(color.FgBlue)
	for i, h := range calendar.Header {
		c := header
		switch i {
		case 0:
			c = sun
		case 6:
			c = sat
		}
		_, _ = c.Fprint(w, h+strings.Repeat(" ", 5))
	}
	_, _ = fmt.Fprintln(w)

	empty := color.New(color.Faint)
	entry := color.New(color.FgHiWhite)
	today := color.New(color.Bold, color.FgHiBlue, color.Underline)
	selected := color.New(color.ReverseVideo, color.Bold)
	stamp := color.New(color.FgHiYellow)

	for _, week := range calendar.Weeks(cells) {
		for _, c := range week {
			if c.Padding {
				_, _ = fmt.Fprint(w, strings.Repeat(" ", 7))
				continue
			}
			p := empty
			if c.Tasks > 0 {
				p = entry
			}
			if c.Today {
				p = today
			}
			if c.Selected {
				p = selected
			}
			_, _ = p.Fprintf(w, "%2d", c.Day)
			if c.Stamped {
				_, _ = stamp.Fprint(w, glyph.Stamp.String())
			} else {
				_, _ = fmt.Fprint(w, " ")
			}
			for _, tag := range c.Tags {
				_, _ = fmt.Fprint(w, TagMarker(tag))
			}
			_, _ = fmt.Fprint(w, strings.Repeat(" ", calendar.MaxTagMarkers-len(c.Tags)+1))
		}
		_, _ = fmt.Fprintln(w)
	}
	_, _ = fmt.Fprintln(w)
}

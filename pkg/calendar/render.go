package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/task"
)

// Header is the weekday legend, one column per weekday starting on Sunday.
var Header = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

const cellWidth = 2 + 1 + MaxTagMarkers

// RenderOptions controls grid styling.
type RenderOptions struct {
	HeaderStyle   lipgloss.Style
	SundayStyle   lipgloss.Style
	SaturdayStyle lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	StampStyle    lipgloss.Style
	TagStyles     map[task.Tag]lipgloss.Style
	ShowHeader    bool
}

// TagColors are the marker colours per tag.
var TagColors = map[task.Tag]string{
	task.TagWork:    "#3b82f6",
	task.TagPrivate: "#22c55e",
	task.TagStudy:   "#a855f7",
	task.TagOther:   "#6b7280",
}

// DefaultRenderOptions returns the styling used by the terminal UI.
func DefaultRenderOptions() RenderOptions {
	tags := make(map[task.Tag]lipgloss.Style, len(TagColors))
	for tag, c := range TagColors {
		tags[tag] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return RenderOptions{
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		SundayStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true),
		SaturdayStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6")).Bold(true),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		EntryStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		TodayStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#1d4ed8")).Bold(true).Underline(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("#2563eb")).Foreground(lipgloss.Color("#ffffff")),
		StampStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#facc15")),
		TagStyles:     tags,
		ShowHeader:    true,
	}
}

// Render produces a multi-line grid. Each day shows its number, a star when
// stamped and up to three tag markers.
func Render(cells []Cell, opts RenderOptions) string {
	var lines []string
	if opts.ShowHeader {
		lines = append(lines, renderHeader(opts))
	}
	for _, week := range Weeks(cells) {
		parts := make([]string, 0, len(week))
		for _, c := range week {
			parts = append(parts, renderCell(c, opts))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

func renderHeader(opts RenderOptions) string {
	parts := make([]string, len(Header))
	for i, h := range Header {
		style := opts.HeaderStyle
		switch i {
		case 0:
			style = opts.SundayStyle
		case 6:
			style = opts.SaturdayStyle
		}
		parts[i] = style.Render(h) + strings.Repeat(" ", cellWidth-len(h))
	}
	return strings.Join(parts, " ")
}

func renderCell(c Cell, opts RenderOptions) string {
	if c.Padding {
		return strings.Repeat(" ", cellWidth)
	}

	style := opts.EmptyStyle
	if c.Tasks > 0 {
		style = opts.EntryStyle
	}
	if c.Today {
		style = style.Inherit(opts.TodayStyle)
	}
	if c.Selected {
		style = opts.SelectedStyle
	}

	var b strings.Builder
	b.WriteString(style.Render(fmt.Sprintf("%2d", c.Day)))
	if c.Stamped {
		b.WriteString(opts.StampStyle.Render(glyph.Stamp.String()))
	} else {
		b.WriteString(" ")
	}
	for _, tag := range c.Tags {
		b.WriteString(opts.TagStyles[tag].Render(glyph.Marker.String()))
	}
	b.WriteString(strings.Repeat(" ", MaxTagMarkers-len(c.Tags)))
	return b.String()
}

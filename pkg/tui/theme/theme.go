package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/task"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header   HeaderTheme
	Footer   FooterTheme
	Panel    PanelTheme
	Task     TaskTheme
	Calendar calendar.RenderOptions
}

// HeaderTheme styles the view switcher at the top of the screen.
type HeaderTheme struct {
	Title    lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Input  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
}

// TaskTheme styles a task row.
type TaskTheme struct {
	Time   lipgloss.Style
	Done   lipgloss.Style
	Cursor lipgloss.Style
	Tags   map[task.Tag]lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	cal := calendar.DefaultRenderOptions()

	return Theme{
		Header: HeaderTheme{
			Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2563eb")).Bold(true),
			Active:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2563eb")).Background(lipgloss.Color("#dbeafe")).Bold(true).Padding(0, 1),
			Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Input:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:   lipgloss.NewStyle().Bold(true),
			Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("#4f46e5")).Bold(true),
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")),
		},
		Task: TaskTheme{
			Time:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Done:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true),
			Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Tags:   cal.TagStyles,
		},
		Calendar: cal,
	}
}

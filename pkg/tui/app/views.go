package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/schedule"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/tennis"
)

const (
	goalLabel       = "今月自分がなりたい姿"
	goalPlaceholder = "目標を設定しましょう"
	noDayTasks      = "この日のタスクはありません。"
	todayHeading    = "今日のタスク"
	noTodayTasks    = "今日のタスクはありません。"
	upcomingHeading = "今後の予定 (一週間)"
	noUpcomingTasks = "今後一週間のタスクはありません。"
	tennisHeading   = "テニスの試合結果"
	tennisWaiting   = "結果を取得しています…"
)

func (m *Model) renderCalendar() string {
	th := m.theme
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", th.Panel.Title.Render(fmt.Sprintf("‹ %d年 %d月 ›", m.selected.Year(), int(m.selected.Month()))))

	goal := ""
	if m.month != nil {
		goal = m.month.Goal
	}
	if goal == "" {
		fmt.Fprintf(&b, "%s %s: %s\n\n", glyph.Goal, goalLabel, th.Panel.Muted.Render(goalPlaceholder))
	} else {
		fmt.Fprintf(&b, "%s %s: %s\n\n", glyph.Goal, goalLabel, goal)
	}

	if m.month != nil {
		b.WriteString(calendar.Render(m.month.Cells, th.Calendar))
	}

	b.WriteString("\n\n")
	b.WriteString(th.Panel.Heading.Render(schedule.DayLabel(m.selected)))
	b.WriteString("\n")
	if len(m.dayTasks) == 0 {
		b.WriteString(th.Panel.Muted.Render(noDayTasks))
	} else {
		lines := make([]string, 0, len(m.dayTasks))
		for _, t := range m.dayTasks {
			lines = append(lines, m.renderTask(t, false))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	return th.Panel.Frame.Render(b.String())
}

func (m *Model) renderSchedule() string {
	th := m.theme
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", th.Panel.Title.Render("‹ "+schedule.DayLabel(m.scheduleDay)+" ›"))

	b.WriteString(th.Panel.Heading.Render(todayHeading))
	b.WriteString("\n")
	if len(m.window.Today) == 0 {
		b.WriteString(th.Panel.Muted.Render(noTodayTasks))
	} else {
		lines := make([]string, 0, len(m.window.Today))
		for i, t := range m.window.Today {
			lines = append(lines, m.renderTask(t, i == m.cursor))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	b.WriteString("\n\n")
	b.WriteString(th.Panel.Heading.Render(upcomingHeading))
	b.WriteString("\n")
	if len(m.window.Upcoming) == 0 {
		b.WriteString(th.Panel.Muted.Render(noUpcomingTasks))
	} else {
		groups := make([]string, 0, len(m.window.Upcoming))
		for _, g := range m.window.Upcoming {
			lines := []string{th.Panel.Heading.Render(schedule.GroupLabel(g.Date))}
			for _, t := range g.Tasks {
				lines = append(lines, m.renderTask(t, false))
			}
			groups = append(groups, strings.Join(lines, "\n"))
		}
		b.WriteString(strings.Join(groups, "\n\n"))
	}

	return th.Panel.Frame.Render(b.String())
}

func (m *Model) renderTask(t task.Task, cursor bool) string {
	th := m.theme.Task
	prefix := "  "
	if cursor {
		prefix = th.Cursor.Render(glyph.Cursor.String() + " ")
	}
	check := glyph.Check(t.Done).String()
	title := t.Title
	if t.Done {
		title = th.Done.Render(title)
	}
	tag := string(t.Tag)
	if style, ok := th.Tags[t.Tag]; ok {
		tag = style.Render(tag)
	}
	return fmt.Sprintf("%s%s %s %s [%s]", prefix, check, th.Time.Render(t.Time), title, tag)
}

func (m *Model) renderTennis() string {
	th := m.theme
	var b strings.Builder

	b.WriteString(th.Panel.Title.Render(tennisHeading))
	b.WriteString("\n\n")

	switch m.tennisState {
	case tennisIdle, tennisLoading:
		b.WriteString(th.Panel.Muted.Render(tennisWaiting))
	case tennisFailed:
		b.WriteString(th.Panel.Error.Render(tennis.Message(m.tennisErr)))
	case tennisLoaded:
		if m.tennisResult == nil {
			break
		}
		b.WriteString(m.renderMarkdown(m.tennisResult.Text))
		if len(m.tennisResult.Sources) > 0 {
			b.WriteString("\n")
			b.WriteString(th.Panel.Heading.Render("出典"))
			for _, src := range m.tennisResult.Sources {
				title := src.Title
				if title == "" {
					title = src.URI
				}
				fmt.Fprintf(&b, "\n• %s %s", title, th.Panel.Muted.Render(src.URI))
			}
		}
	}

	return th.Panel.Frame.Render(b.String())
}

func (m *Model) renderMarkdown(text string) string {
	width := m.width - 8
	if width <= 0 {
		width = 72
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

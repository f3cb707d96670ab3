// Package teaui hosts the Bubble Tea program for the planner TUI.
package teaui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/schedule"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/tennis"
	"tableflip.dev/planner/pkg/tui/help"
	"tableflip.dev/planner/pkg/tui/theme"
)

type view int

const (
	viewCalendar view = iota
	viewSchedule
	viewTennis
)

var viewTitles = [...]string{"カレンダー", "スケジュール", "テニス"}

type inputMode int

const (
	inputNone inputMode = iota
	inputGoal
	inputAdd
)

type tennisState int

const (
	tennisIdle tennisState = iota
	tennisLoading
	tennisLoaded
	tennisFailed
)

var errServiceUnavailable = errors.New("service unavailable")

// Fetcher loads tennis results for the tennis view.
type Fetcher interface {
	Fetch(ctx context.Context) (*tennis.Result, error)
}

// Model is the root Bubble Tea model.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	cancel context.CancelFunc
	now    func() time.Time
	theme  theme.Theme

	view          view
	width, height int

	// calendar
	selected time.Time
	month    *app.MonthView
	dayTasks []task.Task

	// schedule
	scheduleDay time.Time
	window      schedule.Window
	cursor      int

	input     textinput.Model
	inputMode inputMode

	fetcher      Fetcher
	tennisState  tennisState
	tennisResult *tennis.Result
	tennisErr    error

	status string
	help   *help.Model

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service, fetcher Fetcher) *Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Prompt = ""

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		svc:     svc,
		ctx:     ctx,
		cancel:  cancel,
		theme:   theme.Default(),
		input:   ti,
		fetcher: fetcher,
	}
	m.now = m.clock
	today := task.Midnight(m.now())
	m.selected = today
	m.scheduleDay = today
	return m
}

func (m *Model) clock() time.Time {
	if m.svc != nil {
		return m.svc.Now()
	}
	return time.Now()
}

// Init loads initial data
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(), startWatchCmd(m.ctx, m.svc))
}

type errMsg struct {
	err error
}

type dataLoadedMsg struct {
	month  *app.MonthView
	day    []task.Task
	window schedule.Window
}

type tennisLoadedMsg struct {
	result *tennis.Result
	err    error
}

// load rebuilds every view from the service.
func (m *Model) load() tea.Cmd {
	return m.mutate(nil)
}

// mutate runs fn and then reloads, so the reload observes the change.
func (m *Model) mutate(fn func(ctx context.Context) error) tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	selected := m.selected
	scheduleDay := m.scheduleDay
	now := m.now()
	return func() tea.Msg {
		if svc == nil {
			return errMsg{err: errServiceUnavailable}
		}
		if fn != nil {
			if err := fn(ctx); err != nil {
				return errMsg{err: err}
			}
		}
		month, err := svc.Month(ctx, app.MonthOptions{
			Year:     selected.Year(),
			Month0:   int(selected.Month()) - 1,
			Selected: selected,
			Now:      now,
		})
		if err != nil {
			return errMsg{err: err}
		}
		day, err := svc.Day(ctx, selected)
		if err != nil {
			return errMsg{err: err}
		}
		window, err := svc.Schedule(ctx, scheduleDay)
		if err != nil {
			return errMsg{err: err}
		}
		return dataLoadedMsg{month: month, day: day, window: window}
	}
}

func (m *Model) fetchTennis() tea.Cmd {
	if m.fetcher == nil {
		m.tennisState = tennisFailed
		m.tennisErr = tennis.ErrMissingAPIKey
		return nil
	}
	m.tennisState = tennisLoading
	m.tennisErr = nil
	fetcher := m.fetcher
	ctx := m.ctx
	return func() tea.Msg {
		res, err := fetcher.Fetch(ctx)
		return tennisLoadedMsg{result: res, err: err}
	}
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Update handles every message delivered to the program.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.help != nil {
			m.help.SetSize(m.overlaySize())
		}
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case dataLoadedMsg:
		m.month = msg.month
		m.dayTasks = msg.day
		m.window = msg.window
		if m.cursor >= len(m.window.Today) {
			m.cursor = max(0, len(m.window.Today)-1)
		}
	case tennisLoadedMsg:
		if msg.err != nil {
			m.tennisState = tennisFailed
			m.tennisErr = msg.err
			m.tennisResult = nil
			break
		}
		m.tennisState = tennisLoaded
		m.tennisResult = msg.result
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "ERR: watch " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		cmds = append(cmds, m.load())
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
		}
	case tea.KeyPressMsg:
		if cmd := m.handleKeyPress(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if m.inputMode != inputNone {
		return m.handleInputKey(msg)
	}
	if m.help != nil {
		switch msg.String() {
		case "?", "esc", "q":
			m.help = nil
			return nil
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "?":
		m.help = help.New(m.overlaySize())
		return nil
	case "ctrl+c", "q":
		m.stopWatch()
		m.cancel()
		return tea.Quit
	case "1":
		return m.switchView(viewCalendar)
	case "2":
		return m.switchView(viewSchedule)
	case "3":
		return m.switchView(viewTennis)
	case "tab":
		return m.switchView((m.view + 1) % view(len(viewTitles)))
	case "shift+tab":
		return m.switchView((m.view + view(len(viewTitles)) - 1) % view(len(viewTitles)))
	}

	switch m.view {
	case viewCalendar:
		return m.handleCalendarKey(msg)
	case viewSchedule:
		return m.handleScheduleKey(msg)
	case viewTennis:
		return m.handleTennisKey(msg)
	}
	return nil
}

func (m *Model) switchView(v view) tea.Cmd {
	m.view = v
	m.status = ""
	if v == viewTennis && m.tennisState == tennisIdle {
		return m.fetchTennis()
	}
	return nil
}

func (m *Model) handleCalendarKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		return m.moveSelection(m.selected.AddDate(0, 0, -1))
	case "right", "l":
		return m.moveSelection(m.selected.AddDate(0, 0, 1))
	case "up", "k":
		return m.moveSelection(m.selected.AddDate(0, 0, -7))
	case "down", "j":
		return m.moveSelection(m.selected.AddDate(0, 0, 7))
	case "[":
		return m.moveSelection(calendar.FirstOfMonth(m.selected.Year(), int(m.selected.Month())-2, m.selected.Location()))
	case "]":
		return m.moveSelection(calendar.FirstOfMonth(m.selected.Year(), int(m.selected.Month()), m.selected.Location()))
	case "t":
		return m.moveSelection(task.Midnight(m.now()))
	case "s":
		key := task.DateKey(m.selected)
		return m.mutate(func(ctx context.Context) error {
			_, err := m.svc.ToggleStamp(ctx, key)
			return err
		})
	case "g":
		goal := ""
		if m.month != nil {
			goal = m.month.Goal
		}
		return m.openInput(inputGoal, "今月自分がなりたい姿", goal)
	case "a":
		return m.openInput(inputAdd, "09:00 タイトル #work", "")
	}
	return nil
}

func (m *Model) moveSelection(t time.Time) tea.Cmd {
	m.selected = task.Midnight(t)
	return m.load()
}

func (m *Model) handleScheduleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		m.scheduleDay = m.scheduleDay.AddDate(0, 0, -1)
		m.cursor = 0
		return m.load()
	case "right", "l":
		m.scheduleDay = m.scheduleDay.AddDate(0, 0, 1)
		m.cursor = 0
		return m.load()
	case "t":
		m.scheduleDay = task.Midnight(m.now())
		m.cursor = 0
		return m.load()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.window.Today)-1 {
			m.cursor++
		}
	case "x", "space", " ":
		if t, ok := m.cursorTask(); ok {
			id := t.ID
			return m.mutate(func(ctx context.Context) error {
				_, err := m.svc.ToggleTask(ctx, id)
				return err
			})
		}
	case "d":
		if t, ok := m.cursorTask(); ok {
			id := t.ID
			return m.mutate(func(ctx context.Context) error {
				return m.svc.DeleteTask(ctx, id)
			})
		}
	}
	return nil
}

func (m *Model) cursorTask() (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.window.Today) {
		return task.Task{}, false
	}
	return m.window.Today[m.cursor], true
}

func (m *Model) handleTennisKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "r":
		if m.tennisState != tennisLoading {
			return m.fetchTennis()
		}
	}
	return nil
}

func (m *Model) openInput(mode inputMode, placeholder, value string) tea.Cmd {
	m.inputMode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) closeInput() {
	m.inputMode = inputNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return nil
	case "enter":
		value := m.input.Value()
		mode := m.inputMode
		m.closeInput()
		return m.submitInput(mode, value)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) submitInput(mode inputMode, value string) tea.Cmd {
	switch mode {
	case inputGoal:
		month := task.MonthKey(m.selected)
		return m.mutate(func(ctx context.Context) error {
			return m.svc.SetGoal(ctx, month, value)
		})
	case inputAdd:
		opts, err := parseQuickAdd(value)
		if err != nil {
			m.status = "ERR: " + err.Error()
			return nil
		}
		opts.DueDate = task.DateKey(m.selected)
		return m.mutate(func(ctx context.Context) error {
			_, err := m.svc.AddTask(ctx, opts)
			return err
		})
	}
	return nil
}

// View renders the header, the active view and the footer.
func (m *Model) View() string {
	sections := []string{m.renderHeader()}

	if m.help != nil {
		return strings.Join([]string{sections[0], m.help.View(), m.theme.Footer.Help.Render("? / esc 閉じる")}, "\n\n")
	}

	switch m.view {
	case viewCalendar:
		sections = append(sections, m.renderCalendar())
	case viewSchedule:
		sections = append(sections, m.renderSchedule())
	case viewTennis:
		sections = append(sections, m.renderTennis())
	}

	if m.inputMode != inputNone {
		label := "目標: "
		if m.inputMode == inputAdd {
			label = "追加: "
		}
		sections = append(sections, m.theme.Footer.Input.Render(label)+m.input.View())
	}
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n\n")
}

func (m *Model) renderHeader() string {
	tabs := make([]string, 0, len(viewTitles))
	for i, title := range viewTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if view(i) == m.view {
			tabs = append(tabs, m.theme.Header.Active.Render(label))
		} else {
			tabs = append(tabs, m.theme.Header.Inactive.Render(label))
		}
	}
	title := m.theme.Header.Title.Render("タスク管理アプリ")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", strings.Join(tabs, " "))
}

func (m *Model) renderFooter() string {
	var hint string
	switch {
	case m.inputMode != inputNone:
		hint = "enter 保存 • esc キャンセル"
	case m.view == viewCalendar:
		hint = "←→↑↓ 日付 • [ ] 月 • t 今日 • s スタンプ • g 目標 • a 追加 • ? ヘルプ • q 終了"
	case m.view == viewSchedule:
		hint = "h/l 前日/翌日 • t 今日 • j/k 選択 • x 完了 • d 削除 • ? ヘルプ • q 終了"
	case m.view == viewTennis:
		hint = "r 再取得 • tab 画面 • ? ヘルプ • q 終了"
	}
	footer := m.theme.Footer.Help.Render(hint)
	if m.status != "" {
		footer = m.theme.Footer.Status.Render(m.status) + "\n" + footer
	}
	return footer
}

// overlaySize fits the help overlay below the header, falling back to 80x24
// before the first WindowSizeMsg.
func (m *Model) overlaySize() (int, int) {
	w, h := m.width, m.height
	if w == 0 || h == 0 {
		w, h = 80, 24
	}
	return w - 2, h - 6
}

// Run launches the interactive TUI program.
func Run(svc *app.Service, fetcher Fetcher) error {
	p := tea.NewProgram(New(svc, fetcher), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

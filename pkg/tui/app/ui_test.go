package teaui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/tennis"
)

var testNow = time.Date(2024, time.June, 10, 10, 0, 0, 0, time.UTC)

type fakeFetcher struct {
	calls  int
	result *tennis.Result
	err    error
}

func (f *fakeFetcher) Fetch(context.Context) (*tennis.Result, error) {
	f.calls++
	return f.result, f.err
}

func newTestModel(t *testing.T, fetcher Fetcher, tasks ...task.Task) (*Model, *store.Memory) {
	t.Helper()
	mem := store.NewMemory(tasks...)
	m := New(&app.Service{Persistence: mem, Location: time.UTC}, fetcher)
	t.Cleanup(m.cancel)
	m.now = func() time.Time { return testNow }
	m.selected = task.Midnight(testNow)
	m.scheduleDay = task.Midnight(testNow)
	drain(t, m, m.load())
	return m, mem
}

// drain executes cmd and feeds the resulting messages back into the model.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range msg {
			drain(t, m, c)
		}
	case errMsg:
		t.Fatalf("unexpected error: %v", msg.err)
	default:
		_, next := m.Update(msg)
		drain(t, m, next)
	}
}

func press(t *testing.T, m *Model, key string) {
	t.Helper()
	var msg tea.KeyPressMsg
	switch key {
	case "right":
		msg = tea.KeyPressMsg{Code: tea.KeyRight}
	case "left":
		msg = tea.KeyPressMsg{Code: tea.KeyLeft}
	case "down":
		msg = tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	default:
		r := []rune(key)[0]
		msg = tea.KeyPressMsg{Code: r, Text: key}
	}
	_, cmd := m.Update(msg)
	drain(t, m, cmd)
}

func TestInitialLoad(t *testing.T) {
	m, _ := newTestModel(t, nil,
		task.Task{Title: "standup", DueDate: "2024-06-10", Time: "09:30", Tag: task.TagWork},
		task.Task{Title: "gym", DueDate: "2024-06-12", Time: "18:00", Tag: task.TagPrivate},
	)

	if m.month == nil || m.month.YearMonth != "2024-06" {
		t.Fatalf("expected June 2024 to be loaded, got %+v", m.month)
	}
	if len(m.dayTasks) != 1 || m.dayTasks[0].Title != "standup" {
		t.Fatalf("unexpected day tasks %+v", m.dayTasks)
	}
	if len(m.window.Upcoming) != 1 || m.window.Upcoming[0].Date != "2024-06-12" {
		t.Fatalf("unexpected upcoming %+v", m.window.Upcoming)
	}
	view := m.View()
	for _, want := range []string{"カレンダー", "2024年 6月", "目標を設定しましょう", "standup"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q\n%s", want, view)
		}
	}
}

func TestCalendarNavigation(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(t, m, "right")
	if got := task.DateKey(m.selected); got != "2024-06-11" {
		t.Fatalf("expected 2024-06-11, got %s", got)
	}
	press(t, m, "down")
	if got := task.DateKey(m.selected); got != "2024-06-18" {
		t.Fatalf("expected 2024-06-18, got %s", got)
	}
	press(t, m, "]")
	if got := task.DateKey(m.selected); got != "2024-07-01" {
		t.Fatalf("expected 2024-07-01, got %s", got)
	}
	if m.month.YearMonth != "2024-07" {
		t.Fatalf("expected July to be loaded, got %s", m.month.YearMonth)
	}
	press(t, m, "[")
	press(t, m, "[")
	if got := task.DateKey(m.selected); got != "2024-05-01" {
		t.Fatalf("expected 2024-05-01, got %s", got)
	}
	press(t, m, "t")
	if got := task.DateKey(m.selected); got != "2024-06-10" {
		t.Fatalf("expected today, got %s", got)
	}
}

func TestCalendarSelectionCrossesYear(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.selected = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	press(t, m, "left")
	if got := task.DateKey(m.selected); got != "2023-12-31" {
		t.Fatalf("expected 2023-12-31, got %s", got)
	}
	if m.month.YearMonth != "2023-12" {
		t.Fatalf("expected December 2023, got %s", m.month.YearMonth)
	}
}

func TestStampToggle(t *testing.T) {
	m, mem := newTestModel(t, nil)

	press(t, m, "s")
	if stamps := mem.Stamps(context.Background()); len(stamps) != 1 || stamps[0] != "2024-06-10" {
		t.Fatalf("expected today to be stamped, got %v", stamps)
	}
	if !strings.Contains(m.View(), "★") {
		t.Fatalf("expected stamp glyph in view")
	}

	press(t, m, "s")
	if stamps := mem.Stamps(context.Background()); len(stamps) != 0 {
		t.Fatalf("expected stamp to be cleared, got %v", stamps)
	}
}

func TestGoalInput(t *testing.T) {
	m, mem := newTestModel(t, nil)

	press(t, m, "g")
	if m.inputMode != inputGoal {
		t.Fatalf("expected goal input mode")
	}
	m.input.SetValue("毎日走る")
	press(t, m, "enter")

	if m.inputMode != inputNone {
		t.Fatalf("expected input to close")
	}
	if goal, _ := mem.Goal("2024-06"); goal != "毎日走る" {
		t.Fatalf("unexpected stored goal %q", goal)
	}
	if m.month.Goal != "毎日走る" {
		t.Fatalf("expected reloaded goal, got %q", m.month.Goal)
	}
}

func TestInputEscapeCancels(t *testing.T) {
	m, mem := newTestModel(t, nil)

	press(t, m, "g")
	m.input.SetValue("discard me")
	press(t, m, "esc")

	if m.inputMode != inputNone {
		t.Fatalf("expected input to close")
	}
	if _, err := mem.Goal("2024-06"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected no goal, got %v", err)
	}
}

func TestQuickAddOnSelectedDay(t *testing.T) {
	m, mem := newTestModel(t, nil)

	press(t, m, "right")
	press(t, m, "a")
	m.input.SetValue("07:15 朝ラン #private")
	press(t, m, "enter")

	tasks := mem.ListTasks(context.Background())
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.DueDate != "2024-06-11" || got.Time != "07:15" || got.Title != "朝ラン" || got.Tag != task.TagPrivate {
		t.Fatalf("unexpected task %+v", got)
	}
	if len(m.dayTasks) != 1 {
		t.Fatalf("expected selected day to show the new task")
	}
}

func TestParseQuickAdd(t *testing.T) {
	cases := []struct {
		in    string
		title string
		time  string
		tag   task.Tag
		err   bool
	}{
		{in: "read a book", title: "read a book"},
		{in: "9:05 call mom", title: "call mom", time: "09:05"},
		{in: "review PR #work", title: "review PR", tag: task.TagWork},
		{in: "1200 lunch", title: "1200 lunch"},
		{in: "#work", err: true},
		{in: "write #fun", err: true},
		{in: "   ", err: true},
	}
	for _, tc := range cases {
		opts, err := parseQuickAdd(tc.in)
		if tc.err {
			if err == nil {
				t.Fatalf("%q: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if opts.Title != tc.title || opts.Time != tc.time || opts.Tag != tc.tag {
			t.Fatalf("%q: unexpected options %+v", tc.in, opts)
		}
	}
}

func TestScheduleViewNavigationAndToggle(t *testing.T) {
	m, mem := newTestModel(t, nil,
		task.Task{Title: "late", DueDate: "2024-06-10", Time: "18:00", Tag: task.TagWork},
		task.Task{Title: "early", DueDate: "2024-06-10", Time: "08:00", Tag: task.TagWork},
		task.Task{Title: "next", DueDate: "2024-06-11", Time: "09:00", Tag: task.TagStudy},
	)

	press(t, m, "2")
	if m.view != viewSchedule {
		t.Fatalf("expected schedule view")
	}
	view := m.View()
	for _, want := range []string{"2024年6月10日(月)", "今日のタスク", "今後の予定 (一週間)", "6月11日(火)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q\n%s", want, view)
		}
	}

	press(t, m, "j")
	press(t, m, "x")
	for _, tk := range mem.ListTasks(context.Background()) {
		if tk.Title == "late" && !tk.Done {
			t.Fatalf("expected late to be done")
		}
		if tk.Title == "early" && tk.Done {
			t.Fatalf("expected early to stay open")
		}
	}

	press(t, m, "l")
	if m.window.Date != "2024-06-11" {
		t.Fatalf("expected schedule for 2024-06-11, got %s", m.window.Date)
	}
	if len(m.window.Today) != 1 || m.window.Today[0].Title != "next" {
		t.Fatalf("unexpected today list %+v", m.window.Today)
	}
	if m.cursor != 0 {
		t.Fatalf("expected cursor reset, got %d", m.cursor)
	}
}

func TestScheduleEmptyStates(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(t, m, "2")
	view := m.View()
	for _, want := range []string{"今日のタスクはありません。", "今後一週間のタスクはありません。"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q\n%s", want, view)
		}
	}
}

func TestScheduleDelete(t *testing.T) {
	m, mem := newTestModel(t, nil,
		task.Task{Title: "only", DueDate: "2024-06-10", Time: "08:00", Tag: task.TagWork},
	)

	press(t, m, "2")
	press(t, m, "d")
	if n := len(mem.ListTasks(context.Background())); n != 0 {
		t.Fatalf("expected task to be deleted, %d left", n)
	}
	if len(m.window.Today) != 0 {
		t.Fatalf("expected empty today list")
	}
}

func TestTennisFetchesOnceOnEntry(t *testing.T) {
	f := &fakeFetcher{result: &tennis.Result{Text: "- 優勝 A"}}
	m, _ := newTestModel(t, f)

	press(t, m, "3")
	if f.calls != 1 {
		t.Fatalf("expected one fetch, got %d", f.calls)
	}
	if m.tennisState != tennisLoaded || m.tennisResult.Text != "- 優勝 A" {
		t.Fatalf("unexpected tennis state %v %+v", m.tennisState, m.tennisResult)
	}

	press(t, m, "1")
	press(t, m, "3")
	if f.calls != 1 {
		t.Fatalf("expected no refetch on re-entry, got %d", f.calls)
	}

	press(t, m, "r")
	if f.calls != 2 {
		t.Fatalf("expected manual refetch, got %d", f.calls)
	}
}

func TestTennisFailureMessages(t *testing.T) {
	f := &fakeFetcher{err: tennis.ErrFetch}
	m, _ := newTestModel(t, f)

	press(t, m, "3")
	if m.tennisState != tennisFailed {
		t.Fatalf("expected failed state")
	}
	if !strings.Contains(m.View(), tennis.Message(tennis.ErrFetch)) {
		t.Fatalf("expected fetch failure message\n%s", m.View())
	}
	if f.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", f.calls)
	}

	noKey, _ := newTestModel(t, nil)
	press(t, noKey, "3")
	if !strings.Contains(noKey.View(), tennis.Message(tennis.ErrMissingAPIKey)) {
		t.Fatalf("expected missing key message\n%s", noKey.View())
	}
}

func TestWatchEventReloads(t *testing.T) {
	m, mem := newTestModel(t, nil)

	if err := mem.StoreTask(&task.Task{Title: "external", DueDate: "2024-06-10", Time: "12:00", Tag: task.TagOther}); err != nil {
		t.Fatalf("store: %v", err)
	}
	_, cmd := m.Update(watchEventMsg{event: store.Event{Type: store.EventTasksChanged}})
	drain(t, m, cmd)

	if len(m.dayTasks) != 1 || m.dayTasks[0].Title != "external" {
		t.Fatalf("expected reload to pick up external task, got %+v", m.dayTasks)
	}
}

func TestTabCyclesViews(t *testing.T) {
	m, _ := newTestModel(t, &fakeFetcher{result: &tennis.Result{}})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	drain(t, m, cmd)
	if m.view != viewSchedule {
		t.Fatalf("expected schedule after tab, got %d", m.view)
	}
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	drain(t, m, cmd)
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	drain(t, m, cmd)
	if m.view != viewCalendar {
		t.Fatalf("expected calendar after wrapping, got %d", m.view)
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	m, mem := newTestModel(t, nil)

	press(t, m, "?")
	if m.help == nil {
		t.Fatal("expected help overlay after ?")
	}
	if !strings.Contains(m.View(), "Keys") {
		t.Fatalf("expected help in view:\n%s", m.View())
	}

	press(t, m, "s")
	if len(mem.Stamps(context.Background())) != 0 {
		t.Fatal("keys must not reach the calendar while help is open")
	}

	press(t, m, "esc")
	if m.help != nil {
		t.Fatal("expected esc to close help")
	}
	if m.view != viewCalendar {
		t.Fatalf("closing help must keep the view, got %d", m.view)
	}
}

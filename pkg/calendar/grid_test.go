package calendar

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/planner/pkg/index"
	"tableflip.dev/planner/pkg/task"
)

func contentCells(cells []Cell) []Cell {
	var out []Cell
	for _, c := range cells {
		if !c.Padding {
			out = append(out, c)
		}
	}
	return out
}

func TestBuildFebruaryLeapYear(t *testing.T) {
	cells := Build(Options{Year: 2024, Month0: 1, Location: time.UTC})
	if got := len(contentCells(cells)); got != 29 {
		t.Fatalf("expected 29 days in Feb 2024, got %d", got)
	}
	cells = Build(Options{Year: 2023, Month0: 1, Location: time.UTC})
	if got := len(contentCells(cells)); got != 28 {
		t.Fatalf("expected 28 days in Feb 2023, got %d", got)
	}
}

func TestBuildLeadingPadding(t *testing.T) {
	// June 2024 starts on a Saturday.
	cells := Build(Options{Year: 2024, Month0: 5, Location: time.UTC})
	for i := 0; i < 6; i++ {
		if !cells[i].Padding {
			t.Fatalf("expected padding at %d", i)
		}
	}
	if cells[6].Padding || cells[6].Day != 1 || cells[6].Date != "2024-06-01" {
		t.Fatalf("expected June 1 in the Saturday column, got %+v", cells[6])
	}
	if len(cells) != 42 {
		t.Fatalf("expected 6 full weeks, got %d cells", len(cells))
	}
}

func TestBuildNoPaddingWhenMonthFitsWeeks(t *testing.T) {
	// February 2015 starts on Sunday and has 28 days.
	cells := Build(Options{Year: 2015, Month0: 1, Location: time.UTC})
	if len(cells) != 28 {
		t.Fatalf("expected exactly 4 weeks, got %d", len(cells))
	}
	for _, c := range cells {
		if c.Padding {
			t.Fatalf("unexpected padding cell")
		}
	}
}

func TestBuildNormalisesMonth(t *testing.T) {
	prev := Build(Options{Year: 2024, Month0: -1, Location: time.UTC})
	dec := Build(Options{Year: 2023, Month0: 11, Location: time.UTC})
	if !reflect.DeepEqual(prev, dec) {
		t.Fatalf("month -1 of 2024 should equal December 2023")
	}
	if contentCells(prev)[0].Date != "2023-12-01" {
		t.Fatalf("unexpected first date %s", contentCells(prev)[0].Date)
	}
	if YearMonth(2024, 12) != "2025-01" {
		t.Fatalf("expected 2025-01, got %s", YearMonth(2024, 12))
	}
}

func TestBuildFlags(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", DueDate: "2024-06-10", Time: "09:00", Tag: task.TagWork},
		{ID: "2", DueDate: "2024-06-10", Time: "10:00", Tag: task.TagWork},
		{ID: "3", DueDate: "2024-06-10", Time: "11:00", Tag: task.TagStudy},
		{ID: "4", DueDate: "2024-06-10", Time: "12:00", Tag: task.TagOther},
		{ID: "5", DueDate: "2024-06-10", Time: "13:00", Tag: task.TagPrivate},
		{ID: "6", DueDate: "2024-06-12", Time: "13:00", Tag: task.TagPrivate},
	}
	cells := Build(Options{
		Year:     2024,
		Month0:   5,
		Selected: time.Date(2024, time.June, 12, 15, 0, 0, 0, time.UTC),
		Today:    time.Date(2024, time.June, 11, 8, 0, 0, 0, time.UTC),
		Index:    index.Build(tasks),
		Stamped:  NewStampSet("2024-06-10"),
		Location: time.UTC,
	})

	byDate := make(map[string]Cell)
	for _, c := range contentCells(cells) {
		byDate[c.Date] = c
	}

	tenth := byDate["2024-06-10"]
	want := []task.Tag{task.TagWork, task.TagStudy, task.TagOther}
	if !reflect.DeepEqual(tenth.Tags, want) {
		t.Fatalf("expected markers %v, got %v", want, tenth.Tags)
	}
	if !tenth.Stamped || tenth.Selected || tenth.Today || tenth.Tasks != 5 {
		t.Fatalf("unexpected flags on the 10th: %+v", tenth)
	}
	if eleventh := byDate["2024-06-11"]; !eleventh.Today || len(eleventh.Tags) != 0 {
		t.Fatalf("expected the 11th to be today without markers: %+v", eleventh)
	}
	twelfth := byDate["2024-06-12"]
	if !twelfth.Selected || len(twelfth.Tags) != 0 || twelfth.Tasks != 1 {
		t.Fatalf("selected day must suppress markers: %+v", twelfth)
	}
}

func TestTagMarkersScenario(t *testing.T) {
	tasks := []task.Task{
		{Tag: task.TagWork}, {Tag: task.TagWork}, {Tag: task.TagStudy}, {Tag: task.TagOther},
	}
	got := TagMarkers(tasks)
	want := []task.Tag{task.TagWork, task.TagStudy, task.TagOther}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWeeks(t *testing.T) {
	cells := Build(Options{Year: 2024, Month0: 5, Location: time.UTC})
	weeks := Weeks(cells)
	if len(weeks) != 6 {
		t.Fatalf("expected 6 weeks, got %d", len(weeks))
	}
	for _, w := range weeks {
		if len(w) != 7 {
			t.Fatalf("expected rows of 7, got %d", len(w))
		}
	}
}

func plainOptions() RenderOptions {
	plain := lipgloss.NewStyle()
	return RenderOptions{
		HeaderStyle:   plain,
		SundayStyle:   plain,
		SaturdayStyle: plain,
		EmptyStyle:    plain,
		EntryStyle:    plain,
		TodayStyle:    plain,
		SelectedStyle: plain,
		StampStyle:    plain,
		TagStyles:     map[task.Tag]lipgloss.Style{},
		ShowHeader:    true,
	}
}

func TestRenderPlain(t *testing.T) {
	cells := Build(Options{
		Year:     2024,
		Month0:   5,
		Index:    index.Build([]task.Task{{DueDate: "2024-06-03", Tag: task.TagWork}}),
		Stamped:  NewStampSet("2024-06-01"),
		Location: time.UTC,
	})
	out := Render(cells, plainOptions())
	lines := strings.Split(out, "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header plus 6 weeks, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Su") {
		t.Fatalf("expected weekday header, got %q", lines[0])
	}
	if !strings.Contains(lines[1], " 1★") {
		t.Fatalf("expected stamped first day in first week, got %q", lines[1])
	}
	if !strings.Contains(lines[2], " 3 •") {
		t.Fatalf("expected marker on the 3rd, got %q", lines[2])
	}
}

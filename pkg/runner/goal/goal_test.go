package goal

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestGoalSetShowAndClear(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	svc := &app.Service{Persistence: mem, Location: time.UTC}
	now := time.Date(2024, time.June, 10, 10, 0, 0, 0, time.UTC)

	text := "毎朝走る"
	if err := (&Goal{Month: "next", Text: &text, Now: now, Service: svc, Out: &bytes.Buffer{}}).Do(ctx); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if goal, _ := mem.Goal("2024-07"); goal != text {
		t.Fatalf("unexpected goal %q", goal)
	}

	var buf bytes.Buffer
	if err := (&Goal{Month: "2024-07", Now: now, Service: svc, Out: &buf}).Do(ctx); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(buf.String(), text) {
		t.Fatalf("expected goal in output\n%s", buf.String())
	}

	empty := ""
	buf.Reset()
	if err := (&Goal{Month: "2024-07", Text: &empty, Now: now, Service: svc, Out: &buf}).Do(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if !strings.Contains(buf.String(), "目標を設定しましょう") {
		t.Fatalf("expected placeholder\n%s", buf.String())
	}
}

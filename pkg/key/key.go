// Package key prints the legend for the planner's symbols, tags and TUI keys.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/task"
)

// Bindings lists the TUI keys per view.
var Bindings = []struct {
	View string
	Keys string
	Does string
}{
	{"all", "1 2 3 / tab", "switch view"},
	{"all", "q / ctrl+c", "quit"},
	{"calendar", "←↓↑→ / hjkl", "move the selected day"},
	{"calendar", "[ ]", "previous or next month"},
	{"calendar", "t", "jump to today"},
	{"calendar", "s", "toggle the stamp on the selected day"},
	{"calendar", "g", "edit the month's goal"},
	{"calendar", "a", "quick add: [HH:MM] title [#tag]"},
	{"schedule", "h l", "previous or next day"},
	{"schedule", "j k", "move the cursor"},
	{"schedule", "x / space", "toggle done"},
	{"schedule", "d", "delete"},
	{"tennis", "r", "fetch again"},
}

type Key struct {
	Out io.Writer
}

func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold, color.Underline)

	_, _ = bold.Fprintln(out, "Symbols")
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	_, _ = fmt.Fprintln(out, tbl)

	_, _ = bold.Fprintln(out, "\nTags")
	tbl = uitable.New()
	tbl.Separator = "  "
	for _, tag := range task.AllTags() {
		tbl.AddRow(printers.TagMarker(tag), printers.TagLabel(tag))
	}
	_, _ = fmt.Fprintln(out, tbl)

	_, _ = bold.Fprintln(out, "\nKeys")
	tbl = uitable.New()
	tbl.Separator = "  "
	for _, b := range Bindings {
		tbl.AddRow(b.View, b.Keys, b.Does)
	}
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}

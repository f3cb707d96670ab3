// Package ui provides the runner that opens the terminal UI.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/planner/pkg/app"
	teaui "tableflip.dev/planner/pkg/tui/app"
)

// UI launches the Bubble Tea program.
type UI struct {
	Service *app.Service
	Fetcher teaui.Fetcher
}

// Do runs until the user quits.
func (d *UI) Do(_ context.Context) error {
	if d.Service == nil {
		return errors.New("can not open ui, no persistence")
	}
	return teaui.Run(d.Service, d.Fetcher)
}

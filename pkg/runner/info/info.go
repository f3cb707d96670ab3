// Package info provides the runner that prints configuration details.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/store"
)

// Info prints where the planner keeps its data and what it holds.
type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

// Do executes the info print.
func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("PLANNER_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "PLANNER_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "PLANNER_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.model:", n.Config.Model())
	if n.Config.APIKey() != "" {
		_, _ = fmt.Fprintln(out, "Config.gemini_api_key: set")
	} else {
		_, _ = fmt.Fprintln(out, "Config.gemini_api_key: not set")
	}

	if n.Service == nil || n.Service.Persistence == nil {
		return fmt.Errorf("info: failed to create persistence object")
	}

	tasks, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	open := 0
	for _, t := range tasks {
		if !t.Done {
			open++
		}
	}
	_, _ = fmt.Fprintf(out, "Tasks: %d (%d open)\n", len(tasks), open)
	_, _ = fmt.Fprintf(out, "Stamps: %d\n", len(n.Service.Persistence.Stamps(ctx)))
	_, _ = fmt.Fprintf(out, "Goals: %d\n", len(n.Service.Persistence.Goals(ctx)))
	return nil
}

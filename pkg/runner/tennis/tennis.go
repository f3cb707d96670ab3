// Package tennis provides the runner that prints recent tennis results.
package tennis

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/tennis"
)

// Fetcher loads tennis results.
type Fetcher interface {
	Fetch(ctx context.Context) (*tennis.Result, error)
}

// Tennis fetches once and prints the answer with its sources.
type Tennis struct {
	Fetcher Fetcher
	Width   int
	JSON    bool
	Out     io.Writer
}

// Do executes the fetch.
func (n *Tennis) Do(ctx context.Context) error {
	if n.Fetcher == nil {
		return errors.New(tennis.Message(tennis.ErrMissingAPIKey))
	}
	res, err := n.Fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", tennis.Message(err), err)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(res)
	}
	pp.NewLine()
	pp.Tennis(res, n.Width)
	return nil
}

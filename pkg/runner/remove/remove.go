// Package remove provides the runner that deletes tasks.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/printers"
)

// Remove deletes a task by id.
type Remove struct {
	ID      string
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

// Do executes the delete.
func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no persistence")
	}
	if err := n.Service.DeleteTask(ctx, n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(map[string]string{"deleted": n.ID})
	}
	pp.Text(fmt.Sprintf("deleted %s", n.ID))
	return nil
}

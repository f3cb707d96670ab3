package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	id := &options.IDOptions{}
	oo := &options.OnOptions{}
	output := &options.OutputOptions{}
	open := false

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List tasks grouped by due date",
		Example: `
planner list
planner list --on today --open
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			s := list.List{
				ShowID:  id.ShowID,
				On:      oo.On,
				Open:    open,
				Service: svc,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Hide completed tasks.")
	options.AddShowIDArgs(cmd, id)
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

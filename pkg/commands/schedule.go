package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/schedule"
)

func addSchedule(topLevel *cobra.Command) {
	id := &options.IDOptions{}
	oo := &options.OnOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"today", "week"},
		Short:   "Show a day's tasks and the week after it",
		Example: `
planner schedule
planner schedule --on tomorrow
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			s := schedule.Schedule{
				ShowID:  id.ShowID,
				On:      oo.On,
				Service: svc,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, id)
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

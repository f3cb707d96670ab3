package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/stamp"
)

func addStamp(topLevel *cobra.Command) {
	topLevel.AddCommand(stampCommand("stamp", "Stamp a day as achieved", false))
	topLevel.AddCommand(stampCommand("unstamp", "Clear the stamp of a day", true))
}

func stampCommand(use, short string, clear bool) *cobra.Command {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   use + " [date]",
		Short: short,
		Example: `
planner ` + use + `
planner ` + use + ` yesterday
planner ` + use + ` 2024-06-10
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			s := stamp.Stamp{
				Clear:   clear,
				Service: svc,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			if len(args) == 1 {
				s.Date = args[0]
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	return cmd
}

package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/goal"
)

func addGoal(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	output := &options.OutputOptions{}
	clearGoal := false

	cmd := &cobra.Command{
		Use:   "goal [text]",
		Short: "Show or set who you want to be this month",
		Example: `
planner goal
planner goal run three times a week
planner goal --month next read two books
planner goal --clear
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			s := goal.Goal{
				Month:   mo.Month,
				Service: svc,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			switch {
			case clearGoal:
				empty := ""
				s.Text = &empty
			case len(args) > 0:
				text := strings.Join(args, " ")
				s.Text = &text
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&clearGoal, "clear", false, "Remove the goal.")
	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
)

// New builds the planner root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planner",
		Short: options.Wrap80("A personal task planner with a monthly calendar, a weekly schedule and monthly goals."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addList(topLevel)
	addDone(topLevel)
	addDelete(topLevel)
	addCalendar(topLevel)
	addSchedule(topLevel)
	addStamp(topLevel)
	addGoal(topLevel)
	addTennis(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addAuto(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

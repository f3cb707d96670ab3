package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/prompt"
	"tableflip.dev/planner/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	oo := &options.OnOptions{}
	io := &options.InteractiveOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Example: `
planner add write the report --on tomorrow --at 9:30 --tag work
planner add -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			to.Title = strings.Join(args, " ")
			if to.Title == "" && !io.Interactive {
				return errors.New("requires a task title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}

			s := add.Add{
				Title:   to.Title,
				On:      oo.On,
				At:      to.At,
				Tag:     to.Tag,
				Service: svc,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			if io.Interactive {
				s.Prompter = prompt.Prompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Now: svc.Now()}
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)
	options.AddOnArgs(cmd, oo)
	options.InteractiveArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

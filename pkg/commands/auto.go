package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/wizard"
)

func addAuto(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Pick a command and its flags interactively",
		Example: `
planner auto
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := wizard.Wizard{
				In:   cmd.InOrStdin(),
				Out:  cmd.OutOrStdout(),
				Skip: []string{"auto", "completion", "help"},
			}
			args, err := w.Args(topLevel)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Running:", topLevel.Name(), strings.Join(args, " "))
			topLevel.SetArgs(args)
			return topLevel.ExecuteContext(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

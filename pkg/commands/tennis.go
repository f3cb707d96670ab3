package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/tennis"
	"tableflip.dev/planner/pkg/store"
)

func addTennis(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	width := 80

	cmd := &cobra.Command{
		Use:   "tennis",
		Short: "Show recent major tennis results",
		Long: options.Wrap80(`Ask Gemini, grounded on Google Search, for the latest major tennis
results. Requires gemini_api_key in .planner.yaml or the GEMINI_API_KEY
environment variable. The request is made once and not retried.`),
		Example: `
planner tennis
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			s := tennis.Tennis{
				Fetcher: tennisFetcher(cfg),
				Width:   width,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&width, "width", width, "Wrap the answer at this many columns.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

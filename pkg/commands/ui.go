package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
planner ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fd := os.Stdout.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				return errors.New("ui requires an interactive terminal")
			}
			svc, cfg, err := loadService()
			if err != nil {
				return err
			}
			i := ui.UI{Service: svc, Fetcher: tennisFetcher(cfg)}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

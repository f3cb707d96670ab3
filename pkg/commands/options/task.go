package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/task"
)

// TaskOptions
type TaskOptions struct {
	Title string
	At    string
	Tag   string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.At, "at", "",
		`Time of day, example: --at="9:30". Defaults to 09:00.`)
	cmd.Flags().StringVarP(&o.Tag, "tag", "t", "",
		"Tag of the task, one of: "+strings.Join(task.TagNames(), ", ")+".")
	_ = cmd.RegisterFlagCompletionFunc("tag", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return task.TagNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

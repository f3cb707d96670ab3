package options

import (
	"github.com/spf13/cobra"
)

// OnOptions
type OnOptions struct {
	On string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.On, "on", "",
		`Specify a date, example: --on="2024-06-10", --on="6/10", --on=tomorrow or --on=+3d.`)
}

// MonthOptions
type MonthOptions struct {
	Month string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Specify a month, example: --month="2024-06", --month=next or --month=prev.`)
}

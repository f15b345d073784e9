package options

import (
	"github.com/spf13/cobra"
)

// ShiftOptions captures the fields of a new shift.
type ShiftOptions struct {
	Staff string
	Dates []string
	Start string
	End   string
	Store string
}

func AddShiftArgs(cmd *cobra.Command, o *ShiftOptions) {
	cmd.Flags().StringVarP(&o.Staff, "staff", "s", "",
		"Staff id the shift belongs to.")
	cmd.Flags().StringArrayVar(&o.Dates, "on", nil,
		`Shift date, example: --on="2026-02-28". May repeat.`)
	cmd.Flags().StringVar(&o.Start, "start", "",
		"Start of the shift, example: 09:00.")
	cmd.Flags().StringVar(&o.End, "end", "",
		"End of the shift, example: 17:00.")
	cmd.Flags().StringVar(&o.Store, "store", "",
		"Store or location label.")
	_ = cmd.MarkFlagRequired("staff")
	_ = cmd.MarkFlagRequired("on")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
}

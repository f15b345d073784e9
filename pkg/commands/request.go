package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftsync/pkg/commands/options"
	"tableflip.dev/shiftsync/pkg/runner/request"
)

func addRequest(topLevel *cobra.Command) {
	sh := &options.ShiftOptions{}

	cmd := &cobra.Command{
		Use:   "request",
		Short: "request shifts on one or more dates",
		Long: "Request shifts for a staff member. The --on flag may repeat to " +
			"request the same hours across several dates; requests stay in the " +
			"requested state until approved.",
		Example: `
shiftsync request --staff s-003 --on 2026-09-03 --start 09:00 --end 14:00
shiftsync request --staff s-003 --on 2026-09-03 --on 2026-09-04 --start 09:00 --end 14:00
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := load()
			if err != nil {
				return err
			}
			r := request.Request{
				StaffID: sh.Staff,
				Dates:   sh.Dates,
				Start:   sh.Start,
				End:     sh.End,
				Store:   sh.Store,
				Path:    l.path,
				Roster:  l.roster,
				Index:   l.index,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShiftArgs(cmd, sh)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

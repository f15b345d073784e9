package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftsync/pkg/commands/options"
	"tableflip.dev/shiftsync/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	sh := &options.ShiftOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a confirmed shift",
		Example: `
shiftsync add --staff s-001 --on 2026-09-03 --start 09:00 --end 17:00
shiftsync add --staff s-002 --on 2026-09-03 --start 12:00 --end 16:00 --store Shibuya
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.New("add takes no positional arguments")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(sh.Dates) != 1 {
				return errors.New("add takes exactly one --on date; use request for several")
			}
			l, err := load()
			if err != nil {
				return err
			}
			a := add.Add{
				StaffID: sh.Staff,
				Date:    sh.Dates[0],
				Start:   sh.Start,
				End:     sh.End,
				Store:   sh.Store,
				Path:    l.path,
				Roster:  l.roster,
				Index:   l.index,
			}
			err = a.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShiftArgs(cmd, sh)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

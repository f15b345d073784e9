package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftsync/pkg/commands/options"
	"tableflip.dev/shiftsync/pkg/runner/schedule"
)

func addSchedule(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	vo := &options.ViewOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "schedule [day|week|month]",
		Aliases: []string{"list", "ls"},
		Short:   "list shifts for a day, week or month",
		Example: `
shiftsync schedule
shiftsync schedule week
shiftsync schedule --on 2026-9-3
shiftsync schedule --month --show-id
`,
		ValidArgs: []string{"day", "week", "month"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			if len(args) > 1 {
				return errors.New("at most one view")
			}
			switch args[0] {
			case "week":
				vo.Week = true
			case "month":
				vo.Month = true
			case "day":
			default:
				return fmt.Errorf("unknown view %q", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := on.GetOn()
			if err != nil {
				return err
			}
			l, err := load()
			if err != nil {
				return err
			}
			s := schedule.Schedule{
				ShowID:    io.ShowID,
				On:        anchor,
				View:      vo.GetView(),
				WeekStart: l.cfg.Weekday(),
				Index:     l.index,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddViewArgs(cmd, vo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

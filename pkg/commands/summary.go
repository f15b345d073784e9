package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftsync/pkg/commands/options"
	"tableflip.dev/shiftsync/pkg/runner/summary"
)

func addSummary(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "weekly hours and labor cost",
		Example: `
shiftsync summary
shiftsync summary --on 2026-9-3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := on.GetOn()
			if err != nil {
				return err
			}
			l, err := load()
			if err != nil {
				return err
			}
			s := summary.Summary{
				On:        anchor,
				WeekStart: l.cfg.Weekday(),
				Index:     l.index,
				Roster:    l.roster,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

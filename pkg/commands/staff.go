package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftsync/pkg/commands/options"
	"tableflip.dev/shiftsync/pkg/runner/roster"
)

func addStaff(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "list the staff roster",
		Example: `
shiftsync staff
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := load()
			if err != nil {
				return err
			}
			r := roster.Roster{Roster: l.roster}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

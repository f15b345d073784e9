package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftsync/pkg/commands/options"
	"tableflip.dev/shiftsync/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "remove [id]",
		Aliases: []string{"rm"},
		Short:   "remove a shift",
		Example: `
shiftsync remove 6f81f3a1-9c2d
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				io.ID = args[0]
				return nil
			}
			if io.ID == "" && len(args) == 0 {
				return errors.New("a shift id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := load()
			if err != nil {
				return err
			}
			r := remove.Remove{
				ID:     io.ID,
				Path:   l.path,
				Roster: l.roster,
				Index:  l.index,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

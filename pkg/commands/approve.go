package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftsync/pkg/commands/options"
	"tableflip.dev/shiftsync/pkg/runner/approve"
)

func addApprove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	deny := false

	cmd := &cobra.Command{
		Use:   "approve [id]",
		Short: "approve or deny a shift request",
		Example: `
shiftsync approve 6f81f3a1-9c2d
shiftsync approve 6f81f3a1-9c2d --deny
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
			a := approve.Approve{
				ID:     io.ID,
				Deny:   deny,
				Path:   l.path,
				Roster: l.roster,
				Index:  l.index,
			}
			err = a.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&deny, "deny", false, "Deny the request and remove it.")

	topLevel.AddCommand(cmd)
}

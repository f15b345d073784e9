package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftsync/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive calendar",
		Example: `
shiftsync ui
shiftsync ui --schedule ./schedule.yaml
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := load()
			if err != nil {
				return err
			}
			i := ui.UI{Config: l.cfg, Roster: l.roster, Index: l.index}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/shiftsync/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
	so = &options.ScheduleOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "shiftsync",
		Short: base.Wrap80("Staff shift scheduling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddScheduleArgs(cmd, so)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addSchedule(topLevel)
	addAdd(topLevel)
	addRequest(topLevel)
	addApprove(topLevel)
	addRemove(topLevel)
	addStaff(topLevel)
	addSummary(topLevel)
	addVersion(topLevel)
}

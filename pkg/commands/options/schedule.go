package options

import (
	"github.com/spf13/cobra"
)

// ScheduleOptions selects the schedule file commands operate on.
type ScheduleOptions struct {
	Path string
}

func AddScheduleArgs(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.PersistentFlags().StringVarP(&o.Path, "schedule", "f", "",
		"Path to a YAML schedule file. Without one the bundled demo schedule is used.")
}

package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shiftsync/pkg/calendar"
)

// ViewOptions selects the listing view.
type ViewOptions struct {
	Week  bool
	Month bool
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().BoolVarP(&o.Week, "week", "w", false,
		"List the whole week.")
	cmd.Flags().BoolVarP(&o.Month, "month", "m", false,
		"List the whole month.")
}

// GetView maps the flags to a calendar view, day by default.
func (o *ViewOptions) GetView() calendar.View {
	switch {
	case o.Month:
		return calendar.ViewMonth
	case o.Week:
		return calendar.ViewWeek
	default:
		return calendar.ViewDay
	}
}

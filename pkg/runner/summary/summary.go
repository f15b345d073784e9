// Package summary prints weekly hour and labor cost totals.
package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/shiftsync/pkg/calendar"
	"tableflip.dev/shiftsync/pkg/printers"
	"tableflip.dev/shiftsync/pkg/shift"
	"tableflip.dev/shiftsync/pkg/staff"
)

// Summary totals the week containing the anchor date.
type Summary struct {
	On        time.Time
	WeekStart time.Weekday
	Index     *shift.Index
	Roster    *staff.Roster
}

// Do renders the summary table to stdout.
func (s *Summary) Do(ctx context.Context) error {
	if s.Index == nil || s.Roster == nil {
		return errors.New("can not summarize, no schedule loaded")
	}

	week := calendar.StartOfWeek(s.On, s.WeekStart)
	sum := shift.SummarizeWeek(s.Index, week, s.Roster.Wage)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(fmt.Sprintf("Week of %s", sum.Start))
	pp.WeekSummary(sum)
	return nil
}

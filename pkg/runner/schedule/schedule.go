// Package schedule prints the schedule for a day, week or month.
package schedule

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/shiftsync/pkg/calendar"
	"tableflip.dev/shiftsync/pkg/printers"
	"tableflip.dev/shiftsync/pkg/shift"
)

// Schedule lists shifts around the anchor date in the requested view.
type Schedule struct {
	ShowID    bool
	On        time.Time
	View      calendar.View
	WeekStart time.Weekday
	Index     *shift.Index
}

// Do renders the listing to stdout.
func (s *Schedule) Do(ctx context.Context) error {
	if s.Index == nil {
		return errors.New("can not list, no schedule loaded")
	}

	pp := printers.PrettyPrint{ShowID: s.ShowID}
	pp.NewLine()

	switch s.View {
	case calendar.ViewMonth:
		pp.Title(s.On.Format("January 2006"))
		pp.Month(s.On, s.Index)
		pp.MonthLong(s.On, s.Index)
	case calendar.ViewWeek:
		for _, day := range calendar.WeekDays(s.On, s.WeekStart) {
			shifts := s.Index.OnDay(day)
			pp.TitleWithCount(day.Format("Mon, January 2"), len(shifts))
			pp.Shifts(shifts...)
		}
	default:
		shifts := s.Index.OnDay(s.On)
		pp.TitleWithCount(s.On.Format("Monday, January 2 2006"), len(shifts))
		pp.Shifts(shifts...)
	}
	return nil
}

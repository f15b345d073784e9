// Package calendar holds the navigation state machine behind the month,
// week and day views, plus the date grid helpers they render from.
package calendar

import "time"

// View is the calendar granularity currently displayed.
type View int

const (
	ViewMonth View = iota
	ViewWeek
	ViewDay
)

func (v View) String() string {
	switch v {
	case ViewWeek:
		return "week"
	case ViewDay:
		return "day"
	default:
		return "month"
	}
}

// ParseView maps a view token to a View. Unknown tokens fall back to month.
func ParseView(s string) (View, bool) {
	switch s {
	case "month", "":
		return ViewMonth, true
	case "week":
		return ViewWeek, true
	case "day":
		return ViewDay, true
	}
	return ViewMonth, false
}

// State is the long-lived navigation state: the anchor date, the focused
// date, the multi-select set and the active view. Construct one per session
// and pass it to the renderers; there is no package-level instance.
type State struct {
	now func() time.Time

	current  time.Time
	selected time.Time // zero when nothing is focused
	multi    []time.Time
	view     View
}

// NewState builds a State anchored on the provided clock. A nil clock means
// time.Now. The anchor starts at today in month view.
func NewState(now func() time.Time) *State {
	if now == nil {
		now = time.Now
	}
	return &State{
		now:     now,
		current: midnight(now()),
		view:    ViewMonth,
	}
}

// Now returns the state's current wall-clock reading.
func (s *State) Now() time.Time { return s.now() }

// View returns the active view mode.
func (s *State) View() View { return s.view }

// SetView switches the view mode without touching the anchor date.
func (s *State) SetView(v View) { s.view = v }

// Current returns the anchor date.
func (s *State) Current() time.Time { return s.current }

// SetCurrent moves the anchor date directly.
func (s *State) SetCurrent(d time.Time) { s.current = midnight(d) }

// Selected returns the focused date and whether one is set.
func (s *State) Selected() (time.Time, bool) {
	return s.selected, !s.selected.IsZero()
}

// SelectedDates returns the multi-select set in insertion order.
func (s *State) SelectedDates() []time.Time {
	out := make([]time.Time, len(s.multi))
	copy(out, s.multi)
	return out
}

// GoToToday snaps the anchor and the focused date to the clock's today.
func (s *State) GoToToday() {
	today := midnight(s.now())
	s.current = today
	s.selected = today
	s.multi = []time.Time{today}
}

// GoToPrevious steps the anchor back by one view page: a month, seven days
// or one day. In day view the focused date moves in lockstep.
func (s *State) GoToPrevious() { s.step(-1) }

// GoToNext steps the anchor forward by one view page.
func (s *State) GoToNext() { s.step(1) }

func (s *State) step(dir int) {
	switch s.view {
	case ViewMonth:
		s.current = AddMonths(s.current, dir)
	case ViewWeek:
		s.current = s.current.AddDate(0, 0, 7*dir)
	case ViewDay:
		s.current = s.current.AddDate(0, 0, dir)
		if !s.selected.IsZero() {
			s.selected = s.selected.AddDate(0, 0, dir)
		} else {
			s.selected = s.current
		}
	}
}

// SetSelectedDate focuses a single date and collapses the multi-select set
// to just that date.
func (s *State) SetSelectedDate(d time.Time) {
	day := midnight(d)
	s.selected = day
	s.multi = []time.Time{day}
}

// ClearSelected drops the focused date and empties the multi-select set.
func (s *State) ClearSelected() {
	s.selected = time.Time{}
	s.multi = nil
}

// ToggleDateSelection adds the date to the multi-select set, or removes it
// when already present. Presence is judged by calendar day, not instant.
// The focused date is left alone.
func (s *State) ToggleDateSelection(d time.Time) {
	day := midnight(d)
	for n, have := range s.multi {
		if SameDay(have, day) {
			s.multi = append(s.multi[:n], s.multi[n+1:]...)
			return
		}
	}
	s.multi = append(s.multi, day)
}

// IsSelected reports whether the date is in the multi-select set.
func (s *State) IsSelected(d time.Time) bool {
	for _, have := range s.multi {
		if SameDay(have, d) {
			return true
		}
	}
	return false
}

// IsToday reports whether the date is the clock's today.
func (s *State) IsToday(d time.Time) bool {
	return SameDay(d, s.now())
}

// DisplayDate returns the date a day view should show: the focused date
// when set, otherwise the anchor.
func (s *State) DisplayDate() time.Time {
	if !s.selected.IsZero() {
		return s.selected
	}
	return s.current
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package calendar

import (
	"testing"
	"time"
)

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time {
		return time.Date(y, m, d, 10, 30, 0, 0, time.Local)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNewStateAnchorsOnToday(t *testing.T) {
	s := NewState(fixedClock(2025, time.February, 15))
	if !SameDay(s.Current(), date(2025, time.February, 15)) {
		t.Fatalf("expected anchor on today, got %v", s.Current())
	}
	if s.View() != ViewMonth {
		t.Fatalf("expected month view default, got %v", s.View())
	}
	if _, ok := s.Selected(); ok {
		t.Fatalf("expected no initial selection")
	}
}

func TestStepRoundTripPerView(t *testing.T) {
	for _, view := range []View{ViewMonth, ViewWeek, ViewDay} {
		s := NewState(fixedClock(2025, time.February, 15))
		s.SetView(view)
		start := s.Current()
		s.GoToNext()
		s.GoToPrevious()
		if !SameDay(s.Current(), start) {
			t.Fatalf("view %s: next+previous moved anchor from %v to %v", view, start, s.Current())
		}
	}
}

func TestMonthStepSizes(t *testing.T) {
	s := NewState(fixedClock(2025, time.February, 15))

	s.SetView(ViewMonth)
	s.GoToNext()
	s.GoToNext()
	s.GoToNext()
	if got := s.Current(); got.Year() != 2025 || got.Month() != time.May || got.Day() != 15 {
		t.Fatalf("three month steps from Feb 15 should land on May 15, got %v", got)
	}
}

func TestMonthStepClampsDayOfMonth(t *testing.T) {
	s := NewState(fixedClock(2025, time.January, 31))
	s.SetView(ViewMonth)
	s.GoToNext()
	if got := s.Current(); got.Month() != time.February || got.Day() != 28 {
		t.Fatalf("Jan 31 + 1 month should clamp to Feb 28, got %v", got)
	}
	s.GoToPrevious()
	if got := s.Current(); got.Month() != time.January || got.Day() != 28 {
		t.Fatalf("clamped round trip lands on Jan 28, got %v", got)
	}
}

func TestWeekStep(t *testing.T) {
	s := NewState(fixedClock(2025, time.February, 15))
	s.SetView(ViewWeek)
	s.GoToNext()
	if !SameDay(s.Current(), date(2025, time.February, 22)) {
		t.Fatalf("week step should move 7 days, got %v", s.Current())
	}
}

func TestDayStepMovesSelectionInLockstep(t *testing.T) {
	s := NewState(fixedClock(2025, time.February, 15))
	s.SetView(ViewDay)
	s.SetSelectedDate(date(2025, time.February, 15))
	s.GoToNext()
	if !SameDay(s.Current(), date(2025, time.February, 16)) {
		t.Fatalf("anchor should advance one day, got %v", s.Current())
	}
	sel, ok := s.Selected()
	if !ok || !SameDay(sel, date(2025, time.February, 16)) {
		t.Fatalf("selection should track the anchor, got %v", sel)
	}
}

func TestSetViewKeepsAnchor(t *testing.T) {
	s := NewState(fixedClock(2025, time.February, 15))
	s.SetView(ViewWeek)
	s.GoToNext()
	anchor := s.Current()
	s.SetView(ViewDay)
	if !SameDay(s.Current(), anchor) {
		t.Fatalf("view switch must not move the anchor")
	}
}

func TestGoToToday(t *testing.T) {
	s := NewState(fixedClock(2025, time.February, 15))
	s.SetView(ViewMonth)
	s.GoToNext()
	s.GoToNext()
	s.GoToToday()
	if !SameDay(s.Current(), date(2025, time.February, 15)) {
		t.Fatalf("today should reset the anchor, got %v", s.Current())
	}
	sel, ok := s.Selected()
	if !ok || !SameDay(sel, date(2025, time.February, 15)) {
		t.Fatalf("today should focus today, got %v", sel)
	}
}

func TestSetSelectedDateCollapsesMultiSelect(t *testing.T) {
	s := NewState(fixedClock(2025, time.February, 15))
	s.ToggleDateSelection(date(2025, time.February, 20))
	s.ToggleDateSelection(date(2025, time.February, 21))
	s.SetSelectedDate(date(2025, time.February, 25))

	got := s.SelectedDates()
	if len(got) != 1 || !SameDay(got[0], date(2025, time.February, 25)) {
		t.Fatalf("single select should collapse the set, got %v", got)
	}
}

func TestToggleDateSelectionOrderAndIdempotence(t *testing.T) {
	s := NewState(fixedClock(2025, time.February, 15))

	s.ToggleDateSelection(date(2025, time.February, 20))
	s.ToggleDateSelection(date(2025, time.February, 21))
	got := s.SelectedDates()
	if len(got) != 2 || !SameDay(got[0], date(2025, time.February, 20)) || !SameDay(got[1], date(2025, time.February, 21)) {
		t.Fatalf("insertion order not preserved: %v", got)
	}

	// Toggling twice returns the set to its prior state.
	s.ToggleDateSelection(date(2025, time.February, 22))
	s.ToggleDateSelection(date(2025, time.February, 22))
	got = s.SelectedDates()
	if len(got) != 2 {
		t.Fatalf("double toggle should be a no-op, got %v", got)
	}

	// Removal matches by calendar day even for a different instant.
	noon := time.Date(2025, time.February, 20, 12, 0, 0, 0, time.Local)
	s.ToggleDateSelection(noon)
	got = s.SelectedDates()
	if len(got) != 1 || !SameDay(got[0], date(2025, time.February, 21)) {
		t.Fatalf("day-equality removal failed: %v", got)
	}
}

func TestToggleDoesNotTouchFocusedDate(t *testing.T) {
	s := NewState(fixedClock(2025, time.February, 15))
	s.SetSelectedDate(date(2025, time.February, 18))
	s.ToggleDateSelection(date(2025, time.February, 19))
	sel, ok := s.Selected()
	if !ok || !SameDay(sel, date(2025, time.February, 18)) {
		t.Fatalf("toggle must not move the focused date, got %v", sel)
	}
}

func TestClearSelected(t *testing.T) {
	s := NewState(fixedClock(2025, time.February, 15))
	s.SetSelectedDate(date(2025, time.February, 18))
	s.ToggleDateSelection(date(2025, time.February, 19))
	s.ClearSelected()
	if _, ok := s.Selected(); ok {
		t.Fatalf("clear should drop the focused date")
	}
	if len(s.SelectedDates()) != 0 {
		t.Fatalf("clear should empty the set")
	}
}

func TestDisplayDateFallsBackToAnchor(t *testing.T) {
	s := NewState(fixedClock(2025, time.February, 15))
	if !SameDay(s.DisplayDate(), s.Current()) {
		t.Fatalf("display date should fall back to the anchor")
	}
	s.SetSelectedDate(date(2025, time.February, 20))
	if !SameDay(s.DisplayDate(), date(2025, time.February, 20)) {
		t.Fatalf("display date should prefer the focused date")
	}
}

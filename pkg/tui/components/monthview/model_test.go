package monthview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/shiftsync/pkg/calendar"
	"tableflip.dev/shiftsync/pkg/palette"
	"tableflip.dev/shiftsync/pkg/shift"
	"tableflip.dev/shiftsync/pkg/tui/events"
)

func newTestModel(t *testing.T, shifts ...shift.Shift) (*Model, *calendar.State) {
	t.Helper()
	clock := func() time.Time {
		return time.Date(2025, time.February, 18, 9, 30, 0, 0, time.Local)
	}
	state := calendar.NewState(clock)
	idx := shift.NewIndex()
	if err := idx.SetAll(shifts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	colors := palette.New([]string{"s-001", "s-002"})
	m := New("month-test", state, idx, colors, time.Sunday)
	m.SetSize(84, 30)
	return m, state
}

func TestViewShowsMonthDays(t *testing.T) {
	m, _ := newTestModel(t)
	view := stripANSI(m.View())

	for _, want := range []string{"Sun", "Sat", " 1", "18", "28"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q:\n%s", want, view)
		}
	}
}

func TestViewShowsShiftIndicators(t *testing.T) {
	m, _ := newTestModel(t, shift.Shift{
		ID: "a", StaffID: "s-001", StaffName: "Tanaka Yuki",
		Date: "2025-02-18", Start: "09:00", End: "17:00",
		Status: shift.StatusConfirmed,
	})
	view := stripANSI(m.View())

	if !strings.Contains(view, "·09:00") {
		t.Fatalf("expected start time indicator in view:\n%s", view)
	}
}

func TestOverflowIndicator(t *testing.T) {
	shifts := make([]shift.Shift, 0, 5)
	for i, start := range []string{"08:00", "09:00", "10:00", "11:00", "12:00"} {
		shifts = append(shifts, shift.Shift{
			ID: string(rune('a' + i)), StaffID: "s-001", StaffName: "Tanaka Yuki",
			Date: "2025-02-18", Start: start, End: "17:00",
			Status: shift.StatusConfirmed,
		})
	}
	m, _ := newTestModel(t, shifts...)
	view := stripANSI(m.View())

	if !strings.Contains(view, "+3") {
		t.Fatalf("expected overflow marker for 5 shifts with 3 slots:\n%s", view)
	}
}

func TestCursorMovesSelectedDate(t *testing.T) {
	m, state := newTestModel(t)
	state.SetSelectedDate(time.Date(2025, time.February, 18, 0, 0, 0, 0, time.Local))

	m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if sel, _ := state.Selected(); sel.Day() != 19 {
		t.Fatalf("expected right to move to Feb 19, got %v", sel)
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if sel, _ := state.Selected(); sel.Day() != 26 {
		t.Fatalf("expected down to move a week to Feb 26, got %v", sel)
	}
}

func TestCursorDragsAnchorAcrossMonths(t *testing.T) {
	m, state := newTestModel(t)
	state.SetSelectedDate(time.Date(2025, time.February, 28, 0, 0, 0, 0, time.Local))

	m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if state.Current().Month() != time.March {
		t.Fatalf("expected anchor to follow cursor into March, got %v", state.Current())
	}
}

func TestToggleMarksDate(t *testing.T) {
	m, state := newTestModel(t)
	day := time.Date(2025, time.February, 18, 0, 0, 0, 0, time.Local)
	state.SetSelectedDate(day)

	m.Update(tea.KeyPressMsg{Text: "x", Code: 'x'})
	// SetSelectedDate seeds the set, so the toggle removes it again.
	if state.IsSelected(day) {
		t.Fatalf("expected toggle to unmark the seeded date")
	}
	m.Update(tea.KeyPressMsg{Text: "x", Code: 'x'})
	if !state.IsSelected(day) {
		t.Fatalf("expected second toggle to mark the date again")
	}
}

func TestEnterEmitsSelectionThenActivation(t *testing.T) {
	m, state := newTestModel(t)
	state.SetCurrent(time.Date(2025, time.February, 18, 0, 0, 0, 0, time.Local))
	state.ClearSelected()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command from enter")
	}
	if _, ok := cmd().(events.DateSelectedMsg); !ok {
		t.Fatalf("expected DateSelectedMsg on first enter")
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command from second enter")
	}
	if _, ok := cmd().(events.DateActivatedMsg); !ok {
		t.Fatalf("expected DateActivatedMsg on repeated enter")
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/shiftsync/pkg/calendar"
	"tableflip.dev/shiftsync/pkg/config"
	"tableflip.dev/shiftsync/pkg/palette"
	"tableflip.dev/shiftsync/pkg/shift"
	"tableflip.dev/shiftsync/pkg/tui/events"
)

func newTestModel(t *testing.T) (*Model, *calendar.State) {
	t.Helper()
	clock := func() time.Time {
		return time.Date(2025, time.February, 18, 9, 30, 0, 0, time.Local)
	}
	state := calendar.NewState(clock)
	idx := shift.NewIndex()
	colors := palette.New([]string{"s-001"})
	cfg := &config.Config{
		WeekStart:         "sunday",
		WeekViewStartHour: 6,
		WeekViewEndHour:   22,
		SwipeThreshold:    5,
	}
	m := New(cfg, state, idx, colors)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, state
}

func TestViewKeysSwitchViews(t *testing.T) {
	m, state := newTestModel(t)

	m.Update(tea.KeyPressMsg{Text: "w", Code: 'w'})
	if state.View() != calendar.ViewWeek {
		t.Fatalf("expected week view, got %v", state.View())
	}
	m.Update(tea.KeyPressMsg{Text: "d", Code: 'd'})
	if state.View() != calendar.ViewDay {
		t.Fatalf("expected day view, got %v", state.View())
	}
	m.Update(tea.KeyPressMsg{Text: "m", Code: 'm'})
	if state.View() != calendar.ViewMonth {
		t.Fatalf("expected month view, got %v", state.View())
	}
}

func TestBracketKeysPage(t *testing.T) {
	m, state := newTestModel(t)

	m.Update(tea.KeyPressMsg{Text: "]", Code: ']'})
	if state.Current().Month() != time.March {
		t.Fatalf("expected ] to page to March, got %v", state.Current())
	}
	m.Update(tea.KeyPressMsg{Text: "[", Code: '['})
	m.Update(tea.KeyPressMsg{Text: "[", Code: '['})
	if state.Current().Month() != time.January {
		t.Fatalf("expected [ twice to land on January, got %v", state.Current())
	}
}

func TestSwipeLeftPagesForward(t *testing.T) {
	m, state := newTestModel(t)

	m.Update(tea.MouseClickMsg{X: 60, Y: 10})
	m.Update(tea.MouseMotionMsg{X: 40, Y: 11})
	m.Update(tea.MouseReleaseMsg{X: 40, Y: 11})

	if state.Current().Month() != time.March {
		t.Fatalf("expected swipe left to page forward, got %v", state.Current())
	}
	if !strings.Contains(m.status, "Next") {
		t.Fatalf("expected status to report the page, got %q", m.status)
	}
}

func TestSwipeBelowThresholdIgnored(t *testing.T) {
	m, state := newTestModel(t)

	m.Update(tea.MouseClickMsg{X: 60, Y: 10})
	m.Update(tea.MouseMotionMsg{X: 57, Y: 10})
	m.Update(tea.MouseReleaseMsg{X: 57, Y: 10})

	if state.Current().Month() != time.February {
		t.Fatalf("expected a short drag to be ignored, got %v", state.Current())
	}
}

func TestDateActivatedJumpsToDayView(t *testing.T) {
	m, state := newTestModel(t)
	day := time.Date(2025, time.February, 20, 0, 0, 0, 0, time.Local)

	m.Update(events.DateActivatedMsg{Component: "month-view", Date: day})

	if state.View() != calendar.ViewDay {
		t.Fatalf("expected activation to open day view, got %v", state.View())
	}
	if sel, _ := state.Selected(); !calendar.SameDay(sel, day) {
		t.Fatalf("expected selection to follow activation, got %v", sel)
	}
}

func TestTodayKeyResets(t *testing.T) {
	m, state := newTestModel(t)
	state.SetCurrent(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.Local))

	m.Update(tea.KeyPressMsg{Text: "t", Code: 't'})
	if !calendar.SameDay(state.Current(), time.Date(2025, time.February, 18, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("expected t to return to today, got %v", state.Current())
	}
}

func TestViewRendersHeaderAndFooter(t *testing.T) {
	m, _ := newTestModel(t)
	view := stripANSI(m.View())

	if !strings.Contains(view, "February 2025") {
		t.Fatalf("expected month title in header:\n%s", view)
	}
	if !strings.Contains(view, "q quit") {
		t.Fatalf("expected help line in footer:\n%s", view)
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

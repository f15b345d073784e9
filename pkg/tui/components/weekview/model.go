// Package weekview renders seven day columns over a shared timeline with
// shift blocks positioned by start time.
package weekview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/shiftsync/pkg/calendar"
	"tableflip.dev/shiftsync/pkg/layout"
	"tableflip.dev/shiftsync/pkg/palette"
	"tableflip.dev/shiftsync/pkg/shift"
	"tableflip.dev/shiftsync/pkg/tui/events"
	"tableflip.dev/shiftsync/pkg/tui/theme"
)

// gutterWidth holds the hour labels on the left edge.
const gutterWidth = 6

// KeyMap holds the day cursor bindings.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Enter  key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Toggle: key.NewBinding(key.WithKeys("x", " ")),
		Enter:  key.NewBinding(key.WithKeys("enter")),
	}
}

// Model is the week timeline component.
type Model struct {
	id        events.ComponentID
	state     *calendar.State
	index     *shift.Index
	colors    *palette.Palette
	theme     theme.Theme
	keys      KeyMap
	weekStart time.Weekday
	timeline  layout.Timeline

	width  int
	height int
}

// New returns a week view clipped to the configured hour window.
func New(id events.ComponentID, state *calendar.State, index *shift.Index, colors *palette.Palette, weekStart time.Weekday, startHour, endHour int) *Model {
	return &Model{
		id:        id,
		state:     state,
		index:     index,
		colors:    colors,
		theme:     theme.Default(),
		keys:      DefaultKeyMap(),
		weekStart: weekStart,
		timeline:  layout.WeekTimeline(startHour, endHour),
	}
}

// SetSize records the space the component may draw into.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

// Update moves the day cursor and emits selection events.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Left):
		m.state.SetSelectedDate(m.state.DisplayDate().AddDate(0, 0, -1))
	case key.Matches(keyMsg, m.keys.Right):
		m.state.SetSelectedDate(m.state.DisplayDate().AddDate(0, 0, 1))
	case key.Matches(keyMsg, m.keys.Toggle):
		m.state.ToggleDateSelection(m.state.DisplayDate())
	case key.Matches(keyMsg, m.keys.Enter):
		focus := m.state.DisplayDate()
		if sel, ok := m.state.Selected(); ok && calendar.SameDay(sel, focus) {
			return m, emit(events.DateActivatedMsg{Component: m.id, Date: focus})
		}
		m.state.SetSelectedDate(focus)
		return m, emit(events.DateSelectedMsg{Component: m.id, Date: focus})
	}
	return m, nil
}

// View renders the day header row and the hour rows beneath it.
func (m *Model) View() string {
	days := calendar.WeekDays(m.state.Current(), m.weekStart)
	colWidth := m.columnWidth()

	columns := make([][]string, len(days))
	for i, day := range days {
		columns[i] = m.renderColumn(day, colWidth)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutterWidth))
	for _, day := range days {
		label := fmt.Sprintf("%s %d", day.Weekday().String()[:3], day.Day())
		style := m.theme.Month.Day
		if m.state.IsToday(day) {
			style = m.theme.Month.Today
		}
		if sel, ok := m.state.Selected(); ok && calendar.SameDay(sel, day) {
			style = m.theme.Month.Selected
		}
		b.WriteString(style.Render(pad(label, colWidth)))
	}
	b.WriteString("\n")

	for row := 0; row < m.timeline.Rows(); row++ {
		b.WriteString(m.hourLabel(row))
		for _, col := range columns {
			b.WriteString(col[row])
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) columnWidth() int {
	w := (m.width - gutterWidth) / 7
	if w < 8 {
		w = 8
	}
	return w
}

// hourLabel renders the gutter cell for a row, labelled on hour boundaries.
func (m *Model) hourLabel(row int) string {
	minutes := m.timeline.Start + row*m.timeline.MinutesPerRow
	if minutes%60 != 0 {
		return strings.Repeat(" ", gutterWidth)
	}
	return m.theme.Timeline.HourLabel.Render(pad(fmt.Sprintf("%02d:00", minutes/60), gutterWidth))
}

// renderColumn paints one day: a dotted grid background, then the laid-out
// shift blocks over it. Overlapping blocks indent by lane.
func (m *Model) renderColumn(day time.Time, colWidth int) []string {
	rows := make([]string, m.timeline.Rows())
	for i := range rows {
		rows[i] = m.theme.Timeline.GridLine.Render(pad("·", colWidth))
	}

	for _, block := range m.timeline.Layout(m.index.OnDay(day)) {
		style := theme.StaffBlock(m.colors.Color(block.Shift.StaffID))
		indent := block.Lane * 2
		if indent > colWidth-4 {
			indent = colWidth - 4
		}
		for i := 0; i < block.Height; i++ {
			row := block.Top + i
			if row < 0 || row >= len(rows) {
				continue
			}
			var text string
			switch i {
			case 0:
				text = block.Shift.StaffName
			case 1:
				text = block.Shift.Start
			}
			body := truncate.StringWithTail(text, uint(colWidth-indent), "…")
			rows[row] = strings.Repeat(" ", indent) + style.Render(pad(body, colWidth-indent))
		}
	}
	return rows
}

func pad(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

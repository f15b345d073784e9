// Package monthview renders the month grid with per-day shift indicators.
package monthview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/shiftsync/pkg/calendar"
	"tableflip.dev/shiftsync/pkg/palette"
	"tableflip.dev/shiftsync/pkg/shift"
	"tableflip.dev/shiftsync/pkg/tui/events"
	"tableflip.dev/shiftsync/pkg/tui/theme"
)

// maxIndicators is how many shift start times a cell shows before
// collapsing into a "+N" overflow marker.
const maxIndicators = 3

// KeyMap holds the cursor and selection bindings for the grid.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Enter  key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Toggle: key.NewBinding(key.WithKeys("x", " ")),
		Enter:  key.NewBinding(key.WithKeys("enter")),
	}
}

// Model is the month grid component.
type Model struct {
	id        events.ComponentID
	state     *calendar.State
	index     *shift.Index
	colors    *palette.Palette
	theme     theme.Theme
	keys      KeyMap
	weekStart time.Weekday

	width  int
	height int
}

// New returns a month view over the shared navigation state.
func New(id events.ComponentID, state *calendar.State, index *shift.Index, colors *palette.Palette, weekStart time.Weekday) *Model {
	return &Model{
		id:        id,
		state:     state,
		index:     index,
		colors:    colors,
		theme:     theme.Default(),
		keys:      DefaultKeyMap(),
		weekStart: weekStart,
	}
}

// SetSize records the space the component may draw into.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

// Update moves the cursor and emits selection events.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(keyMsg, m.keys.Toggle):
		m.state.ToggleDateSelection(m.state.DisplayDate())
	case key.Matches(keyMsg, m.keys.Enter):
		return m, m.activate()
	}
	return m, nil
}

// moveCursor shifts the focused date. Crossing a month boundary drags the
// anchor month along so the cursor stays visible.
func (m *Model) moveCursor(days int) {
	cur := m.state.DisplayDate()
	next := cur.AddDate(0, 0, days)
	m.state.SetSelectedDate(next)
	if next.Month() != m.state.Current().Month() || next.Year() != m.state.Current().Year() {
		m.state.SetCurrent(next)
	}
}

// activate emits a selection, or the jump-to-day message when the focused
// date is activated a second time.
func (m *Model) activate() tea.Cmd {
	focus := m.state.DisplayDate()
	if sel, ok := m.state.Selected(); ok && calendar.SameDay(sel, focus) {
		return emit(events.DateActivatedMsg{Component: m.id, Date: focus})
	}
	m.state.SetSelectedDate(focus)
	return emit(events.DateSelectedMsg{Component: m.id, Date: focus})
}

// View renders the weekday header and the padded month grid.
func (m *Model) View() string {
	grid := calendar.MonthGrid(m.state.Current(), m.weekStart)
	cellWidth := m.cellWidth()

	var b strings.Builder
	b.WriteString(m.renderWeekdayHeader(cellWidth))
	b.WriteString("\n")

	for _, week := range grid {
		rows := make([][]string, len(week))
		for i, cell := range week {
			rows[i] = m.renderCell(cell, cellWidth)
		}
		// Cells are multi-line; stitch them side by side.
		for line := 0; line < maxIndicators+2; line++ {
			for _, cell := range rows {
				b.WriteString(cell[line])
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) cellWidth() int {
	w := m.width / 7
	if w < 6 {
		w = 6
	}
	if w > 14 {
		w = 14
	}
	return w
}

func (m *Model) renderWeekdayHeader(cellWidth int) string {
	var b strings.Builder
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(m.weekStart) + i) % 7)
		label := day.String()[:3]
		style := m.theme.Month.Weekday
		switch day {
		case time.Sunday:
			style = m.theme.Month.Sunday
		case time.Saturday:
			style = m.theme.Month.Saturday
		}
		b.WriteString(style.Render(pad(label, cellWidth)))
	}
	return b.String()
}

// renderCell produces the fixed-height lines for one day: the day number
// then up to maxIndicators shift start times.
func (m *Model) renderCell(cell calendar.Cell, cellWidth int) []string {
	lines := make([]string, 0, maxIndicators+2)

	num := fmt.Sprintf("%2d", cell.Date.Day())
	style := m.theme.Month.Day
	switch {
	case !cell.InMonth:
		style = m.theme.Month.OutOfMonth
	case cell.Date.Weekday() == time.Sunday:
		style = m.theme.Month.Sunday
	case cell.Date.Weekday() == time.Saturday:
		style = m.theme.Month.Saturday
	}
	if m.state.IsToday(cell.Date) {
		style = m.theme.Month.Today
	}
	if sel, ok := m.state.Selected(); ok && calendar.SameDay(sel, cell.Date) {
		style = m.theme.Month.Selected
	} else if m.state.IsSelected(cell.Date) {
		style = m.theme.Month.Marked
	}
	lines = append(lines, style.Render(pad(num, cellWidth)))

	shifts := m.index.OnDay(cell.Date)
	shown := len(shifts)
	if shown > maxIndicators {
		shown = maxIndicators
	}
	for _, s := range shifts[:shown] {
		ind := theme.Staff(m.colors.Color(s.StaffID)).Render(pad("·"+s.Start, cellWidth))
		lines = append(lines, ind)
	}
	if rest := len(shifts) - shown; rest > 0 {
		lines[len(lines)-1] = m.theme.Month.Overflow.Render(pad(fmt.Sprintf("+%d", rest+1), cellWidth))
	}

	for len(lines) < maxIndicators+2 {
		lines = append(lines, pad("", cellWidth))
	}
	return lines
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

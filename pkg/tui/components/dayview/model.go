// Package dayview renders a single day's timeline with an hour cursor, a
// now indicator, and tab cycling through the day's shifts.
package dayview

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

const gutterWidth = 8

// KeyMap holds the hour cursor and shift cycling bindings.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Cycle key.Binding
	Enter key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k")),
		Down:  key.NewBinding(key.WithKeys("down", "j")),
		Cycle: key.NewBinding(key.WithKeys("tab")),
		Enter: key.NewBinding(key.WithKeys("enter")),
	}
}

// Model is the day timeline component.
type Model struct {
	id       events.ComponentID
	state    *calendar.State
	index    *shift.Index
	colors   *palette.Palette
	theme    theme.Theme
	keys     KeyMap
	timeline layout.Timeline

	scroll     int
	hourCursor int
	shiftIdx   int

	width  int
	height int
}

// New returns a day view over the full 24-hour timeline at half-hour rows.
func New(id events.ComponentID, state *calendar.State, index *shift.Index, colors *palette.Palette) *Model {
	return &Model{
		id:     id,
		state:  state,
		index:  index,
		colors: colors,
		theme:  theme.Default(),
		keys:   DefaultKeyMap(),
		timeline: layout.Timeline{
			Start:         0,
			End:           24 * 60,
			MinutesPerRow: 30,
			MinRows:       2,
		},
		hourCursor: 9,
		shiftIdx:   -1,
	}
}

// SetSize records the space the component may draw into.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

// ScrollToNow centers the view on the current hour when the displayed day
// is today, otherwise on the morning.
func (m *Model) ScrollToNow() {
	hour := 8
	if m.state.IsToday(m.state.DisplayDate()) {
		hour = m.state.Now().Hour()
	}
	m.hourCursor = hour
	m.scroll = clamp(hour*2-m.visibleRows()/2, 0, m.maxScroll())
	m.shiftIdx = -1
}

// Update moves the hour cursor, cycles shifts, and emits selections.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.keys.Cycle):
		m.cycleShift()
	case key.Matches(keyMsg, m.keys.Enter):
		return m, m.activate()
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.hourCursor = clamp(m.hourCursor+delta, 0, 23)
	m.shiftIdx = -1
	// Keep the cursor row in the visible window.
	row := m.hourCursor * 2
	if row < m.scroll {
		m.scroll = row
	}
	if row >= m.scroll+m.visibleRows() {
		m.scroll = row - m.visibleRows() + 1
	}
	m.scroll = clamp(m.scroll, 0, m.maxScroll())
}

func (m *Model) cycleShift() {
	shifts := m.index.OnDay(m.state.DisplayDate())
	if len(shifts) == 0 {
		m.shiftIdx = -1
		return
	}
	m.shiftIdx = (m.shiftIdx + 1) % len(shifts)
}

func (m *Model) activate() tea.Cmd {
	shifts := m.index.OnDay(m.state.DisplayDate())
	if m.shiftIdx >= 0 && m.shiftIdx < len(shifts) {
		return emit(events.ShiftSelectedMsg{Component: m.id, Shift: shifts[m.shiftIdx]})
	}
	return emit(events.TimeSelectedMsg{
		Component: m.id,
		Date:      m.state.DisplayDate(),
		Hour:      m.hourCursor,
	})
}

// View renders the date banner, the visible timeline slice, and a summary
// line.
func (m *Model) View() string {
	day := m.state.DisplayDate()
	shifts := m.index.OnDay(day)

	banner := day.Format("Mon, Jan 2 2006")
	if m.state.IsToday(day) {
		banner += " (today)"
	}

	rows := m.renderTimeline(day, shifts)
	top := clamp(m.scroll, 0, m.maxScroll())
	bottom := top + m.visibleRows()
	if bottom > len(rows) {
		bottom = len(rows)
	}

	var b strings.Builder
	b.WriteString(m.theme.Header.Title.Render(banner))
	b.WriteString("\n")
	for _, row := range rows[top:bottom] {
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Footer.Status.Render(fmt.Sprintf("%d shifts", len(shifts))))
	return b.String()
}

// renderTimeline paints all 48 half-hour rows with shift blocks and, when
// the day is today, the red now line.
func (m *Model) renderTimeline(day time.Time, shifts []shift.Shift) []string {
	bodyWidth := maxInt(m.width-gutterWidth, 20)
	rows := make([]string, m.timeline.Rows())
	for i := range rows {
		minutes := i * m.timeline.MinutesPerRow
		label := strings.Repeat(" ", gutterWidth)
		if minutes%60 == 0 {
			text := pad(fmt.Sprintf("%02d:00", minutes/60), gutterWidth)
			if minutes/60 == m.hourCursor {
				label = m.theme.Month.Selected.Render(text)
			} else {
				label = m.theme.Timeline.HourLabel.Render(text)
			}
		}
		rows[i] = label + m.theme.Timeline.GridLine.Render(pad("·", bodyWidth))
	}

	highlight := -1
	if m.shiftIdx >= 0 && m.shiftIdx < len(shifts) {
		highlight = m.shiftIdx
	}
	for n, block := range m.timeline.Layout(shifts) {
		style := theme.StaffBlock(m.colors.Color(block.Shift.StaffID))
		if n == highlight {
			style = style.Reverse(true)
		}
		indent := block.Lane * 4
		if indent > bodyWidth-8 {
			indent = bodyWidth - 8
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
				if block.Shift.Status != shift.StatusConfirmed {
					text += " [" + string(block.Shift.Status) + "]"
				}
			case 1:
				text = block.Shift.Start + " - " + block.Shift.End
			case 2:
				text = block.Shift.Store
			}
			body := truncate.StringWithTail(text, uint(bodyWidth-indent), "…")
			rows[row] = m.rowGutter(row) + strings.Repeat(" ", indent) +
				style.Render(pad(body, bodyWidth-indent))
		}
	}

	if m.state.IsToday(day) {
		now := m.state.Now()
		row := (now.Hour()*60 + now.Minute()) / m.timeline.MinutesPerRow
		if row >= 0 && row < len(rows) {
			line := fmt.Sprintf("%s now ", now.Format("15:04"))
			marker := line + strings.Repeat("─", maxInt(bodyWidth-len(line), 0))
			rows[row] = strings.Repeat(" ", gutterWidth) + m.theme.Timeline.NowLine.Render(marker)
		}
	}
	return rows
}

// rowGutter re-renders the hour label cell for rows a block overwrites.
func (m *Model) rowGutter(row int) string {
	minutes := row * m.timeline.MinutesPerRow
	if minutes%60 != 0 {
		return strings.Repeat(" ", gutterWidth)
	}
	text := pad(fmt.Sprintf("%02d:00", minutes/60), gutterWidth)
	if minutes/60 == m.hourCursor {
		return m.theme.Month.Selected.Render(text)
	}
	return m.theme.Timeline.HourLabel.Render(text)
}

func (m *Model) visibleRows() int {
	rows := m.height - 2
	if rows < 6 {
		rows = 6
	}
	return rows
}

func (m *Model) maxScroll() int {
	max := m.timeline.Rows() - m.visibleRows()
	if max < 0 {
		return 0
	}
	return max
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
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

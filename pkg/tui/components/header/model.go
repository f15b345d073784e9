// Package header renders the title bar: the current period, the view
// switcher tabs, and the multi-select hint.
package header

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/shiftsync/pkg/calendar"
	"tableflip.dev/shiftsync/pkg/tui/theme"
)

// Model is the read-only title bar; it never handles input.
type Model struct {
	state     *calendar.State
	theme     theme.Theme
	weekStart time.Weekday
	width     int
}

// New returns a header over the shared navigation state.
func New(state *calendar.State, weekStart time.Weekday) *Model {
	return &Model{state: state, theme: theme.Default(), weekStart: weekStart}
}

// SetWidth records the rule width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// View renders the title line and a horizontal rule.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Title.Render(m.title()))
	b.WriteString("  ")
	b.WriteString(m.tabs())
	if marked := len(m.state.SelectedDates()); marked > 1 {
		b.WriteString("  ")
		b.WriteString(m.theme.Header.Hint.Render(fmt.Sprintf("%d dates marked", marked)))
	}
	b.WriteString("\n")
	width := m.width
	if width < 20 {
		width = 20
	}
	b.WriteString(strings.Repeat("─", width))
	return b.String()
}

func (m *Model) title() string {
	switch m.state.View() {
	case calendar.ViewWeek:
		days := calendar.WeekDays(m.state.Current(), m.weekStart)
		first, last := days[0], days[len(days)-1]
		return fmt.Sprintf("%s – %s", first.Format("Jan 2"), last.Format("Jan 2, 2006"))
	case calendar.ViewDay:
		return m.state.DisplayDate().Format("Monday, January 2 2006")
	default:
		return m.state.Current().Format("January 2006")
	}
}

func (m *Model) tabs() string {
	var b strings.Builder
	for _, v := range []calendar.View{calendar.ViewMonth, calendar.ViewWeek, calendar.ViewDay} {
		style := m.theme.Header.ViewInactive
		if v == m.state.View() {
			style = m.theme.Header.ViewActive
		}
		b.WriteString(style.Render(v.String()))
	}
	return b.String()
}

// Package app composes the calendar header, the three view components and
// the gesture router into the interactive UI.
package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/shiftsync/pkg/calendar"
	"tableflip.dev/shiftsync/pkg/config"
	"tableflip.dev/shiftsync/pkg/palette"
	"tableflip.dev/shiftsync/pkg/shift"
	"tableflip.dev/shiftsync/pkg/swipe"
	"tableflip.dev/shiftsync/pkg/tui/components/dayview"
	"tableflip.dev/shiftsync/pkg/tui/components/header"
	"tableflip.dev/shiftsync/pkg/tui/components/monthview"
	"tableflip.dev/shiftsync/pkg/tui/components/weekview"
	"tableflip.dev/shiftsync/pkg/tui/events"
	"tableflip.dev/shiftsync/pkg/tui/theme"
)

type tickMsg time.Time

// KeyMap defines the global bindings; view components own their cursor
// keys.
type KeyMap struct {
	Quit     key.Binding
	Month    key.Binding
	Week     key.Binding
	Day      key.Binding
	Today    key.Binding
	Previous key.Binding
	Next     key.Binding
	Clear    key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Month:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "month")),
		Week:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "week")),
		Day:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "day")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Previous: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "previous")),
		Next:     key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear marks")),
	}
}

// Model is the root UI model.
type Model struct {
	state  *calendar.State
	index  *shift.Index
	colors *palette.Palette
	theme  theme.Theme
	keys   KeyMap

	header *header.Model
	month  *monthview.Model
	week   *weekview.Model
	day    *dayview.Model

	tracker *swipe.Tracker

	status string
	width  int
	height int
}

// New wires the components over shared navigation state and shift index.
func New(cfg *config.Config, state *calendar.State, index *shift.Index, colors *palette.Palette) *Model {
	weekStart := cfg.Weekday()
	return &Model{
		state:   state,
		index:   index,
		colors:  colors,
		theme:   theme.Default(),
		keys:    DefaultKeyMap(),
		header:  header.New(state, weekStart),
		month:   monthview.New("month-view", state, index, colors, weekStart),
		week:    weekview.New("week-view", state, index, colors, weekStart, cfg.WeekViewStartHour, cfg.WeekViewEndHour),
		day:     dayview.New("day-view", state, index, colors),
		tracker: swipe.NewTracker(cfg.SwipeThreshold),
		status:  "Ready",
	}
}

// Run launches the Bubble Tea program.
func Run(cfg *config.Config, state *calendar.State, index *shift.Index, colors *palette.Palette) error {
	p := tea.NewProgram(New(cfg, state, index, colors),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update routes messages: global keys and gestures here, cursor keys to
// the active view.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = v.Width, v.Height
		m.layout()
		return m, nil

	case tickMsg:
		// The now line re-reads the clock on render; the tick only
		// forces that render.
		return m, tickCmd()

	case tea.KeyPressMsg:
		if cmd, handled := m.handleGlobalKey(v); handled {
			return m, cmd
		}
		return m, m.updateActive(msg)

	case tea.MouseClickMsg:
		mouse := v.Mouse()
		m.tracker.Start(mouse.X, mouse.Y)
		return m, nil
	case tea.MouseMotionMsg:
		mouse := v.Mouse()
		m.tracker.Move(mouse.X, mouse.Y)
		return m, nil
	case tea.MouseReleaseMsg:
		return m, m.finishGesture()

	case events.DateSelectedMsg:
		m.status = fmt.Sprintf("Selected %s", shift.DateKey(v.Date))
		return m, nil
	case events.DateActivatedMsg:
		// Jump-to-day shortcut: second activation of the focused date.
		m.state.SetSelectedDate(v.Date)
		m.state.SetCurrent(v.Date)
		m.state.SetView(calendar.ViewDay)
		m.day.ScrollToNow()
		m.status = fmt.Sprintf("Day view: %s", shift.DateKey(v.Date))
		return m, emit(events.ViewChangedMsg{Component: "app", View: calendar.ViewDay})
	case events.TimeSelectedMsg:
		m.status = fmt.Sprintf("Slot %s %02d:00", shift.DateKey(v.Date), v.Hour)
		return m, nil
	case events.ShiftSelectedMsg:
		m.status = fmt.Sprintf("Shift %s %s-%s (%s)", v.Shift.StaffName, v.Shift.Start, v.Shift.End, v.Shift.Status)
		return m, nil
	case events.ViewChangedMsg:
		return m, nil
	}

	return m, m.updateActive(msg)
}

func (m *Model) handleGlobalKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Month):
		m.state.SetView(calendar.ViewMonth)
		return emit(events.ViewChangedMsg{Component: "app", View: calendar.ViewMonth}), true
	case key.Matches(msg, m.keys.Week):
		m.state.SetView(calendar.ViewWeek)
		return emit(events.ViewChangedMsg{Component: "app", View: calendar.ViewWeek}), true
	case key.Matches(msg, m.keys.Day):
		m.state.SetView(calendar.ViewDay)
		m.day.ScrollToNow()
		return emit(events.ViewChangedMsg{Component: "app", View: calendar.ViewDay}), true
	case key.Matches(msg, m.keys.Today):
		m.state.GoToToday()
		m.status = "Today"
		return nil, true
	case key.Matches(msg, m.keys.Previous):
		m.state.GoToPrevious()
		return nil, true
	case key.Matches(msg, m.keys.Next):
		m.state.GoToNext()
		return nil, true
	case key.Matches(msg, m.keys.Clear):
		m.state.ClearSelected()
		m.status = "Selection cleared"
		return nil, true
	}
	return nil, false
}

// finishGesture classifies the drag. Swiping left pulls the next page into
// view; vertical drags are left to scrolling.
func (m *Model) finishGesture() tea.Cmd {
	switch m.tracker.End() {
	case swipe.Left:
		m.state.GoToNext()
		m.status = "Next " + m.state.View().String()
	case swipe.Right:
		m.state.GoToPrevious()
		m.status = "Previous " + m.state.View().String()
	}
	return nil
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.state.View() {
	case calendar.ViewWeek:
		_, cmd = m.week.Update(msg)
	case calendar.ViewDay:
		_, cmd = m.day.Update(msg)
	default:
		_, cmd = m.month.Update(msg)
	}
	return cmd
}

func (m *Model) layout() {
	body := m.height - 4 // header takes 2 rows, footer 2
	if body < 4 {
		body = 4
	}
	m.header.SetWidth(m.width)
	m.month.SetSize(m.width, body)
	m.week.SetSize(m.width, body)
	m.day.SetSize(m.width, body)
}

// View renders header, active view and the footer status/help line.
func (m *Model) View() string {
	var active string
	switch m.state.View() {
	case calendar.ViewWeek:
		active = m.week.View()
	case calendar.ViewDay:
		active = m.day.View()
	default:
		active = m.month.View()
	}

	help := m.theme.Footer.Help.Render(
		"m/w/d views · [/] page · t today · x mark · c clear · q quit")
	status := m.theme.Footer.Status.Render(m.status)

	return m.header.View() + "\n" + active + "\n" + status + "  " + help
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Package events defines the messages the calendar components emit toward
// the host application. The components never navigate, load data, or reach
// outside the shared calendar state themselves; the host decides what a
// selection means.
package events

import (
	"fmt"
	"time"

	"tableflip.dev/shiftsync/pkg/calendar"
	"tableflip.dev/shiftsync/pkg/shift"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// DateSelectedMsg is emitted when a date cell is activated.
type DateSelectedMsg struct {
	Component ComponentID
	Date      time.Time
}

// Describe renders the selection for logs.
func (m DateSelectedMsg) Describe() string {
	return fmt.Sprintf("date:%s", shift.DateKey(m.Date))
}

// DateActivatedMsg is emitted when an already-selected date is activated
// again; the host treats it as the jump-to-day shortcut.
type DateActivatedMsg struct {
	Component ComponentID
	Date      time.Time
}

// TimeSelectedMsg is emitted when an empty hour slot is activated in the
// day view.
type TimeSelectedMsg struct {
	Component ComponentID
	Date      time.Time
	Hour      int
}

// ShiftSelectedMsg is emitted when a shift block is activated.
type ShiftSelectedMsg struct {
	Component ComponentID
	Shift     shift.Shift
}

// Describe renders the shift selection for logs.
func (m ShiftSelectedMsg) Describe() string {
	return fmt.Sprintf("shift:%s", m.Shift.ID)
}

// ViewChangedMsg is emitted after the host switches view modes.
type ViewChangedMsg struct {
	Component ComponentID
	View      calendar.View
}

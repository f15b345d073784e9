// Package shift defines the scheduled-shift record and the in-memory index
// that the calendar views query.
package shift

import (
	"errors"
	"fmt"
)

// Status describes who has signed off on a shift.
type Status string

const (
	// StatusConfirmed is a manager-locked shift.
	StatusConfirmed Status = "confirmed"
	// StatusPending is a manager-proposed shift awaiting staff acknowledgement.
	StatusPending Status = "pending"
	// StatusRequested is a staff-submitted shift awaiting a manager decision.
	StatusRequested Status = "requested"
)

// ParseStatus maps a status token to a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusConfirmed, StatusPending, StatusRequested:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown shift status %q", s)
}

var (
	// ErrNotFound indicates an id with no matching shift.
	ErrNotFound = errors.New("shift not found")
	// ErrDuplicateID indicates an add with an id already present.
	ErrDuplicateID = errors.New("duplicate shift id")
	// ErrInvalidRange indicates an end time at or before the start time.
	ErrInvalidRange = errors.New("shift end must be after start")
)

// Shift is one scheduled work block for one staff member on one date.
// Start and End are same-day wall-clock times; overnight shifts are not
// representable.
type Shift struct {
	ID        string `json:"id" yaml:"id"`
	StaffID   string `json:"staffId" yaml:"staffId"`
	StaffName string `json:"staffName" yaml:"staffName"`
	Date      string `json:"date" yaml:"date"`           // YYYY-MM-DD
	Start     string `json:"startTime" yaml:"startTime"` // HH:mm
	End       string `json:"endTime" yaml:"endTime"`     // HH:mm
	Store     string `json:"store,omitempty" yaml:"store,omitempty"`
	Status    Status `json:"status" yaml:"status"`
}

// Validate checks the date, clock strings and time ordering. Malformed data
// is rejected here so layout math never sees it.
func (s Shift) Validate() error {
	if s.ID == "" {
		return errors.New("shift id is required")
	}
	if _, err := ParseDate(s.Date); err != nil {
		return err
	}
	start, err := ParseClock(s.Start)
	if err != nil {
		return err
	}
	end, err := ParseClock(s.End)
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("%w: %s-%s", ErrInvalidRange, s.Start, s.End)
	}
	if _, err := ParseStatus(string(s.Status)); err != nil {
		return err
	}
	return nil
}

// StartMinutes returns the start time in minutes since midnight. The shift
// must have been validated.
func (s Shift) StartMinutes() int {
	m, _ := ParseClock(s.Start)
	return m
}

// EndMinutes returns the end time in minutes since midnight.
func (s Shift) EndMinutes() int {
	m, _ := ParseClock(s.End)
	return m
}

// Minutes returns the scheduled duration in minutes.
func (s Shift) Minutes() int {
	return s.EndMinutes() - s.StartMinutes()
}

// Overlaps reports whether two shifts occupy intersecting time ranges. It
// does not consider the date.
func (s Shift) Overlaps(o Shift) bool {
	return s.StartMinutes() < o.EndMinutes() && o.StartMinutes() < s.EndMinutes()
}

func (s Shift) String() string {
	return fmt.Sprintf("%s %s-%s %s", s.Date, s.Start, s.End, s.StaffName)
}

// Less orders shifts by start time, then staff name, then id. Every caller
// that renders a day uses this order so output is deterministic.
func Less(a, b Shift) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	if a.StaffName != b.StaffName {
		return a.StaffName < b.StaffName
	}
	return a.ID < b.ID
}

// Package add creates a confirmed shift on the schedule.
package add

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"tableflip.dev/shiftsync/pkg/printers"
	"tableflip.dev/shiftsync/pkg/seed"
	"tableflip.dev/shiftsync/pkg/shift"
	"tableflip.dev/shiftsync/pkg/staff"
)

// Add places a new shift for a staff member. When Path is set the updated
// schedule is written back to the file.
type Add struct {
	StaffID string
	Date    string
	Start   string
	End     string
	Store   string
	Status  shift.Status

	Path   string
	Roster *staff.Roster
	Index  *shift.Index
}

// Do validates, inserts, and prints the resulting day.
func (a *Add) Do(ctx context.Context) error {
	if a.Index == nil || a.Roster == nil {
		return errors.New("can not add, no schedule loaded")
	}

	member, ok := a.Roster.Get(a.StaffID)
	if !ok {
		return fmt.Errorf("unknown staff id %q", a.StaffID)
	}

	status := a.Status
	if status == "" {
		status = shift.StatusConfirmed
	}

	s := shift.Shift{
		ID:        uuid.New().String(),
		StaffID:   member.ID,
		StaffName: member.Name,
		Date:      a.Date,
		Start:     a.Start,
		End:       a.End,
		Store:     a.Store,
		Status:    status,
	}
	if err := a.Index.Add(s); err != nil {
		return err
	}

	if a.Path != "" {
		if err := seed.Save(a.Path, a.Roster, a.Index); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	shifts := a.Index.OnDate(a.Date)
	pp.TitleWithCount(a.Date, len(shifts))
	pp.Shifts(shifts...)
	return nil
}

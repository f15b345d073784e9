// Package approve confirms or denies requested and pending shifts.
package approve

import (
	"context"
	"errors"

	"tableflip.dev/shiftsync/pkg/printers"
	"tableflip.dev/shiftsync/pkg/seed"
	"tableflip.dev/shiftsync/pkg/shift"
	"tableflip.dev/shiftsync/pkg/staff"
)

// Approve resolves a shift request. Approving sets the shift confirmed;
// with Deny set the shift is removed instead.
type Approve struct {
	ID   string
	Deny bool

	Path   string
	Roster *staff.Roster
	Index  *shift.Index
}

// Do applies the decision and prints the affected day.
func (a *Approve) Do(ctx context.Context) error {
	if a.Index == nil {
		return errors.New("can not approve, no schedule loaded")
	}

	s, err := a.Index.Get(a.ID)
	if err != nil {
		return err
	}

	if a.Deny {
		a.Index.Remove(a.ID)
	} else {
		status := shift.StatusConfirmed
		if err := a.Index.Update(a.ID, shift.Patch{Status: &status}); err != nil {
			return err
		}
	}

	if a.Path != "" {
		if err := seed.Save(a.Path, a.Roster, a.Index); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	shifts := a.Index.OnDate(s.Date)
	pp.TitleWithCount(s.Date, len(shifts))
	pp.Shifts(shifts...)
	return nil
}

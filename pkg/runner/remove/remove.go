// Package remove deletes a shift from the schedule.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/shiftsync/pkg/printers"
	"tableflip.dev/shiftsync/pkg/seed"
	"tableflip.dev/shiftsync/pkg/shift"
	"tableflip.dev/shiftsync/pkg/staff"
)

// Remove deletes the shift with the given id.
type Remove struct {
	ID string

	Path   string
	Roster *staff.Roster
	Index  *shift.Index
}

// Do deletes the shift and prints the day it was removed from.
func (r *Remove) Do(ctx context.Context) error {
	if r.Index == nil {
		return errors.New("can not remove, no schedule loaded")
	}

	s, err := r.Index.Get(r.ID)
	if err != nil {
		return err
	}
	r.Index.Remove(r.ID)

	if r.Path != "" {
		if err := seed.Save(r.Path, r.Roster, r.Index); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	shifts := r.Index.OnDate(s.Date)
	pp.TitleWithCount(s.Date, len(shifts))
	pp.Shifts(shifts...)
	return nil
}

// Package request files shift requests over one or more dates.
package request

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

// Request creates requested shifts for a staff member on each date. The
// multi-select flow in the UI and the repeated --on flag both land here.
type Request struct {
	StaffID string
	Dates   []string
	Start   string
	End     string
	Store   string

	Path   string
	Roster *staff.Roster
	Index  *shift.Index
}

// Do validates and inserts one requested shift per date.
func (r *Request) Do(ctx context.Context) error {
	if r.Index == nil || r.Roster == nil {
		return errors.New("can not request, no schedule loaded")
	}
	if len(r.Dates) == 0 {
		return errors.New("no dates given")
	}

	member, ok := r.Roster.Get(r.StaffID)
	if !ok {
		return fmt.Errorf("unknown staff id %q", r.StaffID)
	}

	added := make([]shift.Shift, 0, len(r.Dates))
	for _, date := range r.Dates {
		s := shift.Shift{
			ID:        uuid.New().String(),
			StaffID:   member.ID,
			StaffName: member.Name,
			Date:      date,
			Start:     r.Start,
			End:       r.End,
			Store:     r.Store,
			Status:    shift.StatusRequested,
		}
		if err := r.Index.Add(s); err != nil {
			// Roll back so a bad date leaves the schedule untouched.
			for _, a := range added {
				r.Index.Remove(a.ID)
			}
			return fmt.Errorf("request for %s: %w", date, err)
		}
		added = append(added, s)
	}

	if r.Path != "" {
		if err := seed.Save(r.Path, r.Roster, r.Index); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.TitleWithCount(fmt.Sprintf("Requested for %s", member.Name), len(added))
	pp.Shifts(added...)
	return nil
}

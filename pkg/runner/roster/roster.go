// Package roster prints the staff roster.
package roster

import (
	"context"
	"errors"

	"tableflip.dev/shiftsync/pkg/printers"
	"tableflip.dev/shiftsync/pkg/staff"
)

// Roster lists the staff members.
type Roster struct {
	Roster *staff.Roster
}

// Do renders the roster table to stdout.
func (r *Roster) Do(ctx context.Context) error {
	if r.Roster == nil {
		return errors.New("can not list staff, no roster loaded")
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Staff")
	pp.Roster(r.Roster.Members()...)
	return nil
}

// Package ui opens the interactive calendar.
package ui

import (
	"context"
	"errors"
	"os"
	"time"

	isatty "github.com/mattn/go-isatty"

	"tableflip.dev/shiftsync/pkg/calendar"
	"tableflip.dev/shiftsync/pkg/config"
	"tableflip.dev/shiftsync/pkg/palette"
	"tableflip.dev/shiftsync/pkg/shift"
	"tableflip.dev/shiftsync/pkg/staff"
	"tableflip.dev/shiftsync/pkg/tui/app"
)

// UI launches the full-screen calendar over the loaded schedule.
type UI struct {
	Config *config.Config
	Roster *staff.Roster
	Index  *shift.Index
}

// Do runs the program until the user quits.
func (u *UI) Do(ctx context.Context) error {
	if u.Index == nil || u.Roster == nil {
		return errors.New("can not open ui, no schedule loaded")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("ui needs a terminal; use the schedule command instead")
	}

	state := calendar.NewState(time.Now)
	colors := palette.New(u.Roster.IDs())
	return app.Run(u.Config, state, u.Index, colors)
}

package commands

import (
	"time"

	"tableflip.dev/shiftsync/pkg/config"
	"tableflip.dev/shiftsync/pkg/seed"
	"tableflip.dev/shiftsync/pkg/shift"
	"tableflip.dev/shiftsync/pkg/staff"
)

// loaded bundles everything a command needs to run.
type loaded struct {
	cfg    *config.Config
	roster *staff.Roster
	index  *shift.Index
	// path is empty when the demo schedule is in use; mutating commands
	// only write back when it is set.
	path string
}

// load resolves the schedule source: the --schedule flag wins, then the
// config file's schedulePath, then the bundled demo data.
func load() (*loaded, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	path := so.Path
	if path == "" {
		path = cfg.SchedulePath
	}

	var f *seed.File
	if path != "" {
		if f, err = seed.LoadFile(path); err != nil {
			return nil, err
		}
	} else {
		f = seed.Demo(time.Now())
	}

	roster, index, err := seed.Build(f)
	if err != nil {
		return nil, err
	}
	return &loaded{cfg: cfg, roster: roster, index: index, path: path}, nil
}

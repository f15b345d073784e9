// Package seed provides the built-in demo schedule and YAML schedule file
// loading. Everything stays in memory; the application has no persistence.
package seed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"tableflip.dev/shiftsync/pkg/calendar"
	"tableflip.dev/shiftsync/pkg/shift"
	"tableflip.dev/shiftsync/pkg/staff"
)

// File is the on-disk schedule format.
type File struct {
	Staff  []staff.Member `yaml:"staff"`
	Shifts []shift.Shift  `yaml:"shifts"`
}

// LoadFile reads a YAML schedule.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing schedule %s: %w", path, err)
	}
	return &f, nil
}

// Save writes the roster and index back to a YAML schedule.
func Save(path string, roster *staff.Roster, idx *shift.Index) error {
	f := File{Staff: roster.Members(), Shifts: idx.All()}
	raw, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing schedule %s: %w", path, err)
	}
	return nil
}

// Demo returns the bundled demo roster and a week of shifts laid out around
// the given day, so the calendar opens onto populated dates.
func Demo(now time.Time) *File {
	members := []staff.Member{
		{ID: "s-001", Name: "Tanaka Yuki", Role: staff.RoleManager, HourlyWage: 1400, Stores: []string{"Shibuya"}},
		{ID: "s-002", Name: "Sato Mika", Role: staff.RoleStaff, HourlyWage: 1150, Stores: []string{"Shibuya"}},
		{ID: "s-003", Name: "Suzuki Ren", Role: staff.RoleStaff, HourlyWage: 1100, Stores: []string{"Shibuya", "Ebisu"}},
		{ID: "s-004", Name: "Kobayashi Aoi", Role: staff.RoleStaff, HourlyWage: 1100, Stores: []string{"Ebisu"}},
		{ID: "s-005", Name: "Watanabe Hana", Role: staff.RoleStaff, HourlyWage: 1200, Stores: []string{"Shibuya"}},
	}

	week := calendar.StartOfWeek(now, time.Sunday)
	day := func(offset int) string {
		return shift.DateKey(week.AddDate(0, 0, offset))
	}

	mk := func(id string, staffIdx int, date, start, end, store string, status shift.Status) shift.Shift {
		m := members[staffIdx]
		return shift.Shift{
			ID: id, StaffID: m.ID, StaffName: m.Name,
			Date: date, Start: start, End: end,
			Store: store, Status: status,
		}
	}

	shifts := []shift.Shift{
		mk("d-001", 0, day(1), "09:00", "17:00", "Shibuya", shift.StatusConfirmed),
		mk("d-002", 1, day(1), "12:00", "16:00", "Shibuya", shift.StatusConfirmed),
		mk("d-003", 2, day(2), "09:00", "14:00", "Shibuya", shift.StatusConfirmed),
		mk("d-004", 3, day(2), "12:00", "16:00", "Ebisu", shift.StatusPending),
		mk("d-005", 4, day(2), "16:00", "21:00", "Shibuya", shift.StatusConfirmed),
		mk("d-006", 0, day(3), "09:00", "17:00", "Shibuya", shift.StatusConfirmed),
		mk("d-007", 2, day(3), "17:00", "21:00", "Ebisu", shift.StatusConfirmed),
		mk("d-008", 1, day(4), "09:00", "13:00", "Shibuya", shift.StatusPending),
		mk("d-009", 4, day(4), "10:00", "18:00", "Shibuya", shift.StatusConfirmed),
		mk("d-010", 3, day(5), "09:00", "15:00", "Ebisu", shift.StatusConfirmed),
		mk("d-011", 2, day(5), "15:00", "21:00", "Shibuya", shift.StatusConfirmed),
		mk("d-012", 1, day(6), "10:00", "16:00", "Shibuya", shift.StatusRequested),
		mk("d-013", 4, day(6), "11:00", "19:00", "Shibuya", shift.StatusConfirmed),
	}

	return &File{Staff: members, Shifts: shifts}
}

// Build turns a loaded file into the roster and index the commands use.
func Build(f *File) (*staff.Roster, *shift.Index, error) {
	roster, err := staff.NewRoster(f.Staff)
	if err != nil {
		return nil, nil, err
	}
	idx := shift.NewIndex()
	if err := idx.SetAll(f.Shifts); err != nil {
		return nil, nil, err
	}
	return roster, idx, nil
}

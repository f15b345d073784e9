package calendar

import "time"

// Cell is a single day slot in a month grid.
type Cell struct {
	Date    time.Time
	InMonth bool
}

// SameDay reports calendar-day equality.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StartOfMonth returns midnight on the first of the anchor's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in the anchor's month.
func DaysIn(t time.Time) int {
	return StartOfMonth(t).AddDate(0, 1, -1).Day()
}

// StartOfWeek returns midnight on the week day the calendar starts on, at
// or before the anchor.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := midnight(t)
	diff := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

// AddMonths steps by whole calendar months, clamping the day-of-month to
// the target month's length (Jan 31 + 1 month is Feb 28, not Mar 3).
func AddMonths(t time.Time, months int) time.Time {
	first := StartOfMonth(t).AddDate(0, months, 0)
	day := t.Day()
	if max := DaysIn(first); day > max {
		day = max
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

// MonthGrid lays out the anchor's month as whole weeks, 7 columns by N
// rows, padded with leading and trailing days from the adjacent months.
func MonthGrid(anchor time.Time, weekStart time.Weekday) [][]Cell {
	monthStart := StartOfMonth(anchor)
	gridStart := StartOfWeek(monthStart, weekStart)

	days := DaysIn(anchor)
	lead := (int(monthStart.Weekday()) - int(weekStart) + 7) % 7
	rows := (lead + days + 6) / 7

	grid := make([][]Cell, 0, rows)
	d := gridStart
	for r := 0; r < rows; r++ {
		row := make([]Cell, 0, 7)
		for c := 0; c < 7; c++ {
			row = append(row, Cell{Date: d, InMonth: d.Month() == anchor.Month()})
			d = d.AddDate(0, 0, 1)
		}
		grid = append(grid, row)
	}
	return grid
}

// WeekDays returns the seven days of the anchor's week.
func WeekDays(anchor time.Time, weekStart time.Weekday) []time.Time {
	start := StartOfWeek(anchor, weekStart)
	out := make([]time.Time, 7)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

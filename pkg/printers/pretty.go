// Package printers renders schedules, rosters and summaries to the
// terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/shiftsync/pkg/shift"
	"tableflip.dev/shiftsync/pkg/staff"
)

// PrettyPrint renders colored, human-facing output. With ShowID set each
// shift line carries its identifier for use with the editing commands.
type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("6f81f3a1-9c2d  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" shift")
	default:
		_, _ = c.Println(" shifts")
	}
}

// Shifts prints one line per shift in day order.
func (pp *PrettyPrint) Shifts(shifts ...shift.Shift) {
	if len(shifts) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, s := range shifts {
		if pp.ShowID {
			id := s.ID
			if len(id) > len(spacing)-2 {
				id = id[:len(spacing)-2]
			}
			_, _ = y.Print(id)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
		}
		_, _ = t.Printf("%s %s-%s  %s%s%s\n",
			statusMark(s.Status), s.Start, s.End, s.StaffName, storeTag(s.Store), statusTag(s.Status))
	}
	_, _ = t.Println("")
}

// Roster prints the staff table.
func (pp *PrettyPrint) Roster(members ...staff.Member) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Role"), bold.Sprint("Wage"), bold.Sprint("Stores"))
	for _, m := range members {
		tbl.AddRow(m.ID, m.Name, string(m.Role), fmt.Sprintf("¥%d/h", m.HourlyWage), strings.Join(m.Stores, ", "))
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// WeekSummary prints the per-day hour and cost table for a week.
func (pp *PrettyPrint) WeekSummary(sum shift.WeekSummary) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Shifts"), bold.Sprint("Hours"), bold.Sprint("Cost"))
	total := 0
	for _, day := range sum.Days {
		total += day.Count
		tbl.AddRow(day.Date, fmt.Sprintf("%d", day.Count), fmt.Sprintf("%.1f", day.Hours()), fmt.Sprintf("¥%.0f", day.Cost))
	}
	tbl.AddRow(bold.Sprint("total"), bold.Sprintf("%d", total), bold.Sprintf("%.1f", sum.Hours()), bold.Sprintf("¥%.0f", sum.Cost))
	tbl.RightAlign(1)
	tbl.RightAlign(2)
	tbl.RightAlign(3)

	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = faint.Println("pending and requested shifts are included")
	fmt.Println("")
}

func statusMark(s shift.Status) string {
	switch s {
	case shift.StatusPending:
		return color.New(color.FgYellow).Sprint("◦")
	case shift.StatusRequested:
		return color.New(color.FgCyan).Sprint("?")
	default:
		return color.New(color.FgGreen).Sprint("•")
	}
}

func statusTag(s shift.Status) string {
	if s == shift.StatusConfirmed {
		return ""
	}
	return color.New(color.Faint).Sprintf(" (%s)", s)
}

func storeTag(store string) string {
	if store == "" {
		return ""
	}
	return color.New(color.Faint).Sprintf(" @%s", store)
}

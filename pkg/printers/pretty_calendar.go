package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/shiftsync/pkg/calendar"
	"tableflip.dev/shiftsync/pkg/shift"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a compact month with staffed days highlighted.
func (pp *PrettyPrint) Month(on time.Time, idx *shift.Index) {
	then := calendar.StartOfMonth(on)
	days := calendar.DaysIn(then)

	count := make([]int, days)
	for i := 0; i < days; i++ {
		count[i] = len(idx.OnDay(then.AddDate(0, 0, i)))
	}

	pp.PrintMonthCount(then, count)
}

// MonthLong prints one line per day of the month with that day's shifts.
func (pp *PrettyPrint) MonthLong(on time.Time, idx *shift.Index) {
	p := color.New()
	b := color.New(color.Bold)
	s := color.New(color.Underline)
	bs := color.New(color.Underline, color.Bold)

	then := calendar.StartOfMonth(on)
	now := time.Now()

	for i := 0; i < calendar.DaysIn(then); i++ {
		day := then.AddDate(0, 0, i)

		printer := p
		if calendar.SameDay(day, now) {
			printer = b
		}
		if day.Weekday() == time.Sunday {
			printer = s
			if calendar.SameDay(day, now) {
				printer = bs
			}
		}
		_, _ = printer.Printf("%2d %s", day.Day(), day.Weekday().String()[0:1])

		shifts := idx.OnDay(day)
		if len(shifts) == 0 {
			_, _ = p.Printf("\n")
			continue
		}
		for n, sh := range shifts {
			if n > 0 {
				_, _ = p.Print("    ") // align under the day column.
			}
			_, _ = p.Printf("  %s %s-%s  %s%s\n",
				statusMark(sh.Status), sh.Start, sh.End, sh.StaffName, statusTag(sh.Status))
		}
	}
	fmt.Println("")
}

// PrintMonthCount renders the compact month grid; days with a nonzero
// count print bright.
func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := then.Weekday()

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := calendar.DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Printf("%2d ", i+1)
		} else {
			_, _ = l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

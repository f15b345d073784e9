package shift

import "time"

// DaySummary totals one day's scheduled work.
type DaySummary struct {
	Date    string
	Count   int
	Minutes int
	Cost    float64
}

// Hours returns the scheduled minutes as fractional hours.
func (d DaySummary) Hours() float64 {
	return float64(d.Minutes) / 60
}

// WeekSummary totals seven consecutive days.
type WeekSummary struct {
	Start   string
	End     string
	Days    []DaySummary
	Minutes int
	Cost    float64
}

// Hours returns the week's scheduled minutes as fractional hours.
func (w WeekSummary) Hours() float64 {
	return float64(w.Minutes) / 60
}

// SummarizeWeek totals hours and labor cost for the seven days starting at
// weekStart. The wage function maps a staff id to an hourly wage; unknown
// staff cost zero.
func SummarizeWeek(idx *Index, weekStart time.Time, wage func(staffID string) float64) WeekSummary {
	w := WeekSummary{
		Start: DateKey(weekStart),
		End:   DateKey(weekStart.AddDate(0, 0, 6)),
		Days:  make([]DaySummary, 0, 7),
	}
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		d := DaySummary{Date: DateKey(day)}
		for _, s := range idx.OnDate(d.Date) {
			d.Count++
			d.Minutes += s.Minutes()
			if wage != nil {
				d.Cost += float64(s.Minutes()) / 60 * wage(s.StaffID)
			}
		}
		w.Days = append(w.Days, d)
		w.Minutes += d.Minutes
		w.Cost += d.Cost
	}
	return w
}

// Package layout converts shift clock ranges into vertical positions on a
// timeline and assigns horizontal lanes so concurrent shifts render side by
// side.
package layout

import (
	"sort"

	"tableflip.dev/shiftsync/pkg/shift"
)

// Timeline describes the vertical scale shifts are positioned against.
// Start and End are minutes since midnight; MinutesPerRow is the scale (1
// gives one row per minute, 30 gives two rows per hour). MinRows is a
// display floor so very short shifts stay readable; it never changes the
// underlying duration.
type Timeline struct {
	Start         int
	End           int
	MinutesPerRow int
	MinRows       int
}

// DayTimeline is the full 24-hour window at one row per minute.
func DayTimeline() Timeline {
	return Timeline{Start: 0, End: 24 * 60, MinutesPerRow: 1, MinRows: 40}
}

// WeekTimeline is the reduced window used by the week view, at half-hour
// rows so a full working day fits one screen.
func WeekTimeline(startHour, endHour int) Timeline {
	return Timeline{Start: startHour * 60, End: endHour * 60, MinutesPerRow: 30, MinRows: 1}
}

// Rows returns the total row count of the timeline.
func (t Timeline) Rows() int {
	if t.MinutesPerRow <= 0 {
		return 0
	}
	return (t.End - t.Start) / t.MinutesPerRow
}

// Block is a positioned shift: Top rows from the timeline start, Height
// rows tall, in lane Lane counted from the left.
type Block struct {
	Shift  shift.Shift
	Top    int
	Height int
	Lane   int
}

// Position computes the vertical placement for a single clock range.
func (t Timeline) Position(startMin, endMin int) (top, height int) {
	scale := t.MinutesPerRow
	if scale <= 0 {
		scale = 1
	}
	top = (startMin - t.Start) / scale
	height = (endMin - startMin) / scale
	if height < t.MinRows {
		height = t.MinRows
	}
	return top, height
}

// Layout positions one day's shifts on the timeline. Shifts are processed
// in the deterministic day order (start time, staff name, id); within a run
// of transitively overlapping shifts each gets the next lane, so no two
// overlapping shifts share a lane. Lanes are not reclaimed inside a run,
// which trades packing for stable, predictable placement.
func (t Timeline) Layout(shifts []shift.Shift) []Block {
	ordered := make([]shift.Shift, len(shifts))
	copy(ordered, shifts)
	sort.Slice(ordered, func(a, b int) bool { return shift.Less(ordered[a], ordered[b]) })

	blocks := make([]Block, 0, len(ordered))
	clusterEnd := -1
	lane := 0
	for _, s := range ordered {
		start, end := s.StartMinutes(), s.EndMinutes()
		if start >= clusterEnd {
			lane = 0
			clusterEnd = end
		} else {
			lane++
			if end > clusterEnd {
				clusterEnd = end
			}
		}
		top, height := t.Position(start, end)
		blocks = append(blocks, Block{Shift: s, Top: top, Height: height, Lane: lane})
	}
	return blocks
}

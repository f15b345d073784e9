package layout

import (
	"testing"

	"tableflip.dev/shiftsync/pkg/shift"
)

func mk(id, start, end, name string) shift.Shift {
	return shift.Shift{
		ID: id, StaffID: "staff-" + name, StaffName: name,
		Date: "2025-02-18", Start: start, End: end,
		Status: shift.StatusConfirmed,
	}
}

func TestPositionFullDayScale(t *testing.T) {
	tl := Timeline{Start: 0, End: 24 * 60, MinutesPerRow: 1, MinRows: 1}
	top, height := tl.Position(9*60, 17*60)
	if top != 540 {
		t.Fatalf("top = %d, want 540", top)
	}
	if height != 480 {
		t.Fatalf("height = %d, want 480", height)
	}
}

func TestPositionReducedWindow(t *testing.T) {
	tl := Timeline{Start: 6 * 60, End: 22 * 60, MinutesPerRow: 1, MinRows: 1}
	top, height := tl.Position(9*60, 14*60)
	if top != 180 {
		t.Fatalf("top = %d, want 180", top)
	}
	if height != 300 {
		t.Fatalf("height = %d, want 300", height)
	}
}

func TestPositionAppliesMinimumHeight(t *testing.T) {
	tl := Timeline{Start: 0, End: 24 * 60, MinutesPerRow: 1, MinRows: 40}
	_, height := tl.Position(9*60, 9*60+15)
	if height != 40 {
		t.Fatalf("short shift height = %d, want display floor 40", height)
	}
}

func TestPositionCoarserScale(t *testing.T) {
	tl := Timeline{Start: 0, End: 24 * 60, MinutesPerRow: 30, MinRows: 1}
	top, height := tl.Position(9*60, 17*60)
	if top != 18 {
		t.Fatalf("top = %d, want 18", top)
	}
	if height != 16 {
		t.Fatalf("height = %d, want 16", height)
	}
}

func TestLayoutAssignsDistinctLanesToOverlaps(t *testing.T) {
	tl := DayTimeline()
	blocks := tl.Layout([]shift.Shift{
		mk("b", "12:00", "16:00", "Mika"),
		mk("a", "09:00", "14:00", "Yuki"),
	})
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Shift.ID != "a" || blocks[1].Shift.ID != "b" {
		t.Fatalf("expected start-time order a,b; got %s,%s", blocks[0].Shift.ID, blocks[1].Shift.ID)
	}
	if blocks[0].Lane != 0 || blocks[1].Lane != 1 {
		t.Fatalf("overlapping shifts must take lanes 0 and 1, got %d and %d", blocks[0].Lane, blocks[1].Lane)
	}
}

func TestLayoutResetsLaneAfterGap(t *testing.T) {
	tl := DayTimeline()
	blocks := tl.Layout([]shift.Shift{
		mk("a", "09:00", "11:00", "Yuki"),
		mk("b", "10:00", "12:00", "Mika"),
		mk("c", "13:00", "15:00", "Aoi"),
	})
	if blocks[2].Shift.ID != "c" || blocks[2].Lane != 0 {
		t.Fatalf("disjoint shift should start a new run at lane 0, got lane %d", blocks[2].Lane)
	}
}

func TestLayoutBackToBackSharesLane(t *testing.T) {
	tl := DayTimeline()
	blocks := tl.Layout([]shift.Shift{
		mk("a", "09:00", "13:00", "Yuki"),
		mk("b", "13:00", "17:00", "Mika"),
	})
	if blocks[0].Lane != 0 || blocks[1].Lane != 0 {
		t.Fatalf("touching shifts do not overlap and may share lane 0, got %d and %d", blocks[0].Lane, blocks[1].Lane)
	}
}

func TestLayoutDeterministicForSameInput(t *testing.T) {
	tl := DayTimeline()
	in := []shift.Shift{
		mk("c", "09:00", "18:00", "Aoi"),
		mk("a", "09:00", "18:00", "Yuki"),
		mk("b", "09:00", "18:00", "Mika"),
	}
	first := tl.Layout(in)
	second := tl.Layout([]shift.Shift{in[1], in[2], in[0]})
	for i := range first {
		if first[i].Shift.ID != second[i].Shift.ID || first[i].Lane != second[i].Lane {
			t.Fatalf("layout depends on input order: %v vs %v", first[i], second[i])
		}
	}
	lanes := map[int]bool{}
	for _, b := range first {
		if lanes[b.Lane] {
			t.Fatalf("lane %d reused among fully overlapping shifts", b.Lane)
		}
		lanes[b.Lane] = true
	}
}

func TestTimelineRows(t *testing.T) {
	if got := DayTimeline().Rows(); got != 24*60 {
		t.Fatalf("day timeline rows = %d", got)
	}
	if got := (Timeline{Start: 6 * 60, End: 22 * 60, MinutesPerRow: 30}).Rows(); got != 32 {
		t.Fatalf("reduced timeline rows = %d", got)
	}
}

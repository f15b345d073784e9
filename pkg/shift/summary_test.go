package shift

import (
	"testing"
	"time"
)

func TestSummarizeWeek(t *testing.T) {
	idx := NewIndex()
	err := idx.SetAll([]Shift{
		demoShift("a", "2025-02-17", "09:00", "17:00", "Yuki"), // 8h
		demoShift("b", "2025-02-17", "12:00", "16:00", "Mika"), // 4h
		demoShift("c", "2025-02-19", "10:00", "13:30", "Yuki"), // 3.5h
		demoShift("d", "2025-02-24", "09:00", "17:00", "Yuki"), // next week
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	weekStart := time.Date(2025, time.February, 17, 0, 0, 0, 0, time.Local)
	wage := func(staffID string) float64 {
		if staffID == "staff-Yuki" {
			return 1200
		}
		return 1000
	}

	w := SummarizeWeek(idx, weekStart, wage)
	if w.Start != "2025-02-17" || w.End != "2025-02-23" {
		t.Fatalf("unexpected window: %s..%s", w.Start, w.End)
	}
	if len(w.Days) != 7 {
		t.Fatalf("expected 7 day summaries, got %d", len(w.Days))
	}
	if w.Days[0].Count != 2 || w.Days[0].Minutes != 12*60 {
		t.Fatalf("monday totals wrong: %+v", w.Days[0])
	}
	if w.Minutes != (8+4)*60+210 {
		t.Fatalf("week minutes wrong: %d", w.Minutes)
	}
	wantCost := 8*1200 + 4*1000 + 3.5*1200
	if w.Cost != wantCost {
		t.Fatalf("week cost = %v, want %v", w.Cost, wantCost)
	}
}

package shift

import (
	"errors"
	"testing"
)

func demoShift(id, date, start, end, name string) Shift {
	return Shift{
		ID: id, StaffID: "staff-" + name, StaffName: name,
		Date: date, Start: start, End: end,
		Status: StatusConfirmed,
	}
}

func TestOnDateExactMatchAndOrder(t *testing.T) {
	idx := NewIndex()
	err := idx.SetAll([]Shift{
		demoShift("b", "2025-02-18", "12:00", "16:00", "Mika"),
		demoShift("a", "2025-02-18", "09:00", "14:00", "Yuki"),
		demoShift("c", "2025-02-19", "09:00", "14:00", "Yuki"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := idx.OnDate("2025-02-18")
	if len(got) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("expected start-time order a,b; got %s,%s", got[0].ID, got[1].ID)
	}
	if n := len(idx.OnDate("2025-02-20")); n != 0 {
		t.Fatalf("expected no shifts on empty date, got %d", n)
	}
}

func TestOnDateTieBreaksByStaffName(t *testing.T) {
	idx := NewIndex()
	if err := idx.SetAll([]Shift{
		demoShift("2", "2025-02-18", "09:00", "14:00", "Yuki"),
		demoShift("1", "2025-02-18", "09:00", "14:00", "Aoi"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := idx.OnDate("2025-02-18")
	if got[0].StaffName != "Aoi" || got[1].StaffName != "Yuki" {
		t.Fatalf("expected name tie-break Aoi,Yuki; got %s,%s", got[0].StaffName, got[1].StaffName)
	}
}

func TestAddRejectsDuplicateID(t *testing.T) {
	idx := NewIndex()
	if err := idx.Add(demoShift("a", "2025-02-18", "09:00", "14:00", "Yuki")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := idx.Add(demoShift("a", "2025-02-19", "09:00", "14:00", "Yuki"))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestAddRejectsMalformedTimes(t *testing.T) {
	idx := NewIndex()
	s := demoShift("a", "2025-02-18", "9am", "14:00", "Yuki")
	if err := idx.Add(s); !errors.Is(err, ErrInvalidClock) {
		t.Fatalf("expected ErrInvalidClock, got %v", err)
	}
	if idx.Len() != 0 {
		t.Fatalf("malformed shift must not be stored")
	}
}

func TestUpdateMergesFields(t *testing.T) {
	idx := NewIndex()
	if err := idx.Add(demoShift("a", "2025-02-18", "09:00", "14:00", "Yuki")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status := StatusPending
	end := "15:00"
	if err := idx.Update("a", Patch{Status: &status, End: &end}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := idx.Get("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != StatusPending || got.End != "15:00" {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.Start != "09:00" || got.StaffName != "Yuki" {
		t.Fatalf("unpatched fields must survive: %+v", got)
	}
}

func TestUpdateMissingID(t *testing.T) {
	idx := NewIndex()
	status := StatusConfirmed
	if err := idx.Update("nope", Patch{Status: &status}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRejectsInvalidMerge(t *testing.T) {
	idx := NewIndex()
	if err := idx.Add(demoShift("a", "2025-02-18", "09:00", "14:00", "Yuki")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	end := "08:00" // before start
	if err := idx.Update("a", Patch{End: &end}); err == nil {
		t.Fatalf("expected inverted range to be rejected")
	}
	got, _ := idx.Get("a")
	if got.End != "14:00" {
		t.Fatalf("failed update must not mutate the record")
	}
}

func TestRemoveIsNoOpWhenAbsent(t *testing.T) {
	idx := NewIndex()
	if err := idx.Add(demoShift("a", "2025-02-18", "09:00", "14:00", "Yuki")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx.Remove("missing")
	if idx.Len() != 1 {
		t.Fatalf("remove of missing id must not change the index")
	}
	idx.Remove("a")
	if idx.Len() != 0 {
		t.Fatalf("expected empty index after remove")
	}
}

func TestSetAllKeepsOldContentsOnError(t *testing.T) {
	idx := NewIndex()
	if err := idx.SetAll([]Shift{demoShift("a", "2025-02-18", "09:00", "14:00", "Yuki")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := idx.SetAll([]Shift{
		demoShift("b", "2025-02-18", "09:00", "14:00", "Yuki"),
		demoShift("b", "2025-02-19", "09:00", "14:00", "Yuki"),
	})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if _, err := idx.Get("a"); err != nil {
		t.Fatalf("failed SetAll must keep the previous contents")
	}
}

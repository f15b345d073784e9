package shift

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Index is the flat in-memory shift collection. A single owner mutates it;
// the mutex keeps renders reading a consistent snapshot if a timer fires
// from another goroutine.
type Index struct {
	mu     sync.RWMutex
	shifts []Shift
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{}
}

// SetAll replaces the whole collection, validating every record. Used for
// the initial bulk load. The previous contents are kept on error.
func (i *Index) SetAll(shifts []Shift) error {
	next := make([]Shift, 0, len(shifts))
	seen := make(map[string]struct{}, len(shifts))
	for _, s := range shifts {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("shift %s: %w", s.ID, err)
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		seen[s.ID] = struct{}{}
		next = append(next, s)
	}
	i.mu.Lock()
	i.shifts = next
	i.mu.Unlock()
	return nil
}

// Add appends one shift.
func (i *Index) Add(s Shift) error {
	if err := s.Validate(); err != nil {
		return err
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, have := range i.shifts {
		if have.ID == s.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
	}
	i.shifts = append(i.shifts, s)
	return nil
}

// Patch carries the fields an Update may change. Nil fields are left alone.
type Patch struct {
	StaffID   *string
	StaffName *string
	Date      *string
	Start     *string
	End       *string
	Store     *string
	Status    *Status
}

// Update merges a patch into the shift with the given id. The merged record
// is validated before it replaces the original.
func (i *Index) Update(id string, p Patch) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	for n, have := range i.shifts {
		if have.ID != id {
			continue
		}
		merged := have
		if p.StaffID != nil {
			merged.StaffID = *p.StaffID
		}
		if p.StaffName != nil {
			merged.StaffName = *p.StaffName
		}
		if p.Date != nil {
			merged.Date = *p.Date
		}
		if p.Start != nil {
			merged.Start = *p.Start
		}
		if p.End != nil {
			merged.End = *p.End
		}
		if p.Store != nil {
			merged.Store = *p.Store
		}
		if p.Status != nil {
			merged.Status = *p.Status
		}
		if err := merged.Validate(); err != nil {
			return err
		}
		i.shifts[n] = merged
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Remove deletes the shift with the given id. Removing an absent id is a
// no-op.
func (i *Index) Remove(id string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for n, have := range i.shifts {
		if have.ID == id {
			i.shifts = append(i.shifts[:n], i.shifts[n+1:]...)
			return
		}
	}
}

// Get returns the shift with the given id.
func (i *Index) Get(id string) (Shift, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	for _, have := range i.shifts {
		if have.ID == id {
			return have, nil
		}
	}
	return Shift{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// OnDate returns every shift whose date equals the given key, ordered by
// start time, staff name, then id.
func (i *Index) OnDate(date string) []Shift {
	i.mu.RLock()
	out := make([]Shift, 0, 4)
	for _, s := range i.shifts {
		if s.Date == date {
			out = append(out, s)
		}
	}
	i.mu.RUnlock()
	sort.Slice(out, func(a, b int) bool { return Less(out[a], out[b]) })
	return out
}

// OnDay is OnDate keyed by a time value's calendar day.
func (i *Index) OnDay(t time.Time) []Shift {
	return i.OnDate(DateKey(t))
}

// All returns a copy of the collection ordered by date, then the usual
// in-day order.
func (i *Index) All() []Shift {
	i.mu.RLock()
	out := make([]Shift, len(i.shifts))
	copy(out, i.shifts)
	i.mu.RUnlock()
	sort.Slice(out, func(a, b int) bool {
		if out[a].Date != out[b].Date {
			return out[a].Date < out[b].Date
		}
		return Less(out[a], out[b])
	})
	return out
}

// Len returns the number of shifts held.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.shifts)
}

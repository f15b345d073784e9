// Package staff holds the roster the schedule is built from.
package staff

import "fmt"

// Role is the member's position in the team.
type Role string

const (
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// Member is one person on the roster.
type Member struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Role       Role     `json:"role" yaml:"role"`
	HourlyWage int      `json:"hourlyWage" yaml:"hourlyWage"`
	Stores     []string `json:"stores,omitempty" yaml:"stores,omitempty"`
}

// Roster is an ordered member list with id lookup.
type Roster struct {
	members []Member
	byID    map[string]int
}

// NewRoster builds a roster. Duplicate ids are an error.
func NewRoster(members []Member) (*Roster, error) {
	r := &Roster{
		members: append([]Member(nil), members...),
		byID:    make(map[string]int, len(members)),
	}
	for n, m := range r.members {
		if m.ID == "" {
			return nil, fmt.Errorf("roster member %d has no id", n)
		}
		if _, ok := r.byID[m.ID]; ok {
			return nil, fmt.Errorf("duplicate staff id %s", m.ID)
		}
		r.byID[m.ID] = n
	}
	return r, nil
}

// Members returns the roster in declaration order.
func (r *Roster) Members() []Member {
	out := make([]Member, len(r.members))
	copy(out, r.members)
	return out
}

// Get returns the member with the given id.
func (r *Roster) Get(id string) (Member, bool) {
	n, ok := r.byID[id]
	if !ok {
		return Member{}, false
	}
	return r.members[n], true
}

// Wage returns the hourly wage for a staff id, zero when unknown.
func (r *Roster) Wage(id string) float64 {
	if m, ok := r.Get(id); ok {
		return float64(m.HourlyWage)
	}
	return 0
}

// IDs returns the member ids in declaration order.
func (r *Roster) IDs() []string {
	out := make([]string, len(r.members))
	for n, m := range r.members {
		out[n] = m.ID
	}
	return out
}

// Len returns the roster size.
func (r *Roster) Len() int { return len(r.members) }

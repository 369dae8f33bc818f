//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"slices"
	"time"
)

// Wire formats for the split date/time fields on event records.
const (
	EventDateLayout = "2006-01-02"
	EventTimeLayout = "15:04"
)

// Event is a backend event record. Date and Time keep their wire form
// ("2006-01-02" / "15:04"); Registered holds guest emails. Capacity
// counts the remaining slots and is decremented on each registration.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Organizer   string   `json:"organizer"`
	Capacity    int      `json:"capacity"`
	Registered  []string `json:"registered"`
}

// StartsAt parses the event's date and time in the local timezone.
// It fails when either field is empty or malformed.
func (e Event) StartsAt() (time.Time, error) {
	return time.ParseInLocation(EventDateLayout+" "+EventTimeLayout, e.Date+" "+e.Time, time.Local)
}

// IsPast reports whether the event starts at or before now. Events
// with a missing or malformed date are not considered past.
func (e Event) IsPast(now time.Time) bool {
	start, err := e.StartsAt()
	if err != nil {
		return false
	}
	return !start.After(now)
}

// HasGuest reports whether the given email is on the registered list.
func (e Event) HasGuest(email string) bool {
	return slices.Contains(e.Registered, email)
}

// IsFull reports whether no slots remain.
func (e Event) IsFull() bool { return e.Capacity <= 0 }

// EventPatch captures a partial event update. Nil fields are left
// untouched by the backend. Registered uses a pointer-to-slice so a
// patch can distinguish "unchanged" from "set to empty".
type EventPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Date        *string   `json:"date,omitempty"`
	Time        *string   `json:"time,omitempty"`
	Organizer   *string   `json:"organizer,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	Registered  *[]string `json:"registered,omitempty"`
}

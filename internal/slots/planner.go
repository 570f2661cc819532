package slots

import "time"

// Tuple identifies the scope a selection and its interval snapshot belong
// to. Booked intervals and past/available status are only meaningful per
// tuple; changing any field invalidates both.
type Tuple struct {
	VenueID string
	Sport   string
	CourtID string
	Date    string // YYYY-MM-DD in the venue's time zone
}

// Planner drives one in-progress booking: it scopes a Selection to the
// active tuple, guards against stale interval snapshots, and fails closed
// until intervals for the current tuple are loaded.
type Planner struct {
	openHour  int
	closeHour int
	loc       *time.Location
	now       func() time.Time

	tuple     Tuple
	date      time.Time
	intervals []Interval
	loaded    bool
	sel       Selection
}

// NewPlanner creates a planner for a venue's operating window. now is
// injectable for tests; pass nil for time.Now.
func NewPlanner(openHour, closeHour int, loc *time.Location, now func() time.Time) *Planner {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Planner{
		openHour:  openHour,
		closeHour: closeHour,
		loc:       loc,
		now:       now,
	}
}

// SetTuple switches the active scope. Any change to venue, sport, court or
// date resets the selection to empty and marks the interval snapshot stale,
// so intervals fetched for the previous tuple can never classify slots for
// the new one.
func (p *Planner) SetTuple(t Tuple, date time.Time) {
	if t == p.tuple && p.loaded {
		return
	}
	p.tuple = t
	p.date = date
	p.intervals = nil
	p.loaded = false
	p.sel.Clear()
}

// ApplyIntervals installs a fetched interval snapshot. Snapshots are tagged
// with the tuple captured at request time; if the planner has moved on, the
// snapshot is rejected with ErrStaleIntervals and the caller should refetch
// for the current tuple.
func (p *Planner) ApplyIntervals(t Tuple, intervals []Interval) error {
	if t != p.tuple {
		return ErrStaleIntervals
	}
	p.intervals = intervals
	p.loaded = true
	return nil
}

// Tuple returns the active scope.
func (p *Planner) Tuple() Tuple {
	return p.tuple
}

// Slots returns the full candidate sequence with per-slot status. Fails
// closed with ErrIntervalsNotLoaded until a snapshot for the current tuple
// has been applied.
func (p *Planner) Slots() ([]SlotStatus, error) {
	if !p.loaded {
		return nil, ErrIntervalsNotLoaded
	}
	candidates := Generate(p.openHour, p.closeHour)
	return ClassifyAll(candidates, p.date, p.now(), p.intervals, p.loc), nil
}

// Toggle selects or deselects an hour. Toggling is only legal for slots
// currently classified available; the selection is left untouched on any
// rejection.
func (p *Planner) Toggle(hour int) error {
	if !p.loaded {
		return ErrIntervalsNotLoaded
	}

	slot := Slot{Hour: hour, Label: Label(hour)}
	if hour < p.openHour || hour > p.closeHour {
		return ErrSlotUnavailable
	}
	if Classify(slot, p.date, p.now(), p.intervals, p.loc) != StatusAvailable {
		return ErrSlotUnavailable
	}

	return p.sel.Toggle(hour)
}

// Selection returns a copy of the currently selected hours.
func (p *Planner) Selection() []int {
	return p.sel.Hours()
}

// Confirm finalizes the selection into a booking window. The selection is
// kept; callers clear it with Reset once the ledger accepts the booking.
func (p *Planner) Confirm() (Window, error) {
	return BuildWindow(p.sel, p.date, p.loc)
}

// Reset empties the selection without changing the tuple, used after a
// successful submission or a server-side conflict.
func (p *Planner) Reset() {
	p.sel.Clear()
}

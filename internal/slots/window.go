package slots

import "time"

// Window is the finalized reservation interval built from a selection,
// ready to submit to the booking ledger. Start and End are UTC instants;
// slot-hour semantics live in the venue's own time zone.
type Window struct {
	Start         time.Time `json:"start_time"`
	End           time.Time `json:"end_time"`
	DurationHours int       `json:"duration_hours"`
}

// Interval returns the window as a half-open booked interval.
func (w Window) Interval() Interval {
	return Interval{Start: w.Start, End: w.End}
}

// SlotType buckets the window's starting hour for display, matching the
// venue-local start hour.
func (w Window) SlotType(loc *time.Location) string {
	hour := w.Start.In(loc).Hour()
	switch {
	case hour < 12:
		return "Morning"
	case hour < 18:
		return "Evening"
	default:
		return "Night"
	}
}

// BuildWindow converts a selection on a date into an explicit start/end pair.
// Start is the earliest selected hour on that date in loc, end is start plus
// one hour per selected slot. The tracker guarantees contiguity, so the
// window covers exactly the selected hour set.
func BuildWindow(sel Selection, date time.Time, loc *time.Location) (Window, error) {
	if sel.IsEmpty() {
		return Window{}, ErrEmptySelection
	}

	duration := sel.Len()
	start := SlotTime(date, sel.StartHour(), loc)
	end := start.Add(time.Duration(duration) * time.Hour)

	return Window{
		Start:         start.UTC(),
		End:           end.UTC(),
		DurationHours: duration,
	}, nil
}

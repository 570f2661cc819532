package slots

import "time"

// Interval is a half-open time range [Start, End) occupied by a confirmed
// booking. Interval lists are snapshots fetched from the booking ledger and
// are only valid for the tuple they were fetched for.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the interval (start inclusive,
// end exclusive).
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Overlaps reports whether two half-open intervals share any instant.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Hours expands the interval into the hour-of-day values it covers in the
// given location. A booking from 14:00 to 16:00 covers hours 14 and 15.
func (i Interval) Hours(loc *time.Location) []int {
	var hours []int
	for t := i.Start.In(loc); t.Before(i.End.In(loc)); t = t.Add(time.Hour) {
		hours = append(hours, t.Hour())
	}
	return hours
}

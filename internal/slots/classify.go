package slots

import "time"

// Status is the bookability of a single slot on a given date.
type Status string

const (
	StatusPast      Status = "past"
	StatusBooked    Status = "booked"
	StatusAvailable Status = "available"
)

// IsValid checks if the slot status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusPast, StatusBooked, StatusAvailable:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Classify determines whether a slot on the given date is past, booked or
// available, relative to now and the booked-interval snapshot.
//
// A slot exactly equal to now is past, not available: a user cannot book an
// hour that has already started. Booked is tested by direct timestamp
// containment against each interval, never by comparing formatted strings.
func Classify(slot Slot, date time.Time, now time.Time, booked []Interval, loc *time.Location) Status {
	slotTs := SlotTime(date, slot.Hour, loc)

	today := DayStart(now, loc)
	if DayStart(date, loc).Before(today) {
		return StatusPast
	}
	if !slotTs.After(now) {
		return StatusPast
	}

	for _, iv := range booked {
		if iv.Contains(slotTs) {
			return StatusBooked
		}
	}

	return StatusAvailable
}

// ClassifyAll classifies every slot in the sequence, preserving order.
func ClassifyAll(candidates []Slot, date time.Time, now time.Time, booked []Interval, loc *time.Location) []SlotStatus {
	result := make([]SlotStatus, len(candidates))
	for i, slot := range candidates {
		result[i] = SlotStatus{
			Slot:   slot,
			Status: Classify(slot, date, now, booked, loc),
		}
	}
	return result
}

// SlotStatus pairs a slot with its classification for rendering.
type SlotStatus struct {
	Slot   Slot   `json:"slot"`
	Status Status `json:"status"`
}

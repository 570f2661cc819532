package slots

import (
	"fmt"
	"time"
)

// Default operating window for courts (6 AM through 11 PM).
const (
	DefaultOpenHour  = 6
	DefaultCloseHour = 23
)

// Slot is one bookable hour of a day. Slots are derived values, regenerated
// per date, never persisted.
type Slot struct {
	Hour  int    `json:"hour"`
	Label string `json:"label"`
}

// Generate produces the candidate list of hourly slots from openHour to
// closeHour inclusive, ascending. Calling it again with the same bounds
// yields an identical sequence.
func Generate(openHour, closeHour int) []Slot {
	if openHour < 0 {
		openHour = 0
	}
	if closeHour > 23 {
		closeHour = 23
	}

	var result []Slot
	for hour := openHour; hour <= closeHour; hour++ {
		result = append(result, Slot{
			Hour:  hour,
			Label: Label(hour),
		})
	}
	return result
}

// Label formats an hour of day in 12-hour clock form, e.g. 18 -> "6:00 PM".
func Label(hour int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	display := hour
	if hour > 12 {
		display = hour - 12
	}
	if hour == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:00 %s", display, period)
}

// SlotTime combines a calendar date with a slot hour in the given location.
// The date's own clock time is ignored.
func SlotTime(date time.Time, hour int, loc *time.Location) time.Time {
	y, m, d := date.In(loc).Date()
	return time.Date(y, m, d, hour, 0, 0, 0, loc)
}

// DayStart truncates a timestamp to midnight in the given location.
func DayStart(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

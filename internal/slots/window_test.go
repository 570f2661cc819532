package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWindow_Empty(t *testing.T) {
	var sel Selection
	_, err := BuildWindow(sel, day(20, 0), time.UTC)
	assert.ErrorIs(t, err, ErrEmptySelection)
}

// Scenario: {16:00, 17:00} on the selected date yields start 16:00,
// duration 2, end 18:00.
func TestBuildWindow_TwoHours(t *testing.T) {
	sel, err := NewSelection([]int{16, 17})
	require.NoError(t, err)

	w, err := BuildWindow(sel, day(20, 0), time.UTC)
	require.NoError(t, err)

	assert.Equal(t, day(20, 16), w.Start)
	assert.Equal(t, day(20, 18), w.End)
	assert.Equal(t, 2, w.DurationHours)
}

func TestBuildWindow_EmitsUTC(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	sel, err := NewSelection([]int{18})
	require.NoError(t, err)

	date := time.Date(2026, 5, 20, 0, 0, 0, 0, kolkata)
	w, err := BuildWindow(sel, date, kolkata)
	require.NoError(t, err)

	assert.Equal(t, time.UTC, w.Start.Location())
	assert.Equal(t, time.Date(2026, 5, 20, 12, 30, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 5, 20, 13, 30, 0, 0, time.UTC), w.End)
}

// Round trip: building a window from a selection and reclassifying every
// hour inside it must reproduce exactly the selected hour set.
func TestBuildWindow_RoundTripEquivalence(t *testing.T) {
	for start := DefaultOpenHour; start <= DefaultCloseHour; start++ {
		for length := 1; start+length-1 <= DefaultCloseHour && length <= 4; length++ {
			var hours []int
			for h := start; h < start+length; h++ {
				hours = append(hours, h)
			}
			sel, err := NewSelection(hours)
			require.NoError(t, err)

			w, err := BuildWindow(sel, day(20, 0), time.UTC)
			require.NoError(t, err)

			covered := w.Interval().Hours(time.UTC)
			assert.Equal(t, hours, covered, "start=%d length=%d", start, length)

			// Every slot inside the window classifies booked against it,
			// every slot outside does not.
			now := day(20, 0)
			for _, slot := range Generate(DefaultOpenHour, DefaultCloseHour) {
				status := Classify(slot, day(20, 0), now, []Interval{w.Interval()}, time.UTC)
				if sel.Contains(slot.Hour) {
					assert.Equal(t, StatusBooked, status, "hour %d", slot.Hour)
				} else {
					assert.NotEqual(t, StatusBooked, status, "hour %d", slot.Hour)
				}
			}
		}
	}
}

func TestWindow_SlotType(t *testing.T) {
	morning, _ := NewSelection([]int{8})
	evening, _ := NewSelection([]int{14})
	night, _ := NewSelection([]int{20})

	wm, err := BuildWindow(morning, day(20, 0), time.UTC)
	require.NoError(t, err)
	we, err := BuildWindow(evening, day(20, 0), time.UTC)
	require.NoError(t, err)
	wn, err := BuildWindow(night, day(20, 0), time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "Morning", wm.SlotType(time.UTC))
	assert.Equal(t, "Evening", we.SlotType(time.UTC))
	assert.Equal(t, "Night", wn.SlotType(time.UTC))
}

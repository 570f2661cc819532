package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(yearDay int, hour int) time.Time {
	return time.Date(2026, 5, yearDay, hour, 0, 0, 0, time.UTC)
}

func TestClassify_PastDate(t *testing.T) {
	now := day(20, 10)
	yesterday := day(19, 0)

	for _, slot := range Generate(DefaultOpenHour, DefaultCloseHour) {
		status := Classify(slot, yesterday, now, nil, time.UTC)
		assert.Equal(t, StatusPast, status, "every slot on a past date is past, hour %d", slot.Hour)
	}
}

func TestClassify_FutureDateAllAvailable(t *testing.T) {
	now := day(20, 22)
	tomorrow := day(21, 0)

	for _, slot := range Generate(DefaultOpenHour, DefaultCloseHour) {
		status := Classify(slot, tomorrow, now, nil, time.UTC)
		assert.Equal(t, StatusAvailable, status, "hour %d", slot.Hour)
	}
}

func TestClassify_TodayBoundary(t *testing.T) {
	now := day(20, 10)
	today := day(20, 0)

	// At or before now is past; a slot that has started cannot be booked.
	assert.Equal(t, StatusPast, Classify(Slot{Hour: 9}, today, now, nil, time.UTC))
	assert.Equal(t, StatusPast, Classify(Slot{Hour: 10}, today, now, nil, time.UTC))
	assert.Equal(t, StatusAvailable, Classify(Slot{Hour: 11}, today, now, nil, time.UTC))
}

func TestClassify_BookedByIntervalContainment(t *testing.T) {
	now := day(20, 6)
	today := day(20, 0)
	booked := []Interval{{Start: day(20, 14), End: day(20, 16)}}

	assert.Equal(t, StatusAvailable, Classify(Slot{Hour: 13}, today, now, booked, time.UTC))
	assert.Equal(t, StatusBooked, Classify(Slot{Hour: 14}, today, now, booked, time.UTC))
	assert.Equal(t, StatusBooked, Classify(Slot{Hour: 15}, today, now, booked, time.UTC))
	// End is exclusive: the 4 PM slot is free again.
	assert.Equal(t, StatusAvailable, Classify(Slot{Hour: 16}, today, now, booked, time.UTC))
}

// Scenario from the booking screen: window 6-23, one booking 2 PM - 4 PM,
// now 10:00 on the same day.
func TestClassifyAll_DayGrid(t *testing.T) {
	now := day(20, 10)
	today := day(20, 0)
	booked := []Interval{{Start: day(20, 14), End: day(20, 16)}}

	grid := ClassifyAll(Generate(DefaultOpenHour, DefaultCloseHour), today, now, booked, time.UTC)
	require.Len(t, grid, 18)

	byHour := make(map[int]Status, len(grid))
	for _, ss := range grid {
		byHour[ss.Slot.Hour] = ss.Status
	}

	for hour := 6; hour <= 9; hour++ {
		assert.Equal(t, StatusPast, byHour[hour], "hour %d", hour)
	}
	// 10:00 has started, so it is past too; 11-13 are free.
	assert.Equal(t, StatusPast, byHour[10])
	for hour := 11; hour <= 13; hour++ {
		assert.Equal(t, StatusAvailable, byHour[hour], "hour %d", hour)
	}
	for hour := 14; hour <= 15; hour++ {
		assert.Equal(t, StatusBooked, byHour[hour], "hour %d", hour)
	}
	for hour := 16; hour <= 23; hour++ {
		assert.Equal(t, StatusAvailable, byHour[hour], "hour %d", hour)
	}
}

func TestInterval_Contains(t *testing.T) {
	iv := Interval{Start: day(20, 14), End: day(20, 16)}

	assert.True(t, iv.Contains(day(20, 14)))
	assert.True(t, iv.Contains(day(20, 15)))
	assert.False(t, iv.Contains(day(20, 16)))
	assert.False(t, iv.Contains(day(20, 13)))
}

func TestInterval_Overlaps(t *testing.T) {
	existing := Interval{Start: day(20, 10), End: day(20, 14)}

	assert.False(t, existing.Overlaps(Interval{Start: day(20, 8), End: day(20, 10)}))
	assert.False(t, existing.Overlaps(Interval{Start: day(20, 14), End: day(20, 16)}))
	assert.True(t, existing.Overlaps(Interval{Start: day(20, 12), End: day(20, 16)}))
	assert.True(t, existing.Overlaps(Interval{Start: day(20, 11), End: day(20, 13)}))
	assert.True(t, existing.Overlaps(Interval{Start: day(20, 9), End: day(20, 15)}))
}

func TestInterval_Hours(t *testing.T) {
	iv := Interval{Start: day(20, 14), End: day(20, 16)}
	assert.Equal(t, []int{14, 15}, iv.Hours(time.UTC))

	single := Interval{Start: day(20, 9), End: day(20, 10)}
	assert.Equal(t, []int{9}, single.Hours(time.UTC))
}

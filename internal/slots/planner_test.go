package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func plannerTuple(date string) Tuple {
	return Tuple{VenueID: "venue-1", Sport: "Football", CourtID: "court-1", Date: date}
}

func TestPlanner_FailsClosedUntilLoaded(t *testing.T) {
	p := NewPlanner(DefaultOpenHour, DefaultCloseHour, time.UTC, fixedNow(day(20, 10)))
	p.SetTuple(plannerTuple("2026-05-20"), day(20, 0))

	_, err := p.Slots()
	assert.ErrorIs(t, err, ErrIntervalsNotLoaded)

	err = p.Toggle(16)
	assert.ErrorIs(t, err, ErrIntervalsNotLoaded)
}

func TestPlanner_RejectsStaleIntervals(t *testing.T) {
	p := NewPlanner(DefaultOpenHour, DefaultCloseHour, time.UTC, fixedNow(day(20, 10)))

	first := plannerTuple("2026-05-20")
	p.SetTuple(first, day(20, 0))

	// User switches date while the fetch for the first tuple is in flight.
	second := plannerTuple("2026-05-21")
	p.SetTuple(second, day(21, 0))

	err := p.ApplyIntervals(first, []Interval{{Start: day(20, 14), End: day(20, 16)}})
	assert.ErrorIs(t, err, ErrStaleIntervals)

	// Still fail closed: the stale snapshot must not have been applied.
	_, err = p.Slots()
	assert.ErrorIs(t, err, ErrIntervalsNotLoaded)

	// The snapshot for the current tuple lands and classification works.
	require.NoError(t, p.ApplyIntervals(second, nil))
	grid, err := p.Slots()
	require.NoError(t, err)
	assert.Len(t, grid, 18)
}

func TestPlanner_TupleChangeResetsSelection(t *testing.T) {
	p := NewPlanner(DefaultOpenHour, DefaultCloseHour, time.UTC, fixedNow(day(20, 10)))

	today := plannerTuple("2026-05-20")
	p.SetTuple(today, day(20, 0))
	require.NoError(t, p.ApplyIntervals(today, []Interval{{Start: day(20, 14), End: day(20, 16)}}))

	require.NoError(t, p.Toggle(16))
	require.NoError(t, p.Toggle(17))
	require.Equal(t, []int{16, 17}, p.Selection())

	// Date changes mid-selection: selection resets, intervals go stale.
	tomorrow := plannerTuple("2026-05-21")
	p.SetTuple(tomorrow, day(21, 0))
	assert.Empty(t, p.Selection())

	require.NoError(t, p.ApplyIntervals(tomorrow, nil))
	grid, err := p.Slots()
	require.NoError(t, err)

	// Yesterday's booking must not leak into tomorrow's classification.
	for _, ss := range grid {
		assert.Equal(t, StatusAvailable, ss.Status, "hour %d", ss.Slot.Hour)
	}
}

func TestPlanner_ToggleGating(t *testing.T) {
	p := NewPlanner(DefaultOpenHour, DefaultCloseHour, time.UTC, fixedNow(day(20, 10)))
	tuple := plannerTuple("2026-05-20")
	p.SetTuple(tuple, day(20, 0))
	require.NoError(t, p.ApplyIntervals(tuple, []Interval{{Start: day(20, 14), End: day(20, 16)}}))

	assert.ErrorIs(t, p.Toggle(9), ErrSlotUnavailable)  // past
	assert.ErrorIs(t, p.Toggle(14), ErrSlotUnavailable) // booked
	assert.ErrorIs(t, p.Toggle(2), ErrSlotUnavailable)  // outside operating window
	assert.Empty(t, p.Selection())

	require.NoError(t, p.Toggle(16))
	require.NoError(t, p.Toggle(17))
	assert.ErrorIs(t, p.Toggle(19), ErrNonContiguousSelection)
	assert.Equal(t, []int{16, 17}, p.Selection())
}

func TestPlanner_ConfirmAndReset(t *testing.T) {
	p := NewPlanner(DefaultOpenHour, DefaultCloseHour, time.UTC, fixedNow(day(20, 10)))
	tuple := plannerTuple("2026-05-20")
	p.SetTuple(tuple, day(20, 0))
	require.NoError(t, p.ApplyIntervals(tuple, nil))

	_, err := p.Confirm()
	assert.ErrorIs(t, err, ErrEmptySelection)

	require.NoError(t, p.Toggle(16))
	require.NoError(t, p.Toggle(17))

	w, err := p.Confirm()
	require.NoError(t, err)
	assert.Equal(t, day(20, 16), w.Start)
	assert.Equal(t, day(20, 18), w.End)
	assert.Equal(t, 2, w.DurationHours)

	p.Reset()
	assert.Empty(t, p.Selection())
	assert.Equal(t, tuple, p.Tuple())
}

package slots

import "errors"

var (
	// ErrNonContiguousSelection is returned when a toggle would leave the
	// selected hours with a gap. The prior selection is retained.
	ErrNonContiguousSelection = errors.New("selected slots must form a continuous run without gaps")

	// ErrEmptySelection is returned when a booking window is requested for
	// an empty selection.
	ErrEmptySelection = errors.New("no slots selected")

	// ErrSlotUnavailable is returned when toggling a slot that is past or
	// already booked.
	ErrSlotUnavailable = errors.New("slot is not available for selection")

	// ErrIntervalsNotLoaded is returned when slot classification is requested
	// before booked intervals for the current tuple have been applied. The
	// planner fails closed rather than presenting every slot as free.
	ErrIntervalsNotLoaded = errors.New("booked intervals not loaded for current selection scope")

	// ErrStaleIntervals is returned when an interval snapshot is applied for
	// a tuple that is no longer current. The snapshot must be discarded and
	// a fetch re-triggered for the current tuple.
	ErrStaleIntervals = errors.New("booked intervals belong to a previous selection scope")
)

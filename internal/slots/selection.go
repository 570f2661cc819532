package slots

import "sort"

// Selection is the set of hours a user has picked for one date/sport/court
// tuple. Invariant: sorted ascending with consecutive entries exactly one
// hour apart. The zero value is an empty, valid selection.
type Selection struct {
	hours []int
}

// NewSelection builds a selection from raw hours, rejecting duplicates and
// gaps. Used when restoring a persisted draft.
func NewSelection(hours []int) (Selection, error) {
	sorted := append([]int(nil), hours...)
	sort.Ints(sorted)
	if !isContiguous(sorted) {
		return Selection{}, ErrNonContiguousSelection
	}
	return Selection{hours: sorted}, nil
}

// Toggle adds the hour if absent or removes it if present. After every
// mutation the result is re-sorted and re-checked; a violation reverts to
// the prior selection and returns ErrNonContiguousSelection. The check runs
// on removal too, not just addition: contiguity is enforced here, not by UI
// discipline.
func (s *Selection) Toggle(hour int) error {
	next := make([]int, 0, len(s.hours)+1)
	removed := false
	for _, h := range s.hours {
		if h == hour {
			removed = true
			continue
		}
		next = append(next, h)
	}
	if !removed {
		next = append(next, hour)
	}

	sort.Ints(next)
	if !isContiguous(next) {
		return ErrNonContiguousSelection
	}

	s.hours = next
	return nil
}

// Contains reports whether the hour is currently selected.
func (s *Selection) Contains(hour int) bool {
	for _, h := range s.hours {
		if h == hour {
			return true
		}
	}
	return false
}

// Hours returns the selected hours sorted ascending.
func (s *Selection) Hours() []int {
	return append([]int(nil), s.hours...)
}

// IsEmpty reports whether nothing is selected.
func (s *Selection) IsEmpty() bool {
	return len(s.hours) == 0
}

// Len returns the number of selected hours, which equals the booking
// duration in hours.
func (s *Selection) Len() int {
	return len(s.hours)
}

// Clear resets the selection to empty.
func (s *Selection) Clear() {
	s.hours = nil
}

// StartHour returns the earliest selected hour. Only meaningful when the
// selection is non-empty.
func (s *Selection) StartHour() int {
	if len(s.hours) == 0 {
		return 0
	}
	return s.hours[0]
}

func isContiguous(sorted []int) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return true
}

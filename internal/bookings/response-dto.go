package bookings

import (
	"time"

	"playbox/internal/slots"
)

// AvailabilityResponse is the full slot grid for one venue/sport/court/date
// tuple, with the caller's draft selection overlaid.
type AvailabilityResponse struct {
	VenueID       string             `json:"venue_id"`
	Sport         string             `json:"sport"`
	CourtID       string             `json:"court_id"`
	Date          string             `json:"date"`
	Timezone      string             `json:"timezone"`
	PricePerHour  float64            `json:"price_per_hour"`
	Slots         []slots.SlotStatus `json:"slots"`
	SelectedHours []int              `json:"selected_hours"`
}

// SelectionResponse describes the draft after a toggle.
type SelectionResponse struct {
	VenueID       string  `json:"venue_id"`
	Sport         string  `json:"sport"`
	CourtID       string  `json:"court_id"`
	Date          string  `json:"date"`
	SelectedHours []int   `json:"selected_hours"`
	DurationHours int     `json:"duration_hours"`
	TotalAmount   float64 `json:"total_amount"`
}

type BookingResponse struct {
	ID            string     `json:"id"`
	BookingRef    string     `json:"booking_ref"`
	VenueID       string     `json:"venue_id"`
	VenueName     string     `json:"venue_name,omitempty"`
	CourtID       string     `json:"court_id"`
	CourtName     string     `json:"court_name,omitempty"`
	Sport         string     `json:"sport"`
	Date          string     `json:"date"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	StartLabel    string     `json:"start_label"`
	EndLabel      string     `json:"end_label"`
	DurationHours int        `json:"duration_hours"`
	SlotType      string     `json:"slot_type"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
}

type PaginatedBookings struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// OwnerDayView lists every booking touching one venue day, newest first.
type OwnerDayView struct {
	VenueID  string            `json:"venue_id"`
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// OwnerDaySummary aggregates a venue day for the owner dashboard.
type OwnerDaySummary struct {
	VenueID        string  `json:"venue_id"`
	Date           string  `json:"date"`
	TotalBookings  int64   `json:"total_bookings"`
	HoursBooked    int64   `json:"hours_booked"`
	FreeSlotHours  int64   `json:"free_slot_hours"`
	Revenue        float64 `json:"revenue"`
	CancelledCount int64   `json:"cancelled_count"`
}

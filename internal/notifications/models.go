package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType identifies a booking lifecycle transition on the wire.
type EventType string

const (
	EventBookingConfirmed EventType = "booking.confirmed"
	EventBookingCancelled EventType = "booking.cancelled"
)

// IsValid checks if the event type is one the pipeline understands
func (t EventType) IsValid() bool {
	switch t {
	case EventBookingConfirmed, EventBookingCancelled:
		return true
	}
	return false
}

// BookingEvent is the message published for every booking transition.
// Consumers only see this struct, never the database row.
type BookingEvent struct {
	ID            uuid.UUID `json:"id"`
	Type          EventType `json:"type"`
	BookingID     uuid.UUID `json:"booking_id"`
	BookingRef    string    `json:"booking_ref"`
	UserID        uuid.UUID `json:"user_id"`
	VenueID       uuid.UUID `json:"venue_id"`
	VenueName     string    `json:"venue_name"`
	CourtID       uuid.UUID `json:"court_id"`
	Sport         string    `json:"sport"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	DurationHours int       `json:"duration_hours"`
	Amount        float64   `json:"amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// ToJSON serializes the event for the Kafka payload
func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON deserializes a Kafka payload into an event
func FromJSON(data []byte) (*BookingEvent, error) {
	var event BookingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// PartitionKey routes all events for one court to the same partition so
// confirm/cancel ordering is preserved per court.
func (e *BookingEvent) PartitionKey() string {
	return e.CourtID.String()
}

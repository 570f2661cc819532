package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Booking is one confirmed court reservation. StartTime and EndTime are UTC
// instants forming a half-open interval [StartTime, EndTime); slot-hour
// semantics live in the venue's time zone.
type Booking struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	VenueID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"venue_id"`
	CourtID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"court_id"`
	Sport         string     `gorm:"type:varchar(100);not null" json:"sport"`
	StartTime     time.Time  `gorm:"not null" json:"start_time"`
	EndTime       time.Time  `gorm:"not null" json:"end_time"`
	DurationHours int        `gorm:"not null" json:"duration_hours"`
	SlotType      string     `gorm:"type:varchar(20)" json:"slot_type"`
	Amount        float64    `gorm:"not null" json:"amount"`
	Status        Status     `gorm:"type:varchar(20);check:status IN ('CONFIRMED', 'CANCELLED', 'COMPLETED');default:'CONFIRMED'" json:"status"`
	BookingRef    string     `gorm:"unique;not null" json:"booking_ref"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// HasStarted reports whether the reserved window has begun.
func (b *Booking) HasStarted(now time.Time) bool {
	return !now.Before(b.StartTime)
}

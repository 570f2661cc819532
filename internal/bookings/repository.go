package bookings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"playbox/internal/slots"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrBookingConflict is returned when a requested window overlaps a
// confirmed booking on the same court.
var ErrBookingConflict = errors.New("requested time window is no longer available")

type Repository interface {
	// Core booking operations
	CreateBookingWithConflictCheck(ctx context.Context, booking *Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time) error

	// Availability
	GetBookedIntervals(ctx context.Context, courtID uuid.UUID, dayStart, dayEnd time.Time) ([]slots.Interval, error)

	// User booking operations
	GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error)

	// Owner operations
	GetVenueBookingsForDay(ctx context.Context, venueID uuid.UUID, dayStart, dayEnd time.Time) ([]Booking, error)
	GetVenueDaySummary(ctx context.Context, venueID uuid.UUID, dayStart, dayEnd time.Time) (*OwnerDaySummary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateBookingWithConflictCheck creates a booking atomically. Overlap is
// checked inside the transaction with the existing rows locked, and the
// database's exclusion constraint on (court_id, tstzrange) backstops the
// check for writers racing through different transactions.
func (r *repository) CreateBookingWithConflictCheck(ctx context.Context, booking *Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var overlapping int64
		err := tx.Model(&Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("court_id = ?", booking.CourtID).
			Where("status = ?", StatusConfirmed).
			Where("start_time < ? AND ? < end_time", booking.EndTime, booking.StartTime).
			Count(&overlapping).Error
		if err != nil {
			return fmt.Errorf("failed to check for conflicts: %w", err)
		}

		if overlapping > 0 {
			return ErrBookingConflict
		}

		if err := tx.Create(booking).Error; err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrBookingConflict) || isExclusionViolation(err) {
			return ErrBookingConflict
		}
		return err
	}

	return nil
}

// isExclusionViolation detects the no_overlapping_bookings constraint firing
// for a transaction that raced past the row-lock check.
func isExclusionViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "no_overlapping_bookings") ||
		strings.Contains(msg, "23P01")
}

func (r *repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if cancelledAt != nil {
		updates["cancelled_at"] = *cancelledAt
	}

	return r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// GetBookedIntervals returns the confirmed windows on one court that touch
// the given day, as half-open intervals ordered by start.
func (r *repository) GetBookedIntervals(ctx context.Context, courtID uuid.UUID, dayStart, dayEnd time.Time) ([]slots.Interval, error) {
	var rows []Booking
	err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where("court_id = ?", courtID).
		Where("status = ?", StatusConfirmed).
		Where("start_time < ? AND end_time > ?", dayEnd, dayStart).
		Order("start_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	intervals := make([]slots.Interval, len(rows))
	for i, row := range rows {
		intervals[i] = slots.Interval{Start: row.StartTime, End: row.EndTime}
	}
	return intervals, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("user_id = ?", userID)

	if query.Status != "" {
		baseQuery = baseQuery.Where("status = ?", query.Status)
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Order("start_time DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&bookings).Error

	return bookings, totalCount, err
}

func (r *repository) GetVenueBookingsForDay(ctx context.Context, venueID uuid.UUID, dayStart, dayEnd time.Time) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Where("start_time < ? AND end_time > ?", dayEnd, dayStart).
		Order("start_time ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) GetVenueDaySummary(ctx context.Context, venueID uuid.UUID, dayStart, dayEnd time.Time) (*OwnerDaySummary, error) {
	var summary struct {
		TotalBookings  int64
		HoursBooked    int64
		Revenue        float64
		CancelledCount int64
	}

	err := r.db.WithContext(ctx).
		Model(&Booking{}).
		Select(
			"COUNT(*) FILTER (WHERE status = 'CONFIRMED') AS total_bookings",
			"COALESCE(SUM(duration_hours) FILTER (WHERE status = 'CONFIRMED'), 0) AS hours_booked",
			"COALESCE(SUM(amount) FILTER (WHERE status = 'CONFIRMED'), 0) AS revenue",
			"COUNT(*) FILTER (WHERE status = 'CANCELLED') AS cancelled_count",
		).
		Where("venue_id = ?", venueID).
		Where("start_time < ? AND end_time > ?", dayEnd, dayStart).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}

	return &OwnerDaySummary{
		VenueID:        venueID.String(),
		TotalBookings:  summary.TotalBookings,
		HoursBooked:    summary.HoursBooked,
		Revenue:        summary.Revenue,
		CancelledCount: summary.CancelledCount,
	}, nil
}

// CalculateTotalPages computes page count for paginated listings.
func CalculateTotalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(limit)))
}

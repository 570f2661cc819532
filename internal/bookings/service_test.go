package bookings

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"playbox/internal/slots"
	"playbox/internal/venues"
	"playbox/pkg/cache"
	"playbox/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory Repository for exercising the confirmation flow
// without a database.
type fakeRepo struct {
	bookings  []Booking
	intervals []slots.Interval
}

func (f *fakeRepo) CreateBookingWithConflictCheck(ctx context.Context, booking *Booking) error {
	requested := slots.Interval{Start: booking.StartTime, End: booking.EndTime}
	for _, b := range f.bookings {
		if b.CourtID != booking.CourtID || b.Status != StatusConfirmed {
			continue
		}
		if requested.Overlaps(slots.Interval{Start: b.StartTime, End: b.EndTime}) {
			return ErrBookingConflict
		}
	}
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			f.bookings[i].CancelledAt = cancelledAt
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeRepo) GetBookedIntervals(ctx context.Context, courtID uuid.UUID, dayStart, dayEnd time.Time) ([]slots.Interval, error) {
	return f.intervals, nil
}

func (f *fakeRepo) GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	var out []Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) GetVenueBookingsForDay(ctx context.Context, venueID uuid.UUID, dayStart, dayEnd time.Time) ([]Booking, error) {
	return f.bookings, nil
}

func (f *fakeRepo) GetVenueDaySummary(ctx context.Context, venueID uuid.UUID, dayStart, dayEnd time.Time) (*OwnerDaySummary, error) {
	return &OwnerDaySummary{VenueID: venueID.String()}, nil
}

// fakeVenueService serves one venue and one court; unused methods panic via
// the embedded nil interface.
type fakeVenueService struct {
	venues.Service
	venue *venues.Venue
	court *venues.Court
}

func (f *fakeVenueService) GetVenueModel(ctx context.Context, id uuid.UUID) (*venues.Venue, error) {
	if f.venue == nil || f.venue.ID != id {
		return nil, venues.ErrVenueNotFound
	}
	return f.venue, nil
}

func (f *fakeVenueService) GetCourtModel(ctx context.Context, id uuid.UUID) (*venues.Court, error) {
	if f.court == nil || f.court.ID != id {
		return nil, venues.ErrCourtNotFound
	}
	return f.court, nil
}

// fakeSelections keeps a single draft in memory.
type fakeSelections struct {
	tuple slots.Tuple
	hours []int
}

func (f *fakeSelections) Get(ctx context.Context, userID string, tuple slots.Tuple) (slots.Selection, error) {
	if tuple != f.tuple {
		return slots.Selection{}, nil
	}
	return slots.NewSelection(f.hours)
}

func (f *fakeSelections) Toggle(ctx context.Context, userID string, tuple slots.Tuple, hour int) (slots.Selection, error) {
	if tuple != f.tuple {
		f.tuple = tuple
		f.hours = nil
	}
	sel, err := slots.NewSelection(f.hours)
	if err != nil {
		return slots.Selection{}, err
	}
	if err := sel.Toggle(hour); err != nil {
		return slots.Selection{}, err
	}
	f.hours = sel.Hours()
	return sel, nil
}

func (f *fakeSelections) Clear(ctx context.Context, userID string) error {
	f.hours = nil
	return nil
}

// noopCache misses every read and swallows every write.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest interface{}) error { return cache.ErrCacheMiss }
func (noopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (noopCache) Delete(ctx context.Context, key string) error            { return nil }
func (noopCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (noopCache) Exists(ctx context.Context, key string) bool             { return false }
func (noopCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	return fmt.Errorf("not implemented")
}
func (noopCache) Ping(ctx context.Context) error { return nil }

type testFixture struct {
	svc     Service
	repo    *fakeRepo
	sel     *fakeSelections
	venueID uuid.UUID
	courtID uuid.UUID
	userID  uuid.UUID
	ownerID uuid.UUID
}

func newFixture(t *testing.T, now time.Time) *testFixture {
	t.Helper()

	venueID := uuid.New()
	courtID := uuid.New()
	ownerID := uuid.New()

	venue := &venues.Venue{
		ID:        venueID,
		OwnerID:   ownerID,
		Name:      "Turf Arena",
		Timezone:  "Asia/Kolkata",
		OpenHour:  6,
		CloseHour: 23,
		IsActive:  true,
		SportPrices: []venues.SportPrice{
			{VenueID: venueID, Sport: "football", PricePerHour: 1200},
		},
	}
	court := &venues.Court{
		ID:       courtID,
		VenueID:  venueID,
		Sport:    "football",
		Name:     "Turf 1",
		IsActive: true,
	}

	repo := &fakeRepo{}
	sel := &fakeSelections{}

	svc := NewService(repo, &fakeVenueService{venue: venue, court: court}, sel, noopCache{}, nil, logger.New())
	svc.(*service).now = func() time.Time { return now }

	return &testFixture{
		svc:     svc,
		repo:    repo,
		sel:     sel,
		venueID: venueID,
		courtID: courtID,
		userID:  uuid.New(),
		ownerID: ownerID,
	}
}

func TestConfirmBooking_BuildsWindowFromSelection(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, loc)
	f := newFixture(t, now)

	req := ConfirmBookingRequest{
		VenueID: f.venueID.String(),
		Sport:   "football",
		CourtID: f.courtID.String(),
		Date:    "2026-03-14",
	}
	f.sel.tuple = slots.Tuple{VenueID: req.VenueID, Sport: "football", CourtID: req.CourtID, Date: req.Date}
	f.sel.hours = []int{18, 19, 20}

	resp, err := f.svc.ConfirmBooking(context.Background(), f.userID, req)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.DurationHours)
	assert.Equal(t, 3600.0, resp.Amount)
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.Equal(t, "Night", resp.SlotType)
	assert.Regexp(t, regexp.MustCompile(`^PBX-\d{8}-[A-Z]{6}$`), resp.BookingRef)

	wantStart := time.Date(2026, 3, 14, 18, 0, 0, 0, loc).UTC()
	assert.True(t, resp.StartTime.Equal(wantStart))
	assert.True(t, resp.EndTime.Equal(wantStart.Add(3*time.Hour)))

	assert.Empty(t, f.sel.hours, "draft should be cleared after confirmation")
}

func TestConfirmBooking_EmptySelection(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	f := newFixture(t, time.Date(2026, 3, 14, 9, 0, 0, 0, loc))

	_, err := f.svc.ConfirmBooking(context.Background(), f.userID, ConfirmBookingRequest{
		VenueID: f.venueID.String(),
		Sport:   "football",
		CourtID: f.courtID.String(),
		Date:    "2026-03-14",
	})
	assert.ErrorIs(t, err, slots.ErrEmptySelection)
}

func TestConfirmBooking_ConflictSurfaces(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, loc)
	f := newFixture(t, now)

	existingStart := time.Date(2026, 3, 14, 18, 0, 0, 0, loc).UTC()
	f.repo.bookings = append(f.repo.bookings, Booking{
		ID:        uuid.New(),
		CourtID:   f.courtID,
		Status:    StatusConfirmed,
		StartTime: existingStart,
		EndTime:   existingStart.Add(2 * time.Hour),
	})

	req := ConfirmBookingRequest{
		VenueID: f.venueID.String(),
		Sport:   "football",
		CourtID: f.courtID.String(),
		Date:    "2026-03-14",
	}
	f.sel.tuple = slots.Tuple{VenueID: req.VenueID, Sport: "football", CourtID: req.CourtID, Date: req.Date}
	f.sel.hours = []int{19, 20}

	_, err := f.svc.ConfirmBooking(context.Background(), f.userID, req)
	assert.ErrorIs(t, err, ErrBookingConflict)
}

func TestToggleSlot_RejectsBookedHour(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, loc)
	f := newFixture(t, now)

	bookedStart := time.Date(2026, 3, 14, 18, 0, 0, 0, loc).UTC()
	f.repo.intervals = []slots.Interval{{Start: bookedStart, End: bookedStart.Add(time.Hour)}}

	req := ToggleSlotRequest{
		VenueID: f.venueID.String(),
		Sport:   "football",
		CourtID: f.courtID.String(),
		Date:    "2026-03-14",
		Hour:    18,
	}
	_, err := f.svc.ToggleSlot(context.Background(), f.userID.String(), req)
	assert.ErrorIs(t, err, slots.ErrSlotUnavailable)

	// Neighboring free hour goes through
	req.Hour = 19
	resp, err := f.svc.ToggleSlot(context.Background(), f.userID.String(), req)
	require.NoError(t, err)
	assert.Equal(t, []int{19}, resp.SelectedHours)
	assert.Equal(t, 1200.0, resp.TotalAmount)
}

func TestToggleSlot_RejectsPastHour(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, loc)
	f := newFixture(t, now)

	_, err := f.svc.ToggleSlot(context.Background(), f.userID.String(), ToggleSlotRequest{
		VenueID: f.venueID.String(),
		Sport:   "football",
		CourtID: f.courtID.String(),
		Date:    "2026-03-14",
		Hour:    10,
	})
	assert.ErrorIs(t, err, slots.ErrSlotUnavailable)
}

func TestCancelBooking_OwnershipAndTiming(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, loc)
	f := newFixture(t, now)

	start := time.Date(2026, 3, 14, 18, 0, 0, 0, loc).UTC()
	booking := Booking{
		ID:        uuid.New(),
		UserID:    f.userID,
		VenueID:   f.venueID,
		CourtID:   f.courtID,
		Status:    StatusConfirmed,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
	f.repo.bookings = append(f.repo.bookings, booking)

	err := f.svc.CancelBooking(context.Background(), booking.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotBookingOwner)

	err = f.svc.CancelBooking(context.Background(), booking.ID, f.userID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, f.repo.bookings[0].Status)

	err = f.svc.CancelBooking(context.Background(), booking.ID, f.userID)
	assert.ErrorIs(t, err, ErrBookingAlreadyCancelled)
}

func TestCancelBooking_AfterStart(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	now := time.Date(2026, 3, 14, 19, 0, 0, 0, loc)
	f := newFixture(t, now)

	start := time.Date(2026, 3, 14, 18, 0, 0, 0, loc).UTC()
	booking := Booking{
		ID:        uuid.New(),
		UserID:    f.userID,
		Status:    StatusConfirmed,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	}
	f.repo.bookings = append(f.repo.bookings, booking)

	err := f.svc.CancelBooking(context.Background(), booking.ID, f.userID)
	assert.ErrorIs(t, err, ErrBookingAlreadyStarted)
}

func TestCancelBookingByOwner(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	now := time.Date(2026, 3, 14, 19, 0, 0, 0, loc)
	f := newFixture(t, now)

	// Already underway, so the booking user could no longer cancel it
	start := time.Date(2026, 3, 14, 18, 0, 0, 0, loc).UTC()
	booking := Booking{
		ID:        uuid.New(),
		UserID:    f.userID,
		VenueID:   f.venueID,
		CourtID:   f.courtID,
		Status:    StatusConfirmed,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	}
	f.repo.bookings = append(f.repo.bookings, booking)

	err := f.svc.CancelBookingByOwner(context.Background(), f.venueID.String(), booking.ID, uuid.New())
	assert.ErrorIs(t, err, venues.ErrNotVenueOwner)

	err = f.svc.CancelBookingByOwner(context.Background(), f.venueID.String(), booking.ID, f.ownerID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, f.repo.bookings[0].Status)
}

func TestGetAvailability_GridAndOverlay(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, loc)
	f := newFixture(t, now)

	bookedStart := time.Date(2026, 3, 14, 14, 0, 0, 0, loc).UTC()
	f.repo.intervals = []slots.Interval{{Start: bookedStart, End: bookedStart.Add(2 * time.Hour)}}

	query := AvailabilityQuery{
		VenueID: f.venueID.String(),
		Sport:   "football",
		CourtID: f.courtID.String(),
		Date:    "2026-03-14",
	}
	f.sel.tuple = slots.Tuple{VenueID: query.VenueID, Sport: "football", CourtID: query.CourtID, Date: query.Date}
	f.sel.hours = []int{17, 18}

	resp, err := f.svc.GetAvailability(context.Background(), f.userID.String(), query)
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 18) // hours 6 through 23
	assert.Equal(t, 1200.0, resp.PricePerHour)
	assert.Equal(t, []int{17, 18}, resp.SelectedHours)

	byHour := make(map[int]slots.Status)
	for _, ss := range resp.Slots {
		byHour[ss.Slot.Hour] = ss.Status
	}
	assert.Equal(t, slots.StatusPast, byHour[9])
	assert.Equal(t, slots.StatusAvailable, byHour[10])
	assert.Equal(t, slots.StatusBooked, byHour[14])
	assert.Equal(t, slots.StatusBooked, byHour[15])
	assert.Equal(t, slots.StatusAvailable, byHour[16])
}

func TestBookingStatusTransitions(t *testing.T) {
	assert.True(t, StatusConfirmed.CanBeCancelled())
	assert.False(t, StatusCancelled.CanBeCancelled())
	assert.False(t, StatusCompleted.CanBeCancelled())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, Status("UNKNOWN").IsValid())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 3, CalculateTotalPages(25, 10))
	assert.Equal(t, 1, CalculateTotalPages(1, 10))
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
}

func TestIsExclusionViolation(t *testing.T) {
	assert.True(t, isExclusionViolation(errors.New(`ERROR: conflicting key value violates exclusion constraint "no_overlapping_bookings" (SQLSTATE 23P01)`)))
	assert.False(t, isExclusionViolation(errors.New("connection refused")))
	assert.False(t, isExclusionViolation(nil))
}

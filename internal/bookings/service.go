package bookings

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"playbox/internal/shared/constants"
	"playbox/internal/slots"
	"playbox/internal/venues"
	"playbox/pkg/cache"
	"playbox/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrNotBookingOwner         = errors.New("booking does not belong to user")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
	ErrBookingAlreadyStarted   = errors.New("booking window has already started")
	ErrCourtMismatch           = errors.New("court does not belong to the requested venue and sport")
)

// EventPublisher pushes booking lifecycle events to the notification
// pipeline. Kept as a local interface so this package never imports the
// Kafka layer directly.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, booking *Booking, venueName string) error
	PublishBookingCancelled(ctx context.Context, booking *Booking, venueName string) error
}

// Service interface defines the contract for the availability and booking flow
type Service interface {
	// Availability and draft selection
	GetAvailability(ctx context.Context, userID string, query AvailabilityQuery) (*AvailabilityResponse, error)
	ToggleSlot(ctx context.Context, userID string, req ToggleSlotRequest) (*SelectionResponse, error)
	ClearSelection(ctx context.Context, userID string) error

	// Booking lifecycle
	ConfirmBooking(ctx context.Context, userID uuid.UUID, req ConfirmBookingRequest) (*BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) error
	CancelBookingByOwner(ctx context.Context, venueID string, bookingID, ownerID uuid.UUID) error
	GetBooking(ctx context.Context, bookingID, userID uuid.UUID) (*BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) (*PaginatedBookings, error)

	// Owner views
	GetOwnerDayView(ctx context.Context, venueID string, ownerID uuid.UUID, date string) (*OwnerDayView, error)
	GetOwnerDaySummary(ctx context.Context, venueID string, ownerID uuid.UUID, date string) (*OwnerDaySummary, error)
}

type service struct {
	repo         Repository
	venueService venues.Service
	selections   SelectionStore
	cache        cache.Service
	publisher    EventPublisher
	log          *logger.Logger
	now          func() time.Time
}

// NewService creates the booking service. publisher may be nil when the
// notification pipeline is disabled.
func NewService(repo Repository, venueService venues.Service, selections SelectionStore, cacheService cache.Service, publisher EventPublisher, log *logger.Logger) Service {
	return &service{
		repo:         repo,
		venueService: venueService,
		selections:   selections,
		cache:        cacheService,
		publisher:    publisher,
		log:          log,
		now:          time.Now,
	}
}

// bookingScope bundles the validated venue, court and price for one
// availability tuple.
type bookingScope struct {
	venue        *venues.Venue
	court        *venues.Court
	loc          *time.Location
	date         time.Time
	pricePerHour float64
	tuple        slots.Tuple
}

// resolveScope validates a raw tuple against the catalog: the venue and
// court must exist and be active, the court must belong to the venue and
// sport, and the venue must price the sport.
func (s *service) resolveScope(ctx context.Context, venueID, sport, courtID, date string) (*bookingScope, error) {
	vID, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}
	cID, err := uuid.Parse(courtID)
	if err != nil {
		return nil, fmt.Errorf("invalid court ID: %w", err)
	}

	venue, err := s.venueService.GetVenueModel(ctx, vID)
	if err != nil {
		return nil, err
	}
	if !venue.IsActive {
		return nil, venues.ErrVenueNotFound
	}

	court, err := s.venueService.GetCourtModel(ctx, cID)
	if err != nil {
		return nil, err
	}
	if court.VenueID != venue.ID || court.Sport != sport || !court.IsActive {
		return nil, ErrCourtMismatch
	}

	var pricePerHour float64
	found := false
	for _, sp := range venue.SportPrices {
		if sp.Sport == sport {
			pricePerHour = sp.PricePerHour
			found = true
			break
		}
	}
	if !found {
		return nil, venues.ErrSportNotOffered
	}

	loc := venue.Location()
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	return &bookingScope{
		venue:        venue,
		court:        court,
		loc:          loc,
		date:         day,
		pricePerHour: pricePerHour,
		tuple: slots.Tuple{
			VenueID: venue.ID.String(),
			Sport:   sport,
			CourtID: court.ID.String(),
			Date:    date,
		},
	}, nil
}

// dayBounds returns the UTC instants bracketing the venue-local day.
func (sc *bookingScope) dayBounds() (time.Time, time.Time) {
	start := slots.DayStart(sc.date, sc.loc)
	return start.UTC(), start.Add(24 * time.Hour).UTC()
}

// classifiedSlots builds the slot grid for the scope, fetching booked
// intervals and classifying each hour against them and the clock.
func (s *service) classifiedSlots(ctx context.Context, sc *bookingScope) ([]slots.SlotStatus, []slots.Interval, error) {
	dayStart, dayEnd := sc.dayBounds()
	intervals, err := s.repo.GetBookedIntervals(ctx, sc.court.ID, dayStart, dayEnd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch booked intervals: %w", err)
	}

	planner := slots.NewPlanner(sc.venue.OpenHour, sc.venue.CloseHour, sc.loc, s.now)
	planner.SetTuple(sc.tuple, sc.date)
	if err := planner.ApplyIntervals(sc.tuple, intervals); err != nil {
		return nil, nil, err
	}

	grid, err := planner.Slots()
	if err != nil {
		return nil, nil, err
	}
	return grid, intervals, nil
}

func (s *service) GetAvailability(ctx context.Context, userID string, query AvailabilityQuery) (*AvailabilityResponse, error) {
	sc, err := s.resolveScope(ctx, query.VenueID, query.Sport, query.CourtID, query.Date)
	if err != nil {
		return nil, err
	}

	// The grid is cached without the caller's draft; the overlay is
	// per-user and fetched fresh every time.
	cacheKey := constants.BuildAvailabilityGridKey(query.VenueID, query.Sport, query.CourtID, query.Date)

	var grid []slots.SlotStatus
	if err := s.cache.Get(ctx, cacheKey, &grid); err != nil {
		grid, _, err = s.classifiedSlots(ctx, sc)
		if err != nil {
			return nil, err
		}
		_ = s.cache.Set(ctx, cacheKey, grid, constants.TTL_AVAILABILITY_GRID)
	}

	resp := &AvailabilityResponse{
		VenueID:      query.VenueID,
		Sport:        query.Sport,
		CourtID:      query.CourtID,
		Date:         query.Date,
		Timezone:     sc.venue.Timezone,
		PricePerHour: sc.pricePerHour,
		Slots:        grid,
	}

	if userID != "" {
		sel, err := s.selections.Get(ctx, userID, sc.tuple)
		if err == nil {
			resp.SelectedHours = sel.Hours()
		}
	}

	return resp, nil
}

func (s *service) ToggleSlot(ctx context.Context, userID string, req ToggleSlotRequest) (*SelectionResponse, error) {
	sc, err := s.resolveScope(ctx, req.VenueID, req.Sport, req.CourtID, req.Date)
	if err != nil {
		return nil, err
	}

	if req.Hour < sc.venue.OpenHour || req.Hour > sc.venue.CloseHour {
		return nil, slots.ErrSlotUnavailable
	}

	// Classification runs against a fresh snapshot, never the cached grid:
	// a stale grid must not let a just-booked hour into a draft.
	_, intervals, err := s.classifiedSlots(ctx, sc)
	if err != nil {
		return nil, err
	}

	slot := slots.Slot{Hour: req.Hour, Label: slots.Label(req.Hour)}
	if slots.Classify(slot, sc.date, s.now(), intervals, sc.loc) != slots.StatusAvailable {
		return nil, slots.ErrSlotUnavailable
	}

	sel, err := s.selections.Toggle(ctx, userID, sc.tuple, req.Hour)
	if err != nil {
		return nil, err
	}

	return &SelectionResponse{
		VenueID:       req.VenueID,
		Sport:         req.Sport,
		CourtID:       req.CourtID,
		Date:          req.Date,
		SelectedHours: sel.Hours(),
		DurationHours: sel.Len(),
		TotalAmount:   float64(sel.Len()) * sc.pricePerHour,
	}, nil
}

func (s *service) ClearSelection(ctx context.Context, userID string) error {
	return s.selections.Clear(ctx, userID)
}

func (s *service) ConfirmBooking(ctx context.Context, userID uuid.UUID, req ConfirmBookingRequest) (*BookingResponse, error) {
	sc, err := s.resolveScope(ctx, req.VenueID, req.Sport, req.CourtID, req.Date)
	if err != nil {
		return nil, err
	}

	sel, err := s.selections.Get(ctx, userID.String(), sc.tuple)
	if err != nil {
		return nil, err
	}
	if sel.IsEmpty() {
		return nil, slots.ErrEmptySelection
	}

	window, err := slots.BuildWindow(sel, sc.date, sc.loc)
	if err != nil {
		return nil, err
	}

	if !window.Start.After(s.now()) {
		return nil, slots.ErrSlotUnavailable
	}

	ref, err := generateBookingRef()
	if err != nil {
		return nil, fmt.Errorf("failed to generate booking reference: %w", err)
	}

	booking := &Booking{
		UserID:        userID,
		VenueID:       sc.venue.ID,
		CourtID:       sc.court.ID,
		Sport:         req.Sport,
		StartTime:     window.Start,
		EndTime:       window.End,
		DurationHours: window.DurationHours,
		SlotType:      window.SlotType(sc.loc),
		Amount:        float64(window.DurationHours) * sc.pricePerHour,
		Status:        StatusConfirmed,
		BookingRef:    ref,
	}

	if err := s.repo.CreateBookingWithConflictCheck(ctx, booking); err != nil {
		if errors.Is(err, ErrBookingConflict) {
			s.log.LogBookingConflict(ctx, sc.court.ID.String(), window.Start, window.End)
			return nil, ErrBookingConflict
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.log.LogBookingConfirmed(ctx, booking.ID.String(), sc.venue.ID.String(), userID.String())

	if err := s.selections.Clear(ctx, userID.String()); err != nil {
		s.log.ErrorWithContext(ctx, "failed to clear selection draft after booking", err, map[string]interface{}{"user_id": userID.String()})
	}

	s.invalidateAfterWrite(sc, userID)

	if s.publisher != nil {
		go func(b Booking, venueName string) {
			pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.publisher.PublishBookingConfirmed(pubCtx, &b, venueName); err != nil {
				s.log.ErrorWithContext(pubCtx, "failed to publish booking confirmed event", err, map[string]interface{}{"booking_id": b.ID.String()})
			}
		}(*booking, sc.venue.Name)
	}

	resp := s.toResponse(booking, sc.venue.Name, sc.court.Name, sc.loc)
	return &resp, nil
}

func (s *service) CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) error {
	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.UserID != userID {
		return ErrNotBookingOwner
	}
	if booking.HasStarted(s.now()) {
		return ErrBookingAlreadyStarted
	}

	return s.cancel(ctx, booking, userID)
}

// CancelBookingByOwner lets the venue owner cancel any booking at their
// venue, including one that has already started.
func (s *service) CancelBookingByOwner(ctx context.Context, venueID string, bookingID, ownerID uuid.UUID) error {
	vID, err := uuid.Parse(venueID)
	if err != nil {
		return fmt.Errorf("invalid venue ID: %w", err)
	}

	venue, err := s.venueService.GetVenueModel(ctx, vID)
	if err != nil {
		return err
	}
	if venue.OwnerID != ownerID {
		return venues.ErrNotVenueOwner
	}

	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}
	if booking.VenueID != venue.ID {
		return ErrBookingNotFound
	}

	return s.cancel(ctx, booking, ownerID)
}

// cancel flips a confirmed booking to cancelled, invalidates caches and
// publishes the event. Callers have already checked who may cancel.
func (s *service) cancel(ctx context.Context, booking *Booking, actorID uuid.UUID) error {
	if booking.IsCancelled() || !booking.Status.CanBeCancelled() {
		return ErrBookingAlreadyCancelled
	}

	now := s.now()
	if err := s.repo.UpdateBookingStatus(ctx, booking.ID, StatusCancelled, &now); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.log.LogBookingCancelled(ctx, booking.ID.String(), booking.VenueID.String(), actorID.String())

	venue, venueErr := s.venueService.GetVenueModel(ctx, booking.VenueID)
	venueName := ""
	if venueErr == nil {
		venueName = venue.Name
	}

	go func() {
		bg := context.Background()
		_ = s.cache.DeletePattern(bg, constants.PATTERN_INVALIDATE_AVAILABILITY)
		_ = s.cache.DeletePattern(bg, constants.PATTERN_INVALIDATE_BOOKINGS)
	}()

	if s.publisher != nil {
		booking.Status = StatusCancelled
		booking.CancelledAt = &now
		go func(b Booking, name string) {
			pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.publisher.PublishBookingCancelled(pubCtx, &b, name); err != nil {
				s.log.ErrorWithContext(pubCtx, "failed to publish booking cancelled event", err, map[string]interface{}{"booking_id": b.ID.String()})
			}
		}(*booking, venueName)
	}

	return nil
}

func (s *service) GetBooking(ctx context.Context, bookingID, userID uuid.UUID) (*BookingResponse, error) {
	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}

	venueName, courtName, loc := s.displayContext(ctx, booking)
	resp := s.toResponse(booking, venueName, courtName, loc)
	return &resp, nil
}

func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) (*PaginatedBookings, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	cacheable := query.Status == ""
	cacheKey := constants.BuildUserBookingsKey(userID.String(), query.Page)

	if cacheable {
		var cached PaginatedBookings
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	list, totalCount, err := s.repo.GetUserBookings(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	responses := make([]BookingResponse, len(list))
	for i := range list {
		venueName, courtName, loc := s.displayContext(ctx, &list[i])
		responses[i] = s.toResponse(&list[i], venueName, courtName, loc)
	}

	result := &PaginatedBookings{
		Bookings:   responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: CalculateTotalPages(totalCount, query.Limit),
	}

	if cacheable {
		_ = s.cache.Set(ctx, cacheKey, result, constants.TTL_USER_BOOKINGS)
	}

	return result, nil
}

func (s *service) GetOwnerDayView(ctx context.Context, venueID string, ownerID uuid.UUID, date string) (*OwnerDayView, error) {
	venue, loc, dayStart, dayEnd, err := s.resolveOwnerDay(ctx, venueID, ownerID, date)
	if err != nil {
		return nil, err
	}

	cacheKey := constants.BuildOwnerDayViewKey(venueID, date)
	var cached OwnerDayView
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	list, err := s.repo.GetVenueBookingsForDay(ctx, venue.ID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get day bookings: %w", err)
	}

	responses := make([]BookingResponse, len(list))
	for i := range list {
		courtName := ""
		if court, err := s.venueService.GetCourtModel(ctx, list[i].CourtID); err == nil {
			courtName = court.Name
		}
		responses[i] = s.toResponse(&list[i], venue.Name, courtName, loc)
	}

	view := &OwnerDayView{
		VenueID:  venueID,
		Date:     date,
		Bookings: responses,
	}

	_ = s.cache.Set(ctx, cacheKey, view, constants.TTL_OWNER_DAY_VIEW)
	return view, nil
}

func (s *service) GetOwnerDaySummary(ctx context.Context, venueID string, ownerID uuid.UUID, date string) (*OwnerDaySummary, error) {
	venue, _, dayStart, dayEnd, err := s.resolveOwnerDay(ctx, venueID, ownerID, date)
	if err != nil {
		return nil, err
	}

	cacheKey := constants.BuildOwnerDayStatsKey(venueID, date)
	var cached OwnerDaySummary
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	summary, err := s.repo.GetVenueDaySummary(ctx, venue.ID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get day summary: %w", err)
	}
	summary.Date = date

	// Capacity is active courts times bookable hours; the close hour is the
	// last bookable hour, so the window is inclusive on both ends.
	courts, err := s.venueService.GetCourts(ctx, venueID, "")
	if err == nil {
		capacity := int64(len(courts)) * int64(venue.CloseHour-venue.OpenHour+1)
		if free := capacity - summary.HoursBooked; free > 0 {
			summary.FreeSlotHours = free
		}
	}

	_ = s.cache.Set(ctx, cacheKey, summary, constants.TTL_OWNER_DAY_STATS)
	return summary, nil
}

func (s *service) resolveOwnerDay(ctx context.Context, venueID string, ownerID uuid.UUID, date string) (*venues.Venue, *time.Location, time.Time, time.Time, error) {
	vID, err := uuid.Parse(venueID)
	if err != nil {
		return nil, nil, time.Time{}, time.Time{}, fmt.Errorf("invalid venue ID: %w", err)
	}

	venue, err := s.venueService.GetVenueModel(ctx, vID)
	if err != nil {
		return nil, nil, time.Time{}, time.Time{}, err
	}
	if venue.OwnerID != ownerID {
		return nil, nil, time.Time{}, time.Time{}, venues.ErrNotVenueOwner
	}

	loc := venue.Location()
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, nil, time.Time{}, time.Time{}, fmt.Errorf("invalid date: %w", err)
	}

	dayStart := slots.DayStart(day, loc).UTC()
	return venue, loc, dayStart, dayStart.Add(24 * time.Hour), nil
}

// displayContext resolves names and the venue time zone for rendering a
// booking. Lookups go through the venue service's caches; a failed lookup
// degrades to empty names and UTC labels rather than failing the read.
func (s *service) displayContext(ctx context.Context, booking *Booking) (string, string, *time.Location) {
	venueName := ""
	loc := time.UTC

	if venue, err := s.venueService.GetVenueModel(ctx, booking.VenueID); err == nil {
		venueName = venue.Name
		loc = venue.Location()
	}

	courtName := ""
	if court, err := s.venueService.GetCourtModel(ctx, booking.CourtID); err == nil {
		courtName = court.Name
	}

	return venueName, courtName, loc
}

func (s *service) toResponse(b *Booking, venueName, courtName string, loc *time.Location) BookingResponse {
	localStart := b.StartTime.In(loc)
	localEnd := b.EndTime.In(loc)

	return BookingResponse{
		ID:            b.ID.String(),
		BookingRef:    b.BookingRef,
		VenueID:       b.VenueID.String(),
		VenueName:     venueName,
		CourtID:       b.CourtID.String(),
		CourtName:     courtName,
		Sport:         b.Sport,
		Date:          localStart.Format("2006-01-02"),
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		StartLabel:    slots.Label(localStart.Hour()),
		EndLabel:      slots.Label(localEnd.Hour()),
		DurationHours: b.DurationHours,
		SlotType:      b.SlotType,
		Amount:        b.Amount,
		Status:        b.Status.String(),
		CreatedAt:     b.CreatedAt,
		CancelledAt:   b.CancelledAt,
	}
}

func (s *service) invalidateAfterWrite(sc *bookingScope, userID uuid.UUID) {
	go func() {
		bg := context.Background()
		_ = s.cache.Delete(bg, constants.BuildAvailabilityGridKey(sc.tuple.VenueID, sc.tuple.Sport, sc.tuple.CourtID, sc.tuple.Date))
		_ = s.cache.Delete(bg, constants.BuildOwnerDayViewKey(sc.tuple.VenueID, sc.tuple.Date))
		_ = s.cache.Delete(bg, constants.BuildOwnerDayStatsKey(sc.tuple.VenueID, sc.tuple.Date))
		_ = s.cache.DeletePattern(bg, constants.CACHE_KEY_USER_BOOKINGS+userID.String()+":*")
	}()
}

// generateBookingRef builds a human-readable unique booking reference.
func generateBookingRef() (string, error) {
	timestamp := time.Now().Format("20060102")

	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomPart := make([]byte, 6)
	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[i] = letters[num.Int64()]
	}

	return fmt.Sprintf("PBX-%s-%s", timestamp, string(randomPart)), nil
}

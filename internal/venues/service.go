package venues

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"playbox/internal/shared/constants"
	"playbox/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrVenueNotFound          = errors.New("venue not found")
	ErrCourtNotFound          = errors.New("court not found")
	ErrNotVenueOwner          = errors.New("not the venue owner")
	ErrInvalidOperatingWindow = errors.New("invalid operating window")
	ErrInvalidTimezone        = errors.New("invalid timezone")
	ErrSportNotOffered        = errors.New("sport not offered by venue")
)

type Service interface {
	// Public browsing
	GetVenueByID(ctx context.Context, id string) (*VenueResponse, error)
	GetVenues(ctx context.Context, query VenueListQuery) (*PaginatedVenues, error)
	GetCourts(ctx context.Context, venueID, sport string) ([]CourtResponse, error)

	// Owner management
	CreateVenue(ctx context.Context, ownerID uuid.UUID, req CreateVenueRequest) (*VenueResponse, error)
	GetOwnerVenues(ctx context.Context, ownerID uuid.UUID) ([]VenueResponse, error)
	UpdateVenue(ctx context.Context, venueID string, ownerID uuid.UUID, req UpdateVenueRequest) (*VenueResponse, error)
	DeleteVenue(ctx context.Context, venueID string, ownerID uuid.UUID) error
	AddCourt(ctx context.Context, venueID string, ownerID uuid.UUID, req CreateCourtRequest) (*CourtResponse, error)
	UpdateCourt(ctx context.Context, venueID, courtID string, ownerID uuid.UUID, req UpdateCourtRequest) (*CourtResponse, error)
	RemoveCourt(ctx context.Context, venueID, courtID string, ownerID uuid.UUID) error
	SetSportPrice(ctx context.Context, venueID string, ownerID uuid.UUID, req SportPriceInput) error
	RemoveSportPrice(ctx context.Context, venueID, sport string, ownerID uuid.UUID) error

	// Used by the booking flow
	GetVenueModel(ctx context.Context, id uuid.UUID) (*Venue, error)
	GetCourtModel(ctx context.Context, id uuid.UUID) (*Court, error)
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

// validateOperatingWindow checks the daily booking grid bounds. CloseHour
// is the last bookable hour inclusive, so a 6/23 venue offers slots from
// 6 AM through 11 PM.
func validateOperatingWindow(openHour, closeHour int) error {
	if openHour < 0 || openHour > 23 || closeHour < 1 || closeHour > 23 {
		return ErrInvalidOperatingWindow
	}
	if openHour >= closeHour {
		return ErrInvalidOperatingWindow
	}
	return nil
}

func validateTimezone(tz string) error {
	if _, err := time.LoadLocation(tz); err != nil {
		return ErrInvalidTimezone
	}
	return nil
}

// Public browsing

func (s *service) GetVenueByID(ctx context.Context, id string) (*VenueResponse, error) {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}

	cacheKey := constants.BuildVenueDetailKey(id)
	var cached VenueResponse
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	venue, err := s.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	resp := venue.ToResponse()
	_ = s.cache.Set(ctx, cacheKey, resp, constants.TTL_VENUE_DETAIL)
	return &resp, nil
}

func (s *service) GetVenues(ctx context.Context, query VenueListQuery) (*PaginatedVenues, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	// Only unfiltered or city-filtered listings are cached; sport and
	// search combinations are too sparse to be worth the invalidation.
	cacheable := query.Sport == "" && query.Search == ""
	cacheKey := constants.BuildVenueListKey(query.Page, query.Limit, strings.ToLower(query.City))

	if cacheable {
		var cached PaginatedVenues
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	list, totalCount, err := s.repo.GetVenues(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get venues: %w", err)
	}

	responses := make([]VenueResponse, len(list))
	for i := range list {
		responses[i] = list[i].ToResponse()
	}

	result := &PaginatedVenues{
		Venues:     responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}

	if cacheable {
		_ = s.cache.Set(ctx, cacheKey, result, constants.TTL_VENUES_LIST)
	}

	return result, nil
}

func (s *service) GetCourts(ctx context.Context, venueID, sport string) ([]CourtResponse, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}

	cacheKey := constants.BuildVenueCourtsKey(venueID, sport)
	var cached []CourtResponse
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	courts, err := s.repo.GetCourts(ctx, id, sport)
	if err != nil {
		return nil, fmt.Errorf("failed to get courts: %w", err)
	}

	responses := make([]CourtResponse, len(courts))
	for i := range courts {
		responses[i] = courts[i].ToResponse()
	}

	_ = s.cache.Set(ctx, cacheKey, responses, constants.TTL_VENUE_COURTS)
	return responses, nil
}

// Owner management

func (s *service) CreateVenue(ctx context.Context, ownerID uuid.UUID, req CreateVenueRequest) (*VenueResponse, error) {
	timezone := req.Timezone
	if timezone == "" {
		timezone = "Asia/Kolkata"
	}
	if err := validateTimezone(timezone); err != nil {
		return nil, err
	}

	openHour, closeHour := 6, 23
	if req.OpenHour != nil {
		openHour = *req.OpenHour
	}
	if req.CloseHour != nil {
		closeHour = *req.CloseHour
	}
	if err := validateOperatingWindow(openHour, closeHour); err != nil {
		return nil, err
	}

	venue := &Venue{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Address:     strings.TrimSpace(req.Address),
		City:        strings.TrimSpace(req.City),
		Timezone:    timezone,
		OpenHour:    openHour,
		CloseHour:   closeHour,
		Images:      req.Images,
		IsActive:    true,
	}

	for _, sp := range req.SportPrices {
		venue.SportPrices = append(venue.SportPrices, SportPrice{
			Sport:        strings.TrimSpace(sp.Sport),
			PricePerHour: sp.PricePerHour,
		})
	}

	if err := s.repo.CreateVenue(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	s.invalidateVenueCache("")

	resp := venue.ToResponse()
	return &resp, nil
}

func (s *service) GetOwnerVenues(ctx context.Context, ownerID uuid.UUID) ([]VenueResponse, error) {
	list, err := s.repo.GetVenuesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner venues: %w", err)
	}

	responses := make([]VenueResponse, len(list))
	for i := range list {
		responses[i] = list[i].ToResponse()
	}
	return responses, nil
}

func (s *service) UpdateVenue(ctx context.Context, venueID string, ownerID uuid.UUID, req UpdateVenueRequest) (*VenueResponse, error) {
	venue, err := s.requireOwnedVenue(ctx, venueID, ownerID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Address != nil {
		updates["address"] = strings.TrimSpace(*req.Address)
	}
	if req.City != nil {
		updates["city"] = strings.TrimSpace(*req.City)
	}
	if req.Timezone != nil {
		if err := validateTimezone(*req.Timezone); err != nil {
			return nil, err
		}
		updates["timezone"] = *req.Timezone
	}

	openHour, closeHour := venue.OpenHour, venue.CloseHour
	if req.OpenHour != nil {
		openHour = *req.OpenHour
		updates["open_hour"] = openHour
	}
	if req.CloseHour != nil {
		closeHour = *req.CloseHour
		updates["close_hour"] = closeHour
	}
	if req.OpenHour != nil || req.CloseHour != nil {
		if err := validateOperatingWindow(openHour, closeHour); err != nil {
			return nil, err
		}
	}

	if req.Images != nil {
		updates["images"] = req.Images
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateVenue(ctx, venue.ID, updates); err != nil {
			return nil, fmt.Errorf("failed to update venue: %w", err)
		}
		s.invalidateVenueCache(venueID)
	}

	updated, err := s.repo.GetVenueByID(ctx, venue.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload venue: %w", err)
	}

	resp := updated.ToResponse()
	return &resp, nil
}

func (s *service) DeleteVenue(ctx context.Context, venueID string, ownerID uuid.UUID) error {
	venue, err := s.requireOwnedVenue(ctx, venueID, ownerID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteVenue(ctx, venue.ID); err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}

	s.invalidateVenueCache(venueID)
	return nil
}

func (s *service) AddCourt(ctx context.Context, venueID string, ownerID uuid.UUID, req CreateCourtRequest) (*CourtResponse, error) {
	venue, err := s.requireOwnedVenue(ctx, venueID, ownerID)
	if err != nil {
		return nil, err
	}

	// Courts can only exist for sports the venue prices
	offered := false
	for _, sp := range venue.SportPrices {
		if sp.Sport == req.Sport {
			offered = true
			break
		}
	}
	if !offered {
		return nil, ErrSportNotOffered
	}

	court := &Court{
		VenueID:  venue.ID,
		Sport:    strings.TrimSpace(req.Sport),
		Name:     strings.TrimSpace(req.Name),
		IsActive: true,
	}

	if err := s.repo.CreateCourt(ctx, court); err != nil {
		return nil, fmt.Errorf("failed to create court: %w", err)
	}

	s.invalidateVenueCache(venueID)

	resp := court.ToResponse()
	return &resp, nil
}

func (s *service) UpdateCourt(ctx context.Context, venueID, courtID string, ownerID uuid.UUID, req UpdateCourtRequest) (*CourtResponse, error) {
	if _, err := s.requireOwnedVenue(ctx, venueID, ownerID); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(courtID)
	if err != nil {
		return nil, fmt.Errorf("invalid court ID: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateCourt(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCourtNotFound
			}
			return nil, fmt.Errorf("failed to update court: %w", err)
		}
		s.invalidateVenueCache(venueID)
	}

	court, err := s.repo.GetCourtByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("failed to reload court: %w", err)
	}

	resp := court.ToResponse()
	return &resp, nil
}

func (s *service) RemoveCourt(ctx context.Context, venueID, courtID string, ownerID uuid.UUID) error {
	if _, err := s.requireOwnedVenue(ctx, venueID, ownerID); err != nil {
		return err
	}

	id, err := uuid.Parse(courtID)
	if err != nil {
		return fmt.Errorf("invalid court ID: %w", err)
	}

	if err := s.repo.DeleteCourt(ctx, id); err != nil {
		return fmt.Errorf("failed to delete court: %w", err)
	}

	s.invalidateVenueCache(venueID)
	return nil
}

func (s *service) SetSportPrice(ctx context.Context, venueID string, ownerID uuid.UUID, req SportPriceInput) error {
	venue, err := s.requireOwnedVenue(ctx, venueID, ownerID)
	if err != nil {
		return err
	}

	price := &SportPrice{
		VenueID:      venue.ID,
		Sport:        strings.TrimSpace(req.Sport),
		PricePerHour: req.PricePerHour,
	}

	if err := s.repo.UpsertSportPrice(ctx, price); err != nil {
		return fmt.Errorf("failed to set sport price: %w", err)
	}

	s.invalidateVenueCache(venueID)
	return nil
}

func (s *service) RemoveSportPrice(ctx context.Context, venueID, sport string, ownerID uuid.UUID) error {
	venue, err := s.requireOwnedVenue(ctx, venueID, ownerID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteSportPrice(ctx, venue.ID, sport); err != nil {
		return fmt.Errorf("failed to remove sport price: %w", err)
	}

	s.invalidateVenueCache(venueID)
	return nil
}

// GetVenueModel returns the raw venue row for the booking flow, which
// needs the timezone and operating window rather than a response DTO.
func (s *service) GetVenueModel(ctx context.Context, id uuid.UUID) (*Venue, error) {
	venue, err := s.repo.GetVenueByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	return venue, nil
}

func (s *service) GetCourtModel(ctx context.Context, id uuid.UUID) (*Court, error) {
	court, err := s.repo.GetCourtByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("failed to get court: %w", err)
	}
	return court, nil
}

func (s *service) requireOwnedVenue(ctx context.Context, venueID string, ownerID uuid.UUID) (*Venue, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}

	venue, err := s.repo.GetVenueByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	if venue.OwnerID != ownerID {
		return nil, ErrNotVenueOwner
	}

	return venue, nil
}

func (s *service) invalidateVenueCache(venueID string) {
	go func() {
		ctx := context.Background()
		_ = s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_VENUES_ALL)
		if venueID != "" {
			_ = s.cache.Delete(ctx, constants.BuildVenueDetailKey(venueID))
		}
	}()
}

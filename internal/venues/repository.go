package venues

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// Venues
	CreateVenue(ctx context.Context, venue *Venue) error
	GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	GetVenues(ctx context.Context, query VenueListQuery) ([]Venue, int64, error)
	GetVenuesByOwner(ctx context.Context, ownerID uuid.UUID) ([]Venue, error)
	UpdateVenue(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteVenue(ctx context.Context, id uuid.UUID) error

	// Courts
	CreateCourt(ctx context.Context, court *Court) error
	GetCourtByID(ctx context.Context, id uuid.UUID) (*Court, error)
	GetCourts(ctx context.Context, venueID uuid.UUID, sport string) ([]Court, error)
	UpdateCourt(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteCourt(ctx context.Context, id uuid.UUID) error

	// Sport pricing
	UpsertSportPrice(ctx context.Context, price *SportPrice) error
	DeleteSportPrice(ctx context.Context, venueID uuid.UUID, sport string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Venues

func (r *repository) CreateVenue(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *repository) GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).
		Preload("Courts").
		Preload("SportPrices").
		Where("id = ?", id).
		First(&venue).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *repository) GetVenues(ctx context.Context, query VenueListQuery) ([]Venue, int64, error) {
	var list []Venue
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&Venue{}).Where("venues.is_active = ?", true)

	if query.City != "" {
		db = db.Where("LOWER(city) = ?", strings.ToLower(query.City))
	}

	if query.Sport != "" {
		db = db.Joins("JOIN sport_prices ON sport_prices.venue_id = venues.id").
			Where("sport_prices.sport = ?", query.Sport)
	}

	if query.Search != "" {
		searchTerm := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(venues.name) LIKE ? OR LOWER(venues.description) LIKE ?", searchTerm, searchTerm)
	}

	if err := db.Distinct("venues.id").Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}
	offset := (query.Page - 1) * query.Limit

	err := db.Distinct().
		Preload("SportPrices").
		Order("venues.created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&list).Error

	return list, totalCount, err
}

func (r *repository) GetVenuesByOwner(ctx context.Context, ownerID uuid.UUID) ([]Venue, error) {
	var list []Venue
	err := r.db.WithContext(ctx).
		Preload("Courts").
		Preload("SportPrices").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) UpdateVenue(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&Venue{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&Court{}).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", id).Delete(&SportPrice{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Venue{}).Error
	})
}

// Courts

func (r *repository) CreateCourt(ctx context.Context, court *Court) error {
	return r.db.WithContext(ctx).Create(court).Error
}

func (r *repository) GetCourtByID(ctx context.Context, id uuid.UUID) (*Court, error) {
	var court Court
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&court).Error
	if err != nil {
		return nil, err
	}
	return &court, nil
}

func (r *repository) GetCourts(ctx context.Context, venueID uuid.UUID, sport string) ([]Court, error) {
	var list []Court
	db := r.db.WithContext(ctx).Where("venue_id = ? AND is_active = ?", venueID, true)
	if sport != "" {
		db = db.Where("sport = ?", sport)
	}
	err := db.Order("name ASC").Find(&list).Error
	return list, err
}

func (r *repository) UpdateCourt(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&Court{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteCourt(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Court{}).Error
}

// Sport pricing

func (r *repository) UpsertSportPrice(ctx context.Context, price *SportPrice) error {
	var existing SportPrice
	err := r.db.WithContext(ctx).
		Where("venue_id = ? AND sport = ?", price.VenueID, price.Sport).
		First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).Model(&existing).
			Update("price_per_hour", price.PricePerHour).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(price).Error
}

func (r *repository) DeleteSportPrice(ctx context.Context, venueID uuid.UUID, sport string) error {
	return r.db.WithContext(ctx).
		Where("venue_id = ? AND sport = ?", venueID, sport).
		Delete(&SportPrice{}).Error
}

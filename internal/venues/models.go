package venues

import (
	"time"

	"github.com/google/uuid"
)

// Venue is a bookable sports facility. Slot times are interpreted in the
// venue's timezone; OpenHour/CloseHour bound the daily booking grid.
type Venue struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:150"`
	Description string    `json:"description" gorm:"size:1000"`
	Address     string    `json:"address" gorm:"not null;size:300"`
	City        string    `json:"city" gorm:"not null;size:100;index"`
	Timezone    string    `json:"timezone" gorm:"not null;default:'Asia/Kolkata';size:50"`
	OpenHour    int       `json:"open_hour" gorm:"not null;default:6"`
	CloseHour   int       `json:"close_hour" gorm:"not null;default:23"`
	Images      []string  `json:"images" gorm:"serializer:json"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Courts      []Court      `json:"courts,omitempty" gorm:"foreignKey:VenueID"`
	SportPrices []SportPrice `json:"sport_prices,omitempty" gorm:"foreignKey:VenueID"`
}

// Court is one playable surface within a venue, tied to a single sport.
type Court struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	VenueID   uuid.UUID `json:"venue_id" gorm:"type:uuid;not null;index"`
	Sport     string    `json:"sport" gorm:"not null;size:100;index"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SportPrice is the hourly rate a venue charges for one sport.
type SportPrice struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	VenueID      uuid.UUID `json:"venue_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_venue_sport_price"`
	Sport        string    `json:"sport" gorm:"not null;size:100;uniqueIndex:idx_venue_sport_price"`
	PricePerHour float64   `json:"price_per_hour" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Location resolves the venue's IANA timezone, falling back to UTC on a
// bad value so slot math never panics.
func (v *Venue) Location() *time.Location {
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (Venue) TableName() string {
	return "venues"
}

func (Court) TableName() string {
	return "courts"
}

func (SportPrice) TableName() string {
	return "sport_prices"
}

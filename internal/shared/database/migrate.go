package database

import (
	"playbox/internal/bookings"
	"playbox/internal/sports"
	"playbox/internal/users"
	"playbox/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&sports.Sport{},
		&venues.Venue{},
		&venues.Court{},
		&venues.SportPrice{},
		&bookings.Booking{},
	)
}

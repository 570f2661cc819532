package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// Exclusion constraint: no two confirmed bookings on the same court may
	// overlap in time. Half-open ranges, so back-to-back bookings are fine.
	err := db.Exec(`
		CREATE EXTENSION IF NOT EXISTS btree_gist;
	`).Error
	if err != nil {
		return err
	}

	err = db.Exec(`
		ALTER TABLE bookings
		ADD CONSTRAINT IF NOT EXISTS no_overlapping_bookings
		EXCLUDE USING gist (
			court_id WITH =,
			tstzrange(start_time, end_time, '[)') WITH &&
		) WHERE (status = 'CONFIRMED');
	`).Error
	if err != nil {
		return err
	}

	// Index for day-grid availability queries
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_bookings_court_start
		ON bookings (court_id, start_time);
	`).Error
	if err != nil {
		return err
	}

	// Index for owner day views across a venue
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_bookings_venue_start
		ON bookings (venue_id, start_time);
	`).Error
	if err != nil {
		return err
	}

	return nil
}

package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the PlayBox application
// Pattern: playbox:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG   = 24 * time.Hour // 24 hours - for the sports catalog
	TTL_STATIC_MEDIUM = 12 * time.Hour // 12 hours - for venue timezone/operating hours
	TTL_STATIC_SHORT  = 6 * time.Hour  // 6 hours - for user profiles
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_LONG   = 4 * time.Hour    // 4 hours - for venue court layouts
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // 2 hours - for venue details
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour    // 1 hour - for venue listings
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // 15 minutes - for filtered searches
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // 10 minutes - for owner day summaries
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // 5 minutes - for booking history pages
	TTL_DYNAMIC_QUICK  = 2 * time.Minute  // 2 minutes - for slot availability grids
)

// Highly Dynamic (Micro TTL: real-time sensitive)
const (
	TTL_REALTIME_MEDIUM = 1 * time.Minute  // 1 minute - for day occupancy counts
	TTL_REALTIME_SHORT  = 30 * time.Second // 30 seconds - for live conflict checks
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "playbox"
)

// ================== VENUES MODULE ==================

// Venue Cache Keys
const (
	// Venue listings and searches
	CACHE_KEY_VENUES_LIST     = CACHE_PREFIX + ":venues:list"     // + :page:X:limit:Y:city:Z
	CACHE_KEY_VENUES_BY_SPORT = CACHE_PREFIX + ":venues:by_sport" // + :sport:X:page:Y
	CACHE_KEY_VENUES_SEARCH   = CACHE_PREFIX + ":venues:search"   // + :query:X:page:Y

	// Individual venue details
	CACHE_KEY_VENUE_DETAIL = CACHE_PREFIX + ":venues:detail:uuid:" // + venue-id
	CACHE_KEY_VENUE_COURTS = CACHE_PREFIX + ":venues:courts:uuid:" // + venue-id:sport:X
)

// Venue Cache TTLs
const (
	TTL_VENUES_LIST  = TTL_SEMI_STATIC_SHORT  // 1 hour
	TTL_VENUE_DETAIL = TTL_SEMI_STATIC_MEDIUM // 2 hours
	TTL_VENUE_COURTS = TTL_SEMI_STATIC_LONG   // 4 hours
	TTL_VENUE_SEARCH = TTL_SEMI_STATIC_QUICK  // 15 minutes
)

// ================== SPORTS MODULE ==================

// Sport Cache Keys
const (
	CACHE_KEY_SPORTS_ACTIVE  = CACHE_PREFIX + ":sports:active:all"   // Active sports list
	CACHE_KEY_SPORTS_ALL     = CACHE_PREFIX + ":sports:list"         // + :page:X:limit:Y:status:Z
	CACHE_KEY_SPORT_BY_SLUG  = CACHE_PREFIX + ":sports:detail:slug:" // + sport-slug
	CACHE_KEY_SPORT_BY_ID    = CACHE_PREFIX + ":sports:detail:uuid:" // + sport-id
	CACHE_KEY_SPORTS_OF_VENUE = CACHE_PREFIX + ":sports:by_venue:uuid:" // + venue-id
)

// Sport Cache TTLs
const (
	TTL_SPORTS_ACTIVE = TTL_STATIC_LONG  // 24 hours
	TTL_SPORTS_LIST   = TTL_STATIC_SHORT // 6 hours
	TTL_SPORT_DETAIL  = TTL_STATIC_LONG  // 24 hours
)

// ================== AVAILABILITY MODULE ==================

// Availability Cache Keys
const (
	// Full day grid for one (venue, sport, court, date) tuple
	CACHE_KEY_AVAILABILITY_GRID = CACHE_PREFIX + ":availability:grid:" // + venue-id:sport:court-id:date

	// Draft slot selections held while a user is picking hours
	CACHE_KEY_SELECTION_DRAFT = CACHE_PREFIX + ":availability:selection:user:" // + user-id
)

// Availability Cache TTLs
const (
	TTL_AVAILABILITY_GRID = TTL_DYNAMIC_QUICK // 2 minutes
)

// ================== AUTH MODULE ==================

// Auth Cache Keys
const (
	CACHE_KEY_USER_PROFILE = CACHE_PREFIX + ":auth:user:profile:uuid:" // + user-id
	CACHE_KEY_OTP_CODE     = CACHE_PREFIX + ":auth:otp:phone:"         // + phone
	CACHE_KEY_OTP_ATTEMPTS = CACHE_PREFIX + ":auth:otp:attempts:phone:" // + phone
	CACHE_KEY_OTP_RESEND   = CACHE_PREFIX + ":auth:otp:resend:phone:"   // + phone
)

// Auth Cache TTLs
const (
	TTL_USER_PROFILE = TTL_STATIC_SHORT // 6 hours
)

// ================== BOOKINGS MODULE ==================

// Booking Cache Keys
const (
	CACHE_KEY_USER_BOOKINGS    = CACHE_PREFIX + ":bookings:user:uuid:"     // + user-id:page:X
	CACHE_KEY_BOOKING_DETAIL   = CACHE_PREFIX + ":bookings:detail:uuid:"   // + booking-id
	CACHE_KEY_OWNER_DAY_VIEW   = CACHE_PREFIX + ":bookings:owner:day:"     // + venue-id:date
	CACHE_KEY_OWNER_DAY_STATS  = CACHE_PREFIX + ":bookings:owner:summary:" // + venue-id:date
)

// Booking Cache TTLs
const (
	TTL_USER_BOOKINGS   = TTL_DYNAMIC_SHORT   // 5 minutes
	TTL_BOOKING_DETAIL  = TTL_DYNAMIC_MEDIUM  // 10 minutes
	TTL_OWNER_DAY_VIEW  = TTL_REALTIME_MEDIUM // 1 minute
	TTL_OWNER_DAY_STATS = TTL_DYNAMIC_MEDIUM  // 10 minutes
)

// ================== CACHE INVALIDATION PATTERNS ==================

// Patterns for cache invalidation (used with Redis SCAN-based invalidation)
const (
	// Venue-related invalidation patterns
	PATTERN_INVALIDATE_VENUES_ALL   = CACHE_PREFIX + ":venues:*"
	PATTERN_INVALIDATE_VENUE_DETAIL = CACHE_PREFIX + ":venues:*:uuid:" // + venue-id + *

	// Sport-related invalidation patterns
	PATTERN_INVALIDATE_SPORTS_ALL = CACHE_PREFIX + ":sports:*"

	// Availability invalidation patterns
	PATTERN_INVALIDATE_AVAILABILITY = CACHE_PREFIX + ":availability:grid:*"

	// User-related invalidation patterns
	PATTERN_INVALIDATE_USER_ALL = CACHE_PREFIX + ":*:user:*" // + user-id + *

	// Booking invalidation patterns
	PATTERN_INVALIDATE_BOOKINGS = CACHE_PREFIX + ":bookings:*"
)

// ================== HELPER FUNCTIONS ==================

// BuildVenueListKey constructs the venue listing key with paging parameters
// Example: BuildVenueListKey(1, 10, "mumbai") -> "playbox:venues:list:page:1:limit:10:city:mumbai"
func BuildVenueListKey(page, limit int, city string) string {
	if city != "" {
		return CACHE_KEY_VENUES_LIST + ":page:" + fmt.Sprintf("%d", page) + ":limit:" + fmt.Sprintf("%d", limit) + ":city:" + city
	}
	return CACHE_KEY_VENUES_LIST + ":page:" + fmt.Sprintf("%d", page) + ":limit:" + fmt.Sprintf("%d", limit)
}

func BuildVenueDetailKey(venueID string) string {
	return CACHE_KEY_VENUE_DETAIL + venueID
}

func BuildVenueCourtsKey(venueID, sport string) string {
	return CACHE_KEY_VENUE_COURTS + venueID + ":sport:" + sport
}

func BuildSportBySlugKey(slug string) string {
	return CACHE_KEY_SPORT_BY_SLUG + slug
}

func BuildAvailabilityGridKey(venueID, sport, courtID, date string) string {
	return CACHE_KEY_AVAILABILITY_GRID + venueID + ":" + sport + ":" + courtID + ":" + date
}

func BuildSelectionDraftKey(userID string) string {
	return CACHE_KEY_SELECTION_DRAFT + userID
}

func BuildOTPCodeKey(phone string) string {
	return CACHE_KEY_OTP_CODE + phone
}

func BuildOTPAttemptsKey(phone string) string {
	return CACHE_KEY_OTP_ATTEMPTS + phone
}

func BuildOTPResendKey(phone string) string {
	return CACHE_KEY_OTP_RESEND + phone
}

func BuildUserBookingsKey(userID string, page int) string {
	return CACHE_KEY_USER_BOOKINGS + userID + ":page:" + fmt.Sprintf("%d", page)
}

func BuildOwnerDayViewKey(venueID, date string) string {
	return CACHE_KEY_OWNER_DAY_VIEW + venueID + ":" + date
}

func BuildOwnerDayStatsKey(venueID, date string) string {
	return CACHE_KEY_OWNER_DAY_STATS + venueID + ":" + date
}

package venues

import "time"

type VenueResponse struct {
	ID          string               `json:"id"`
	OwnerID     string               `json:"owner_id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Address     string               `json:"address"`
	City        string               `json:"city"`
	Timezone    string               `json:"timezone"`
	OpenHour    int                  `json:"open_hour"`
	CloseHour   int                  `json:"close_hour"`
	Images      []string             `json:"images"`
	IsActive    bool                 `json:"is_active"`
	Sports      []string             `json:"sports"`
	SportPrices []SportPriceResponse `json:"sport_prices,omitempty"`
	Courts      []CourtResponse      `json:"courts,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

type CourtResponse struct {
	ID       string `json:"id"`
	VenueID  string `json:"venue_id"`
	Sport    string `json:"sport"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type SportPriceResponse struct {
	Sport        string  `json:"sport"`
	PricePerHour float64 `json:"price_per_hour"`
}

type PaginatedVenues struct {
	Venues     []VenueResponse `json:"venues"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

package bookings

type AvailabilityQuery struct {
	VenueID string `form:"venue_id" binding:"required,uuid"`
	Sport   string `form:"sport" binding:"required"`
	CourtID string `form:"court_id" binding:"required,uuid"`
	Date    string `form:"date" binding:"required,datetime=2006-01-02"`
}

type ToggleSlotRequest struct {
	VenueID string `json:"venue_id" binding:"required,uuid"`
	Sport   string `json:"sport" binding:"required"`
	CourtID string `json:"court_id" binding:"required,uuid"`
	Date    string `json:"date" binding:"required,datetime=2006-01-02"`
	Hour    int    `json:"hour" binding:"min=0,max=23"`
}

type ConfirmBookingRequest struct {
	VenueID string `json:"venue_id" binding:"required,uuid"`
	Sport   string `json:"sport" binding:"required"`
	CourtID string `json:"court_id" binding:"required,uuid"`
	Date    string `json:"date" binding:"required,datetime=2006-01-02"`
}

type BookingListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=CONFIRMED CANCELLED COMPLETED"`
}

type OwnerDayQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

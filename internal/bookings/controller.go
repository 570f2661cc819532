package bookings

import (
	"errors"
	"net/http"

	"playbox/internal/shared/utils/response"
	"playbox/internal/slots"
	"playbox/internal/venues"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetAvailability handles GET /availability
// @Summary Slot availability grid
// @Description Hourly past/booked/available grid for one venue, sport, court and date
// @Tags availability
// @Produce json
// @Param venue_id query string true "Venue UUID"
// @Param sport query string true "Sport slug"
// @Param court_id query string true "Court UUID"
// @Param date query string true "Date (YYYY-MM-DD, venue-local)"
// @Success 200 {object} response.StandardApiResponse
// @Router /availability [get]
func (ctrl *Controller) GetAvailability(c *gin.Context) {
	var query AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	userID := ""
	if raw, exists := c.Get("user_id"); exists {
		if id, ok := raw.(string); ok {
			userID = id
		}
	}

	result, err := ctrl.service.GetAvailability(c.Request.Context(), userID, query)
	if err != nil {
		status, msg := bookingErrorStatus(err, "Failed to fetch availability")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Availability fetched successfully", result, nil)
}

// ToggleSlot handles POST /selection/toggle
func (ctrl *Controller) ToggleSlot(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req ToggleSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := ctrl.service.ToggleSlot(c.Request.Context(), userID.String(), req)
	if err != nil {
		status, msg := bookingErrorStatus(err, "Failed to update selection")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Selection updated", result, nil)
}

// ClearSelection handles DELETE /selection
func (ctrl *Controller) ClearSelection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	if err := ctrl.service.ClearSelection(c.Request.Context(), userID.String()); err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to clear selection", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Selection cleared", nil, nil)
}

// ConfirmBooking handles POST /bookings
func (ctrl *Controller) ConfirmBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := ctrl.service.ConfirmBooking(c.Request.Context(), userID, req)
	if err != nil {
		status, msg := bookingErrorStatus(err, "Failed to confirm booking")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Booking confirmed successfully", result, nil)
}

// GetBooking handles GET /bookings/:id
func (ctrl *Controller) GetBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	result, err := ctrl.service.GetBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		status, msg := bookingErrorStatus(err, "Failed to fetch booking")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking fetched successfully", result, nil)
}

// GetUserBookings handles GET /bookings
func (ctrl *Controller) GetUserBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var query BookingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := ctrl.service.GetUserBookings(c.Request.Context(), userID, query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch bookings", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookings fetched successfully", result, nil)
}

// CancelBooking handles DELETE /bookings/:id
func (ctrl *Controller) CancelBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	if err := ctrl.service.CancelBooking(c.Request.Context(), bookingID, userID); err != nil {
		status, msg := bookingErrorStatus(err, "Failed to cancel booking")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking cancelled successfully", nil, nil)
}

// GetOwnerDayView handles GET /owner/venues/:id/bookings
func (ctrl *Controller) GetOwnerDayView(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var query OwnerDayQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := ctrl.service.GetOwnerDayView(c.Request.Context(), c.Param("id"), ownerID, query.Date)
	if err != nil {
		status, msg := bookingErrorStatus(err, "Failed to fetch day view")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Day view fetched successfully", result, nil)
}

// GetOwnerDaySummary handles GET /owner/venues/:id/bookings/summary
func (ctrl *Controller) GetOwnerDaySummary(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var query OwnerDayQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := ctrl.service.GetOwnerDaySummary(c.Request.Context(), c.Param("id"), ownerID, query.Date)
	if err != nil {
		status, msg := bookingErrorStatus(err, "Failed to fetch day summary")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Day summary fetched successfully", result, nil)
}

// OwnerCancelBooking handles DELETE /owner/venues/:id/bookings/:bookingId
func (ctrl *Controller) OwnerCancelBooking(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	if err := ctrl.service.CancelBookingByOwner(c.Request.Context(), c.Param("id"), bookingID, ownerID); err != nil {
		status, msg := bookingErrorStatus(err, "Failed to cancel booking")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking cancelled successfully", nil, nil)
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	idStr, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func bookingErrorStatus(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, ErrBookingConflict):
		return http.StatusConflict, "Selected slots were just booked by someone else"
	case errors.Is(err, ErrBookingNotFound):
		return http.StatusNotFound, "Booking not found"
	case errors.Is(err, ErrNotBookingOwner):
		return http.StatusForbidden, "Booking does not belong to you"
	case errors.Is(err, ErrBookingAlreadyCancelled):
		return http.StatusBadRequest, "Booking is already cancelled"
	case errors.Is(err, ErrBookingAlreadyStarted):
		return http.StatusBadRequest, "Booking has already started"
	case errors.Is(err, ErrCourtMismatch):
		return http.StatusBadRequest, "Court does not match the requested venue and sport"
	case errors.Is(err, slots.ErrNonContiguousSelection):
		return http.StatusUnprocessableEntity, "Selected slots must form a continuous run"
	case errors.Is(err, slots.ErrSlotUnavailable):
		return http.StatusBadRequest, "Slot is not available"
	case errors.Is(err, slots.ErrEmptySelection):
		return http.StatusUnprocessableEntity, "No slots selected"
	case errors.Is(err, venues.ErrVenueNotFound):
		return http.StatusNotFound, "Venue not found"
	case errors.Is(err, venues.ErrCourtNotFound):
		return http.StatusNotFound, "Court not found"
	case errors.Is(err, venues.ErrNotVenueOwner):
		return http.StatusForbidden, "You do not own this venue"
	case errors.Is(err, venues.ErrSportNotOffered):
		return http.StatusBadRequest, "Venue does not offer this sport"
	default:
		return http.StatusInternalServerError, fallback
	}
}

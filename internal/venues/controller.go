package venues

import (
	"errors"
	"net/http"

	"playbox/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetVenues handles GET /venues
// @Summary List venues
// @Description Browse active venues with optional city, sport and text filters
// @Tags venues
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param city query string false "Filter by city"
// @Param sport query string false "Filter by sport slug"
// @Param search query string false "Search venue name or description"
// @Success 200 {object} response.StandardApiResponse
// @Router /venues [get]
func (ctrl *Controller) GetVenues(c *gin.Context) {
	var query VenueListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := ctrl.service.GetVenues(c.Request.Context(), query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch venues", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Venues fetched successfully", result, nil)
}

// GetVenue handles GET /venues/:id
func (ctrl *Controller) GetVenue(c *gin.Context) {
	venue, err := ctrl.service.GetVenueByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, msg := venueErrorStatus(err, "Failed to fetch venue")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Venue fetched successfully", venue, nil)
}

// GetCourts handles GET /venues/:id/courts
func (ctrl *Controller) GetCourts(c *gin.Context) {
	courts, err := ctrl.service.GetCourts(c.Request.Context(), c.Param("id"), c.Query("sport"))
	if err != nil {
		status, msg := venueErrorStatus(err, "Failed to fetch courts")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Courts fetched successfully", courts, nil)
}

// CreateVenue handles POST /owner/venues
func (ctrl *Controller) CreateVenue(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	venue, err := ctrl.service.CreateVenue(c.Request.Context(), ownerID, req)
	if err != nil {
		status, msg := venueErrorStatus(err, "Failed to create venue")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Venue created successfully", venue, nil)
}

// GetOwnerVenues handles GET /owner/venues
func (ctrl *Controller) GetOwnerVenues(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	list, err := ctrl.service.GetOwnerVenues(c.Request.Context(), ownerID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch venues", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Venues fetched successfully", list, nil)
}

// UpdateVenue handles PUT /owner/venues/:id
func (ctrl *Controller) UpdateVenue(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	venue, err := ctrl.service.UpdateVenue(c.Request.Context(), c.Param("id"), ownerID, req)
	if err != nil {
		status, msg := venueErrorStatus(err, "Failed to update venue")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Venue updated successfully", venue, nil)
}

// DeleteVenue handles DELETE /owner/venues/:id
func (ctrl *Controller) DeleteVenue(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	if err := ctrl.service.DeleteVenue(c.Request.Context(), c.Param("id"), ownerID); err != nil {
		status, msg := venueErrorStatus(err, "Failed to delete venue")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Venue deleted successfully", nil, nil)
}

// AddCourt handles POST /owner/venues/:id/courts
func (ctrl *Controller) AddCourt(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	court, err := ctrl.service.AddCourt(c.Request.Context(), c.Param("id"), ownerID, req)
	if err != nil {
		status, msg := venueErrorStatus(err, "Failed to add court")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Court added successfully", court, nil)
}

// UpdateCourt handles PUT /owner/venues/:id/courts/:courtId
func (ctrl *Controller) UpdateCourt(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	court, err := ctrl.service.UpdateCourt(c.Request.Context(), c.Param("id"), c.Param("courtId"), ownerID, req)
	if err != nil {
		status, msg := venueErrorStatus(err, "Failed to update court")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Court updated successfully", court, nil)
}

// RemoveCourt handles DELETE /owner/venues/:id/courts/:courtId
func (ctrl *Controller) RemoveCourt(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	if err := ctrl.service.RemoveCourt(c.Request.Context(), c.Param("id"), c.Param("courtId"), ownerID); err != nil {
		status, msg := venueErrorStatus(err, "Failed to remove court")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Court removed successfully", nil, nil)
}

// SetSportPrice handles PUT /owner/venues/:id/pricing
func (ctrl *Controller) SetSportPrice(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req SportPriceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := ctrl.service.SetSportPrice(c.Request.Context(), c.Param("id"), ownerID, req); err != nil {
		status, msg := venueErrorStatus(err, "Failed to set sport price")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Sport price saved successfully", nil, nil)
}

// RemoveSportPrice handles DELETE /owner/venues/:id/pricing/:sport
func (ctrl *Controller) RemoveSportPrice(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	if err := ctrl.service.RemoveSportPrice(c.Request.Context(), c.Param("id"), c.Param("sport"), ownerID); err != nil {
		status, msg := venueErrorStatus(err, "Failed to remove sport price")
		response.RespondJSON(c, "error", status, msg, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Sport price removed successfully", nil, nil)
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

func venueErrorStatus(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, ErrVenueNotFound):
		return http.StatusNotFound, "Venue not found"
	case errors.Is(err, ErrCourtNotFound):
		return http.StatusNotFound, "Court not found"
	case errors.Is(err, ErrNotVenueOwner):
		return http.StatusForbidden, "You do not own this venue"
	case errors.Is(err, ErrInvalidOperatingWindow):
		return http.StatusBadRequest, "Open hour must be before close hour and within the day"
	case errors.Is(err, ErrInvalidTimezone):
		return http.StatusBadRequest, "Unknown timezone identifier"
	case errors.Is(err, ErrSportNotOffered):
		return http.StatusBadRequest, "Venue does not offer this sport"
	default:
		return http.StatusInternalServerError, fallback
	}
}

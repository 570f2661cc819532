package bookings

import (
	"playbox/internal/shared/middleware"
	"playbox/internal/users"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(router *gin.RouterGroup, controller *Controller) {
	// Availability is public; a logged-in caller additionally gets their
	// draft selection overlaid on the grid.
	availability := router.Group("/availability")
	availability.Use(middleware.OptionalAuth())
	{
		availability.GET("", controller.GetAvailability) // GET /api/v1/availability - Slot grid for a tuple
	}

	// Draft selection requires a user identity to key the draft
	selection := router.Group("/selection")
	selection.Use(middleware.JWTAuth())
	{
		selection.POST("/toggle", controller.ToggleSlot)   // POST /api/v1/selection/toggle - Select or deselect an hour
		selection.DELETE("", controller.ClearSelection)    // DELETE /api/v1/selection - Drop the draft
	}

	// Booking lifecycle
	bookings := router.Group("/bookings")
	bookings.Use(middleware.JWTAuth())
	{
		bookings.POST("", controller.ConfirmBooking)      // POST /api/v1/bookings - Confirm the drafted window
		bookings.GET("", controller.GetUserBookings)      // GET /api/v1/bookings - Booking history
		bookings.GET("/:id", controller.GetBooking)       // GET /api/v1/bookings/:id - Booking detail
		bookings.DELETE("/:id", controller.CancelBooking) // DELETE /api/v1/bookings/:id - Cancel before start
	}

	// Owner day views
	ownerBookings := router.Group("/owner/venues/:id/bookings")
	ownerBookings.Use(middleware.JWTAuth(), middleware.RequireRoles(string(users.RoleOwner), string(users.RoleAdmin)))
	{
		ownerBookings.GET("", controller.GetOwnerDayView)                     // GET /api/v1/owner/venues/:id/bookings?date= - Day schedule
		ownerBookings.GET("/summary", controller.GetOwnerDaySummary)          // GET /api/v1/owner/venues/:id/bookings/summary?date= - Day aggregates
		ownerBookings.DELETE("/:bookingId", controller.OwnerCancelBooking)    // DELETE /api/v1/owner/venues/:id/bookings/:bookingId - Owner cancellation
	}
}

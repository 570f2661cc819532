package venues

import (
	"playbox/internal/shared/middleware"
	"playbox/internal/users"

	"github.com/gin-gonic/gin"
)

func SetupVenueRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public browsing routes
	publicVenues := router.Group("/venues")
	{
		publicVenues.GET("", controller.GetVenues)            // GET /api/v1/venues - Browse venues
		publicVenues.GET("/:id", controller.GetVenue)         // GET /api/v1/venues/:id - Venue detail
		publicVenues.GET("/:id/courts", controller.GetCourts) // GET /api/v1/venues/:id/courts - Courts for a sport
	}

	// Owner management routes
	ownerVenues := router.Group("/owner/venues")
	ownerVenues.Use(middleware.JWTAuth(), middleware.RequireRoles(string(users.RoleOwner), string(users.RoleAdmin)))
	{
		ownerVenues.POST("", controller.CreateVenue)                              // POST /api/v1/owner/venues - Register venue
		ownerVenues.GET("", controller.GetOwnerVenues)                            // GET /api/v1/owner/venues - Own venues
		ownerVenues.PUT("/:id", controller.UpdateVenue)                           // PUT /api/v1/owner/venues/:id - Update venue
		ownerVenues.DELETE("/:id", controller.DeleteVenue)                        // DELETE /api/v1/owner/venues/:id - Delete venue
		ownerVenues.POST("/:id/courts", controller.AddCourt)                      // POST /api/v1/owner/venues/:id/courts - Add court
		ownerVenues.PUT("/:id/courts/:courtId", controller.UpdateCourt)           // PUT /api/v1/owner/venues/:id/courts/:courtId - Update court
		ownerVenues.DELETE("/:id/courts/:courtId", controller.RemoveCourt)        // DELETE /api/v1/owner/venues/:id/courts/:courtId - Remove court
		ownerVenues.PUT("/:id/pricing", controller.SetSportPrice)                 // PUT /api/v1/owner/venues/:id/pricing - Set hourly price
		ownerVenues.DELETE("/:id/pricing/:sport", controller.RemoveSportPrice)    // DELETE /api/v1/owner/venues/:id/pricing/:sport - Drop a sport
	}
}

package sports

import (
	"playbox/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSportRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes
	publicSports := router.Group("/sports")
	{
		publicSports.GET("/active", controller.GetActiveSports)    // GET /api/v1/sports/active - Get active sports for filtering
		publicSports.GET("/slug/:slug", controller.GetSportBySlug) // GET /api/v1/sports/slug/:slug - Get sport by slug
	}

	// Admin routes
	adminSports := router.Group("/admin/sports")
	adminSports.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminSports.POST("", controller.CreateSport)       // POST /api/v1/admin/sports - Create sport
		adminSports.GET("", controller.GetAllSports)       // GET /api/v1/admin/sports - Get all sports (with filters)
		adminSports.GET("/:id", controller.GetSport)       // GET /api/v1/admin/sports/:id - Get sport by ID
		adminSports.PUT("/:id", controller.UpdateSport)    // PUT /api/v1/admin/sports/:id - Update sport
		adminSports.DELETE("/:id", controller.DeleteSport) // DELETE /api/v1/admin/sports/:id - Delete sport
	}
}

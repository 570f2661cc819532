package routes

import (
	"net/http"
	"time"

	"playbox/internal/auth"
	"playbox/internal/bookings"
	"playbox/internal/shared/config"
	"playbox/internal/shared/database"
	"playbox/internal/sports"
	"playbox/internal/venues"
	"playbox/pkg/cache"
	"playbox/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	cache     cache.Service
	publisher bookings.EventPublisher

	// Shared across route groups
	venueService venues.Service
}

// NewRouter creates a new router instance. publisher may be nil when the
// notification pipeline is disabled.
func NewRouter(cfg *config.Config, db *database.DB, publisher bookings.EventPublisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		cache:     cache.NewService(db.GetRedisClient()),
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupSportRoutes(api)

		// Venue routes register first; bookings reuse the venue service
		r.setupVenueRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "playbox-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "playbox-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures phone OTP authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	otpStore := auth.NewOTPStore(r.db.GetRedisClient(), r.config)
	authService := auth.NewService(authRepo, otpStore, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController)

	authRouter.SetupRoutes(rg)
}

// setupSportRoutes configures the sports catalog routes
func (r *Router) setupSportRoutes(rg *gin.RouterGroup) {
	sportRepo := sports.NewRepository(r.db.GetPostgreSQL())
	sportService := sports.NewService(sportRepo, r.cache)
	sportController := sports.NewController(sportService)

	sports.SetupSportRoutes(rg, sportController)
}

// setupVenueRoutes configures venue browsing and owner management routes
func (r *Router) setupVenueRoutes(rg *gin.RouterGroup) {
	venueRepo := venues.NewRepository(r.db.GetPostgreSQL())
	r.venueService = venues.NewService(venueRepo, r.cache)
	venueController := venues.NewController(r.venueService)

	venues.SetupVenueRoutes(rg, venueController)
}

// setupBookingRoutes configures availability, selection and booking routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	selections := bookings.NewSelectionStore(r.db.GetRedisClient(), r.config.Redis.SelectionTTL)
	bookingService := bookings.NewService(
		bookingRepo,
		r.venueService,
		selections,
		r.cache,
		r.publisher,
		logger.GetDefault(),
	)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}

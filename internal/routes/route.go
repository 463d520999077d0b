package routes

import (
	"github.com/chamberhq/venuebook/internal/container"
	"github.com/chamberhq/venuebook/internal/handlers"
	"github.com/chamberhq/venuebook/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(middleware.Metrics())
	r.Use(gin.Recovery())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "venuebook-api",
			})
		})

		// public catalog and booking flow
		venueRoutes := v1.Group("/venues")
		{
			venueRoutes.GET("/", handlers.ListVenues(container.VenueService, container.Logger))
			venueRoutes.GET("/:id", handlers.GetVenue(container.VenueService, container.Logger))
			venueRoutes.GET("/:id/availability", handlers.GetAvailability(container.AvailabilityService, container.Logger))
			venueRoutes.GET("/:id/calendar", handlers.GetCalendar(container.AvailabilityService, container.Logger))
			venueRoutes.POST("/:id/bookings", handlers.CreateBooking(container.BookingService))
		}

		// admin console
		v1.POST("/admin/login", handlers.Login(container.AuthService))
		v1.POST("/admin/logout", handlers.Logout())

		protected := v1.Group("/admin")
		protected.Use(middleware.AdminAuth(container.AuthService, container.Logger))
		{
			protected.GET("/bookings", handlers.ListBookings(container.BookingService, container.Logger))
			protected.PATCH("/bookings/:id/status", handlers.UpdateBookingStatus(container.BookingService))
		}
	}

	return r
}

package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kbediako/studiobook/internal/container"
	"github.com/kbediako/studiobook/internal/handlers"
	"github.com/kbediako/studiobook/internal/middleware"
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

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "studiobook-api",
			})
		})

		// public routes
		v1.GET("/studios", handlers.ListStudios())
		v1.POST("/bookings", handlers.SubmitBooking(container.BookingService))
		v1.GET("/availability", handlers.GetAvailability(container.AvailabilityService))
		v1.GET("/availability/month", handlers.GetMonthAvailability(container.AvailabilityService))
		v1.GET("/calendar", handlers.GetCalendar(container.AvailabilityService))

		v1.POST("/login", handlers.Login(container.AuthService))
		v1.POST("/logout", handlers.Logout())
	}

	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuth(container.AuthService, container.Logger))
	{
		admin.GET("/bookings", handlers.ListBookings(container.AdminService))
		admin.POST("/bookings", handlers.CreateAdminBooking(container.BookingService))
		admin.PATCH("/bookings/:id/status", handlers.UpdateBookingStatus(container.AdminService))
		admin.DELETE("/bookings/:id", handlers.DeleteBooking(container.AdminService))
		admin.GET("/bookings/:id/audit", handlers.GetBookingAudit(container.AdminService))
	}

	return r
}

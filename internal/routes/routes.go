package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"college-appointment-server/internal/booking"
	"college-appointment-server/internal/config"
	"college-appointment-server/internal/handlers"
	"college-appointment-server/internal/middleware"
	"college-appointment-server/internal/models"
	"college-appointment-server/internal/store"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	// Initialize the booking core and handlers
	stores := store.New(db)
	coordinator := booking.NewCoordinator(stores, logger)

	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(coordinator)
	availabilityHandler := handlers.NewAvailabilityHandler(coordinator)
	appointmentHandler := handlers.NewAppointmentHandler(coordinator)

	// Credential endpoints share a per-IP rate limit
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", middleware.RateLimit(authLimiter), authHandler.Register)
			authRoutes.POST("/login", middleware.RateLimit(authLimiter), authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg)) // Apply JWT authentication middleware
	{
		// Auth related (profile, logout)
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// User directory routes
		userRoutes := private.Group("/users")
		{
			// Professor directory - accessible by all authenticated users
			userRoutes.GET("/professors", userHandler.GetProfessors)
		}

		// Availability slot routes
		availabilityRoutes := private.Group("/availability")
		{
			// Professors manage their own slots
			availabilityRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleProfessor), availabilityHandler.CreateSlot)
			availabilityRoutes.GET("/mine", middleware.RoleAuthMiddleware(models.RoleProfessor), availabilityHandler.ListOwnSlots)
			availabilityRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleProfessor), availabilityHandler.DeleteSlot)

			// Any authenticated user can browse a professor's open slots
			availabilityRoutes.GET("/professor/:professorId", availabilityHandler.ListProfessorSlots)
		}

		// Appointment routes
		appointmentRoutes := private.Group("/appointments")
		{
			// Students book open slots
			appointmentRoutes.POST("/book", middleware.RoleAuthMiddleware(models.RoleStudent), appointmentHandler.BookAppointment)

			// Each side lists its own appointments (viewer scoping in handler)
			appointmentRoutes.GET("/mine", middleware.RoleAuthMiddleware(models.RoleStudent), appointmentHandler.ListAppointments)
			appointmentRoutes.GET("/by-professor", middleware.RoleAuthMiddleware(models.RoleProfessor), appointmentHandler.ListAppointments)

			// Participants fetch a single appointment (visibility in handler)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointment)

			// Professors manage the appointment lifecycle
			appointmentRoutes.PUT("/:id/cancel", middleware.RoleAuthMiddleware(models.RoleProfessor), appointmentHandler.CancelAppointment)
			appointmentRoutes.PUT("/:id/status", middleware.RoleAuthMiddleware(models.RoleProfessor), appointmentHandler.UpdateAppointmentStatus)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}

package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventmarket/internal/container"
	"github.com/joshua-takyi/eventmarket/internal/handlers"
	"github.com/joshua-takyi/eventmarket/internal/middleware"
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
				"service": "eventmarket-api",
			})
		})

		// public routes
		v1.POST("/signup", handlers.Register(container.UserService))
		v1.POST("/login", handlers.Login(container.UserService))
		v1.POST("/logout", handlers.Logout())
		v1.GET("/events", handlers.ListEvents(container.EventService))
		v1.GET("/events/:id", handlers.GetEvent(container.EventService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.UserService, container.Logger))

	userRoutes := protected.Group("/users")
	{
		userRoutes.GET("/profile", handlers.GetProfile(container.UserService))
		userRoutes.PATCH("/profile", handlers.UpdateProfile(container.UserService))
		userRoutes.DELETE("/profile", handlers.DeleteAccount(container.UserService))
		userRoutes.POST("/profile/picture", handlers.UploadProfilePicture(container.UserService))
	}

	eventRoutes := protected.Group("/events")
	{
		eventRoutes.POST("/", handlers.CreateEvent(container.EventService))
		eventRoutes.PUT("/:id", handlers.UpdateEvent(container.EventService))
		eventRoutes.DELETE("/:id", handlers.DeleteEvent(container.EventService))
		eventRoutes.PATCH("/:id/toggle-booking", handlers.ToggleBookingEnabled(container.EventService))
	}

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.POST("/", handlers.CreateBooking(container.BookingService))
		bookingRoutes.GET("/", handlers.ListBookings(container.BookingService))
		bookingRoutes.GET("/:id", handlers.GetBooking(container.BookingService))
		bookingRoutes.GET("/user/:user_id/upcoming", handlers.ListUserUpcomingBookings(container.BookingService))
		bookingRoutes.GET("/user/:user_id/past", handlers.ListUserPastBookings(container.BookingService))
		bookingRoutes.PUT("/:id/cancel", handlers.CancelBooking(container.BookingService))
	}

	paymentRoutes := protected.Group("/payments")
	{
		paymentRoutes.GET("/:id", handlers.GetPayment(container.PaymentService))
		paymentRoutes.GET("/user/:user_id", handlers.ListUserPayments(container.PaymentService))
		paymentRoutes.POST("/:id/process", handlers.ProcessPayment(container.PaymentService))
		paymentRoutes.POST("/:id/refund", handlers.RefundPayment(container.PaymentService))
	}

	supplierRoutes := protected.Group("/suppliers")
	{
		supplierRoutes.POST("/", handlers.RegisterSupplier(container.SupplierService))
		supplierRoutes.GET("/", handlers.ListSuppliers(container.SupplierService))
		supplierRoutes.GET("/user/:user_id", handlers.GetSupplierByUser(container.SupplierService))
		supplierRoutes.PUT("/:id", handlers.UpdateSupplier(container.SupplierService))
		supplierRoutes.DELETE("/:id", handlers.DeleteSupplier(container.SupplierService))
	}

	reviewRoutes := protected.Group("/reviews")
	{
		reviewRoutes.POST("/", handlers.CreateReview(container.ReviewService))
		reviewRoutes.GET("/event/:event_id", handlers.ListEventReviews(container.ReviewService))
	}

	dashboardRoutes := protected.Group("/dashboard")
	{
		dashboardRoutes.GET("/organization", handlers.GetOrganizationDashboard(container.DashboardService))
	}

	return r
}

package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joshua-takyi/eventmarket/internal/mailer"
	"github.com/joshua-takyi/eventmarket/internal/models"
	"github.com/joshua-takyi/eventmarket/internal/services"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary
	// Database clients
	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client

	UserService      *services.UserService
	EventService     *services.EventService
	BookingService   *services.BookingService
	PaymentService   *services.PaymentService
	DashboardService *services.DashboardService
	SupplierService  *services.SupplierService
	ReviewService    *services.ReviewService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cld *cloudinary.Cloudinary,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	mailSender mailer.Sender,
	supaURL, supaKey string,
) *Container {
	// Initialize repositories
	supa := models.SupabaseNewRepo(supabaseClient, supaURL, supaKey)
	mongoRepo := models.MongodbNewRepo(mongoDBClient)

	notifier := services.NewNotificationService(mailSender, logger)
	eventService := services.NewEventService(mongoRepo, cld)
	paymentService := services.NewPaymentService(mongoRepo)
	userService := services.NewUserService(supa, mongoRepo, notifier, cld)
	bookingService := services.NewBookingService(mongoRepo, mongoRepo, mongoRepo, eventService, paymentService, notifier, logger)
	dashboardService := services.NewDashboardService(mongoRepo, mongoRepo)
	supplierService := services.NewSupplierService(mongoRepo, mongoRepo)
	reviewService := services.NewReviewService()

	return &Container{
		Logger:           logger,
		Cloudinary:       cld,
		SupabaseClient:   supabaseClient,
		MongoDBClient:    mongoDBClient,
		UserService:      userService,
		EventService:     eventService,
		BookingService:   bookingService,
		PaymentService:   paymentService,
		DashboardService: dashboardService,
		SupplierService:  supplierService,
		ReviewService:    reviewService,
	}
}

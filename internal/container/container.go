package container

import (
	"log/slog"

	"github.com/kbediako/studiobook/internal/config"
	"github.com/kbediako/studiobook/internal/mailer"
	"github.com/kbediako/studiobook/internal/models"
	"github.com/kbediako/studiobook/internal/services"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	// Database clients
	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client

	BookingService      *services.BookingService
	AdminService        *services.AdminService
	AuthService         *services.AuthService
	AvailabilityService *services.AvailabilityService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	supaUrl, supaKey string,
) *Container {
	// Initialize repositories
	supa := models.SupabaseNewRepo(supabaseClient, supaUrl, supaKey)
	mongo := models.MongodbNewRepo(mongoDBClient)

	var notifier mailer.Notifier
	if cfg.EmailConfigured() {
		notifier = mailer.NewEmailJS(mailer.EmailJSConfig{
			ServiceID:               cfg.EmailJSServiceID,
			PublicKey:               cfg.EmailJSPublicKey,
			TemplateIDNewBooking:    cfg.EmailJSTemplateNewBooking,
			TemplateIDBookingStatus: cfg.EmailJSTemplateStatus,
			AdminEmail:              cfg.AdminEmail,
		})
	} else {
		logger.Warn("EmailJS configuration incomplete, using console notifications")
		notifier = &mailer.ConsoleNotifier{Logger: logger}
	}

	bookingService := services.NewBookingService(supa, notifier, logger, cfg.MinAdvanceDays)
	adminService := services.NewAdminService(supa, mongo, notifier, logger)
	authService := services.NewAuthService(supa, supa)
	availabilityService := services.NewAvailabilityService(supa, models.Studios)

	return &Container{
		Logger:              logger,
		SupabaseClient:      supabaseClient,
		MongoDBClient:       mongoDBClient,
		BookingService:      bookingService,
		AdminService:        adminService,
		AuthService:         authService,
		AvailabilityService: availabilityService,
	}
}

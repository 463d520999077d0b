package container

import (
	"log/slog"

	"github.com/chamberhq/venuebook/internal/config"
	"github.com/chamberhq/venuebook/internal/mailer"
	"github.com/chamberhq/venuebook/internal/models"
	"github.com/chamberhq/venuebook/internal/services"
	"github.com/supabase-community/supabase-go"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	SupabaseClient *supabase.Client

	VenueService        *services.VenueService
	AvailabilityService *services.AvailabilityService
	BookingService      *services.BookingService
	AuthService         *services.AuthService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	supabaseClient *supabase.Client,
	supaURL, supaKey string,
) *Container {
	repo := models.SupabaseNewRepo(supabaseClient, supaURL, supaKey)

	var mail mailer.Mailer = mailer.Noop{}
	if cfg.EmailConfigured() {
		mail = mailer.NewResendMailer(cfg.ResendAPIKey, cfg.BookingFromEmail)
	}

	venueService := services.NewVenueService(repo)
	availabilityService := services.NewAvailabilityService(repo, cfg.WindowDays)
	bookingService := services.NewBookingService(repo, repo, availabilityService, mail, logger)
	authService := services.NewAuthService(repo)

	return &Container{
		Logger:              logger,
		SupabaseClient:      supabaseClient,
		VenueService:        venueService,
		AvailabilityService: availabilityService,
		BookingService:      bookingService,
		AuthService:         authService,
	}
}

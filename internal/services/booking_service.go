package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chamberhq/venuebook/internal/helpers"
	"github.com/chamberhq/venuebook/internal/mailer"
	"github.com/chamberhq/venuebook/internal/metrics"
	"github.com/chamberhq/venuebook/internal/models"
)

// Sentinel errors for the booking validation taxonomy. Handlers map each to
// the specific message the form renders.
var (
	ErrMissingFields = errors.New("missing required fields")
	ErrPastDate      = errors.New("event date is in the past")
	ErrConflict      = errors.New("day already occupied")
	ErrVenueNotFound = errors.New("venue not found")
	ErrUnauthorized  = errors.New("admin identity required")
	ErrInvalidStatus = errors.New("invalid booking status")
)

type BookingService struct {
	bookings     models.BookingsRepo
	venues       models.VenuesRepo
	availability *AvailabilityService
	mail         mailer.Mailer
	logger       *slog.Logger
}

func NewBookingService(bookings models.BookingsRepo, venues models.VenuesRepo, availability *AvailabilityService, mail mailer.Mailer, logger *slog.Logger) *BookingService {
	return &BookingService{
		bookings:     bookings,
		venues:       venues,
		availability: availability,
		mail:         mail,
		logger:       logger,
	}
}

// CreateBooking runs the public submission flow: validate, block past dates,
// re-check the day-level conflict, insert as pending, then send the
// confirmation email best effort. The conflict read and the insert are not
// wrapped in a transaction; two near-simultaneous submissions for the same
// day can both pass the check, and the human approval stage catches the
// duplicate.
func (bs *BookingService) CreateBooking(ctx context.Context, venueID int64, req *models.BookingRequest) (*models.Booking, *models.Venue, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMissingFields, err)
	}

	venue, err := bs.venues.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load venue: %v", err)
	}
	if venue == nil {
		return nil, nil, ErrVenueNotFound
	}

	if bs.availability.IsPast(req.EventDate) {
		return nil, nil, ErrPastDate
	}

	conflict, err := bs.availability.HasConflict(ctx, venueID, req.EventDate)
	if err != nil {
		// A failed read degrades to "no conflict found" rather than
		// failing the submission; the admin review stage is the backstop.
		bs.logger.Error("conflict check failed", "venue_id", venueID, "event_date", req.EventDate, "error", err)
	} else if conflict {
		metrics.IncBookingConflict()
		return nil, nil, ErrConflict
	}

	booking := &models.Booking{
		VenueID:        venueID,
		RequesterName:  req.RequesterName,
		RequesterEmail: req.RequesterEmail,
		EventDate:      req.EventDate,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Status:         models.StatusPending,
	}
	if req.Notes != "" {
		booking.Notes = &req.Notes
	}

	created, err := bs.bookings.CreateBooking(ctx, booking)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create booking: %w", err)
	}
	metrics.IncBookingCreated()

	bs.sendConfirmation(ctx, created, venue)

	return created, venue, nil
}

// sendConfirmation is fire and forget: a delivery failure is logged and
// swallowed, never surfaced to the requester.
func (bs *BookingService) sendConfirmation(ctx context.Context, booking *models.Booking, venue *models.Venue) {
	if !bs.mail.Configured() {
		bs.logger.Warn("email provider not configured, skipping confirmation", "booking_id", booking.ID)
		metrics.IncEmail("skipped")
		return
	}

	email := mailer.BookingEmail{
		To:            booking.RequesterEmail,
		RequesterName: booking.RequesterName,
		VenueName:     venue.Name,
		EventDate:     booking.EventDate,
		StartTime:     booking.StartTime,
		EndTime:       booking.EndTime,
	}
	if venue.Address != nil {
		email.VenueAddress = *venue.Address
	}

	if err := bs.mail.SendBookingConfirmation(ctx, email); err != nil {
		bs.logger.Error("failed to send confirmation email", "booking_id", booking.ID, "error", err)
		metrics.IncEmail("failed")
		return
	}
	metrics.IncEmail("sent")
}

// ListBookings returns the admin view, joined with venue names and filtered
// by status and venue. The identity comes from the auth middleware; admin
// operations never reach into ambient session state themselves.
func (bs *BookingService) ListBookings(ctx context.Context, ident *helpers.AdminIdentity, filter models.BookingFilter) ([]models.AdminBooking, error) {
	if !ident.Verified() {
		return nil, ErrUnauthorized
	}
	return bs.bookings.ListBookings(ctx, filter)
}

// UpdateStatus moves one booking to one of the three allowed states. Status
// is the only field mutable through this path.
func (bs *BookingService) UpdateStatus(ctx context.Context, ident *helpers.AdminIdentity, id int64, status models.BookingStatus) error {
	if !ident.Verified() {
		return ErrUnauthorized
	}
	if id <= 0 {
		return fmt.Errorf("invalid booking ID")
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	return bs.bookings.UpdateBookingStatus(ctx, id, status, ident.AccessToken)
}

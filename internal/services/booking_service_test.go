package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/chamberhq/venuebook/internal/helpers"
	"github.com/chamberhq/venuebook/internal/mailer"
	"github.com/chamberhq/venuebook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVenuesRepo struct {
	venues  []models.Venue
	listErr error
	getErr  error
}

func (f *fakeVenuesRepo) ListVenues(ctx context.Context, filter models.VenueFilter) ([]models.Venue, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.venues, nil
}

func (f *fakeVenuesRepo) GetVenueByID(ctx context.Context, id int64) (*models.Venue, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.venues {
		if f.venues[i].ID == id {
			return &f.venues[i], nil
		}
	}
	return nil, nil
}

type fakeMailer struct {
	configured bool
	sendErr    error
	sent       []mailer.BookingEmail
}

func (f *fakeMailer) Configured() bool { return f.configured }

func (f *fakeMailer) SendBookingConfirmation(ctx context.Context, email mailer.BookingEmail) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, email)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func addr(s string) *string { return &s }

func newBookingFixture(t *testing.T, today string) (*BookingService, *fakeBookingsRepo, *fakeVenuesRepo, *fakeMailer) {
	t.Helper()
	bookings := &fakeBookingsRepo{}
	venues := &fakeVenuesRepo{venues: []models.Venue{
		{ID: 7, Name: "Community Hall", Address: addr("1 Main St"), Capacity: intPtr(120)},
	}}
	mail := &fakeMailer{configured: true}
	availability := newTestAvailability(bookings, today)
	svc := NewBookingService(bookings, venues, availability, mail, testLogger())
	return svc, bookings, venues, mail
}

func intPtr(n int) *int { return &n }

func validRequest(date string) *models.BookingRequest {
	return &models.BookingRequest{
		RequesterName:  "Jamie Doe",
		RequesterEmail: "jamie@example.com",
		EventDate:      date,
		StartTime:      "10:00",
		EndTime:        "14:00",
		Notes:          "Chairs for 40 people",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	svc, bookings, _, mail := newBookingFixture(t, "2025-11-28")

	booking, venue, err := svc.CreateBooking(context.Background(), 7, validRequest("2025-11-30"))
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, "2025-11-30", booking.EventDate)
	assert.Equal(t, "Community Hall", venue.Name)
	require.NotNil(t, booking.Notes)
	assert.Equal(t, "Chairs for 40 people", *booking.Notes)

	require.Len(t, bookings.bookings, 1)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "jamie@example.com", mail.sent[0].To)
	assert.Equal(t, "Community Hall", mail.sent[0].VenueName)
	assert.Equal(t, "1 Main St", mail.sent[0].VenueAddress)
}

func TestCreateBookingConflictRejected(t *testing.T) {
	svc, bookings, _, mail := newBookingFixture(t, "2025-11-28")
	bookings.bookings = []models.Booking{
		{ID: 1, VenueID: 7, EventDate: "2025-11-29", Status: models.StatusPending},
	}

	_, _, err := svc.CreateBooking(context.Background(), 7, validRequest("2025-11-29"))
	assert.ErrorIs(t, err, ErrConflict)

	// No new row, no email.
	assert.Len(t, bookings.bookings, 1)
	assert.Empty(t, mail.sent)

	// The day after is free.
	_, _, err = svc.CreateBooking(context.Background(), 7, validRequest("2025-11-30"))
	assert.NoError(t, err)
}

func TestCreateBookingApprovedAlsoConflicts(t *testing.T) {
	svc, bookings, _, _ := newBookingFixture(t, "2025-11-28")
	bookings.bookings = []models.Booking{
		{ID: 1, VenueID: 7, EventDate: "2025-11-29", Status: models.StatusApproved},
	}

	_, _, err := svc.CreateBooking(context.Background(), 7, validRequest("2025-11-29"))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateBookingRejectedDayIsFree(t *testing.T) {
	svc, bookings, _, _ := newBookingFixture(t, "2025-11-28")
	bookings.bookings = []models.Booking{
		{ID: 1, VenueID: 7, EventDate: "2025-11-29", Status: models.StatusRejected},
	}

	_, _, err := svc.CreateBooking(context.Background(), 7, validRequest("2025-11-29"))
	assert.NoError(t, err)
}

func TestCreateBookingMissingEmail(t *testing.T) {
	svc, bookings, _, mail := newBookingFixture(t, "2025-11-28")

	req := validRequest("2025-11-30")
	req.RequesterEmail = ""

	_, _, err := svc.CreateBooking(context.Background(), 7, req)
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Empty(t, bookings.bookings)
	assert.Empty(t, mail.sent)
}

func TestCreateBookingPastDate(t *testing.T) {
	svc, bookings, _, _ := newBookingFixture(t, "2025-11-28")

	_, _, err := svc.CreateBooking(context.Background(), 7, validRequest("2025-11-27"))
	assert.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, bookings.bookings)
}

func TestCreateBookingSameDayAllowed(t *testing.T) {
	svc, _, _, _ := newBookingFixture(t, "2025-11-28")

	_, _, err := svc.CreateBooking(context.Background(), 7, validRequest("2025-11-28"))
	assert.NoError(t, err)
}

func TestCreateBookingUnknownVenue(t *testing.T) {
	svc, _, _, _ := newBookingFixture(t, "2025-11-28")

	_, _, err := svc.CreateBooking(context.Background(), 99, validRequest("2025-11-30"))
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestCreateBookingEmailFailureDoesNotFailBooking(t *testing.T) {
	svc, bookings, _, mail := newBookingFixture(t, "2025-11-28")
	mail.sendErr = errors.New("provider down")

	booking, _, err := svc.CreateBooking(context.Background(), 7, validRequest("2025-11-30"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Len(t, bookings.bookings, 1)
}

func TestCreateBookingUnconfiguredMailerSkipsSilently(t *testing.T) {
	svc, bookings, _, mail := newBookingFixture(t, "2025-11-28")
	mail.configured = false

	booking, _, err := svc.CreateBooking(context.Background(), 7, validRequest("2025-11-30"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Len(t, bookings.bookings, 1)
	assert.Empty(t, mail.sent)
}

func TestCreateBookingConflictReadFailureDegrades(t *testing.T) {
	svc, bookings, _, _ := newBookingFixture(t, "2025-11-28")
	bookings.countErr = errors.New("postgrest unavailable")

	// The failed read is logged and the submission proceeds; the admin
	// review stage is the backstop for any duplicate this lets through.
	_, _, err := svc.CreateBooking(context.Background(), 7, validRequest("2025-11-30"))
	assert.NoError(t, err)
	assert.Len(t, bookings.bookings, 1)
}

func TestCreateBookingInsertFailure(t *testing.T) {
	svc, bookings, _, mail := newBookingFixture(t, "2025-11-28")
	bookings.createErr = errors.New("insert failed")

	_, _, err := svc.CreateBooking(context.Background(), 7, validRequest("2025-11-30"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.Empty(t, mail.sent)
}

func admin() *helpers.AdminIdentity {
	return &helpers.AdminIdentity{UserID: "a2b2b6d8", Email: "staff@chamber.gov", AccessToken: "tok-123"}
}

func TestListBookingsRequiresIdentity(t *testing.T) {
	svc, _, _, _ := newBookingFixture(t, "2025-11-28")

	_, err := svc.ListBookings(context.Background(), nil, models.BookingFilter{Status: models.StatusFilterAll})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.ListBookings(context.Background(), &helpers.AdminIdentity{}, models.BookingFilter{Status: models.StatusFilterAll})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListBookingsFilters(t *testing.T) {
	svc, bookings, _, _ := newBookingFixture(t, "2025-11-28")
	bookings.bookings = []models.Booking{
		{ID: 1, VenueID: 7, EventDate: "2025-11-29", Status: models.StatusPending},
		{ID: 2, VenueID: 7, EventDate: "2025-11-30", Status: models.StatusApproved},
		{ID: 3, VenueID: 9, EventDate: "2025-11-29", Status: models.StatusPending},
	}

	rows, err := svc.ListBookings(context.Background(), admin(), models.BookingFilter{
		Status: models.ParseStatusFilter("pending"),
	})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = svc.ListBookings(context.Background(), admin(), models.BookingFilter{
		Status:  models.StatusFilterAll,
		VenueID: 7,
	})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestUpdateStatus(t *testing.T) {
	svc, bookings, _, _ := newBookingFixture(t, "2025-11-28")
	bookings.bookings = []models.Booking{
		{ID: 1, VenueID: 7, EventDate: "2025-11-29", Status: models.StatusPending},
	}

	err := svc.UpdateStatus(context.Background(), admin(), 1, models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, bookings.bookings[0].Status)

	// The mutation runs under the admin's own session token.
	assert.Equal(t, "tok-123", bookings.lastUpdateToken)
}

func TestUpdateStatusUnauthorized(t *testing.T) {
	svc, bookings, _, _ := newBookingFixture(t, "2025-11-28")
	bookings.bookings = []models.Booking{
		{ID: 1, VenueID: 7, EventDate: "2025-11-29", Status: models.StatusPending},
	}

	err := svc.UpdateStatus(context.Background(), nil, 1, models.StatusApproved)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, models.StatusPending, bookings.bookings[0].Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, _, _, _ := newBookingFixture(t, "2025-11-28")

	err := svc.UpdateStatus(context.Background(), admin(), 1, models.BookingStatus("canceled"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/chamberhq/venuebook/internal/models"
)

// AvailabilityService answers the two questions the booking flow needs:
// which days of the forward window are already taken, and whether a specific
// (venue, day) pair is free. Occupancy is day-granular: two requests with
// non-overlapping hours on the same day still conflict.
type AvailabilityService struct {
	bookings   models.BookingsRepo
	windowDays int
	now        func() time.Time
}

func NewAvailabilityService(bookings models.BookingsRepo, windowDays int) *AvailabilityService {
	if windowDays <= 0 {
		windowDays = 60
	}
	return &AvailabilityService{
		bookings:   bookings,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// WithClock overrides the service's time source, pinning "today" for tests.
func (as *AvailabilityService) WithClock(now func() time.Time) *AvailabilityService {
	as.now = now
	return as
}

// Today returns the server's calendar day in YYYY-MM-DD form.
func (as *AvailabilityService) Today() string {
	return as.now().Format(models.DateLayout)
}

// WindowEnd is the last day the calendar offers for booking.
func (as *AvailabilityService) WindowEnd() string {
	return as.now().AddDate(0, 0, as.windowDays).Format(models.DateLayout)
}

// OccupiedDates returns the distinct occupied days for the venue within
// [today, today+window], pre-populating the calendar so the requester never
// attempts a known-bad date.
func (as *AvailabilityService) OccupiedDates(ctx context.Context, venueID int64) ([]string, error) {
	if venueID <= 0 {
		return nil, fmt.Errorf("invalid venue ID")
	}
	return as.bookings.OccupiedDates(ctx, venueID, as.Today(), as.WindowEnd())
}

// HasConflict reports whether at least one pending or approved booking
// already occupies the exact (venue, date) pair. Callers re-run this at
// submission time even though the calendar already filtered the option; the
// two checks are not atomic with respect to concurrent submissions.
func (as *AvailabilityService) HasConflict(ctx context.Context, venueID int64, date string) (bool, error) {
	if venueID <= 0 {
		return false, fmt.Errorf("invalid venue ID")
	}
	count, err := as.bookings.CountActive(ctx, venueID, date)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsPast reports whether date falls strictly before today. Past days are
// rejected regardless of occupancy.
func (as *AvailabilityService) IsPast(date string) bool {
	return date < as.Today()
}

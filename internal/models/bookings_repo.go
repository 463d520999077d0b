package models

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/supabase-community/postgrest-go"
)

type BookingsRepo interface {
	// OccupiedDates returns the distinct set of event dates within the
	// inclusive [from, to] window for which the venue has at least one
	// booking in an active (pending or approved) state.
	OccupiedDates(ctx context.Context, venueID int64, from, to string) ([]string, error)

	// CountActive returns how many active bookings occupy the exact
	// (venue, date) pair.
	CountActive(ctx context.Context, venueID int64, date string) (int, error)

	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	ListBookings(ctx context.Context, filter BookingFilter) ([]AdminBooking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status BookingStatus, accessToken string) error
}

func (su *SupabaseRepo) OccupiedDates(ctx context.Context, venueID int64, from, to string) ([]string, error) {
	data, _, err := su.supabaseClient.
		From(BookingsTable).
		Select("event_date", "", false).
		Eq("venue_id", strconv.FormatInt(venueID, 10)).
		In("status", ActiveStatuses).
		Gte("event_date", from).
		Lte("event_date", to).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to load future bookings: %v", err)
	}

	var rows []struct {
		EventDate string `json:"event_date"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking dates: %v", err)
	}

	seen := make(map[string]bool, len(rows))
	dates := make([]string, 0, len(rows))
	for _, r := range rows {
		if seen[r.EventDate] {
			continue
		}
		seen[r.EventDate] = true
		dates = append(dates, r.EventDate)
	}

	return dates, nil
}

func (su *SupabaseRepo) CountActive(ctx context.Context, venueID int64, date string) (int, error) {
	data, _, err := su.supabaseClient.
		From(BookingsTable).
		Select("id", "", false).
		Eq("venue_id", strconv.FormatInt(venueID, 10)).
		Eq("event_date", date).
		In("status", ActiveStatuses).
		Execute()
	if err != nil {
		return 0, fmt.Errorf("failed to check existing bookings: %v", err)
	}

	var rows []struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return 0, fmt.Errorf("failed to unmarshal existing bookings: %v", err)
	}

	return len(rows), nil
}

func (su *SupabaseRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	row := map[string]interface{}{
		"venue_id":        booking.VenueID,
		"requester_name":  booking.RequesterName,
		"requester_email": booking.RequesterEmail,
		"event_date":      booking.EventDate,
		"start_time":      booking.StartTime,
		"end_time":        booking.EndTime,
		"notes":           booking.Notes,
		"status":          booking.Status,
	}

	data, count, err := su.supabaseClient.
		From(BookingsTable).
		Insert(row, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %v", err)
	}

	var created []Booking
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created booking: %v", err)
	}

	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no booking row returned after insert")
	}

	return &created[0], nil
}

func (su *SupabaseRepo) ListBookings(ctx context.Context, filter BookingFilter) ([]AdminBooking, error) {
	query := su.supabaseClient.
		From(BookingsTable).
		Select("id, venue_id, requester_name, requester_email, event_date, start_time, end_time, status, notes, created_at, venues(name)", "", false)

	if filter.Status != StatusFilterAll {
		query = query.Eq("status", string(filter.Status))
	}
	if filter.VenueID != 0 {
		query = query.Eq("venue_id", strconv.FormatInt(filter.VenueID, 10))
	}

	data, _, err := query.
		Order("event_date", &postgrest.OrderOpts{Ascending: true}).
		Order("start_time", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %v", err)
	}

	var bookings []AdminBooking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookings: %v", err)
	}

	return bookings, nil
}

func (su *SupabaseRepo) UpdateBookingStatus(ctx context.Context, id int64, status BookingStatus, accessToken string) error {
	// Run the mutation under the admin's own session so row-level security
	// applies to the caller, not the anon key.
	client := su.supabaseClient
	if accessToken != "" {
		authClient, err := su.GetAuthenticatedClient(accessToken)
		if err != nil {
			return fmt.Errorf("failed to create authenticated client: %v", err)
		}
		client = authClient
	}

	_, count, err := client.
		From(BookingsTable).
		Update(map[string]interface{}{"status": status}, "", "exact").
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update booking status: %v", err)
	}

	if count == 0 {
		return fmt.Errorf("no booking found to update")
	}

	return nil
}

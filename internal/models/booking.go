package models

import (
	"strconv"
	"time"
)

type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusRejected BookingStatus = "rejected"
)

// IsValid reports whether s is one of the three allowed status values.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ActiveStatuses are the states that occupy a calendar day. A rejected
// booking frees its day again.
var ActiveStatuses = []string{string(StatusPending), string(StatusApproved)}

// Booking is a dated request to use a venue. Created in pending state by the
// public flow; only the status field is ever mutated, and only by the admin
// console. Rows are never deleted.
type Booking struct {
	ID             int64         `db:"id" json:"id"`
	VenueID        int64         `db:"venue_id" json:"venue_id"`
	RequesterName  string        `db:"requester_name" json:"requester_name"`
	RequesterEmail string        `db:"requester_email" json:"requester_email"`
	EventDate      string        `db:"event_date" json:"event_date"` // YYYY-MM-DD
	StartTime      string        `db:"start_time" json:"start_time"` // HH:MM wall clock
	EndTime        string        `db:"end_time" json:"end_time"`
	Status         BookingStatus `db:"status" json:"status"`
	Notes          *string       `db:"notes" json:"notes,omitempty"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
}

// BookingRequest is the public submission payload.
type BookingRequest struct {
	RequesterName  string `json:"requester_name" validate:"required"`
	RequesterEmail string `json:"requester_email" validate:"required,email"`
	EventDate      string `json:"event_date" validate:"required,datetime=2006-01-02"`
	StartTime      string `json:"start_time" validate:"required"`
	EndTime        string `json:"end_time" validate:"required"`
	Notes          string `json:"notes"`
}

// AdminBooking is a booking joined with its venue name for the admin list.
// PostgREST embeds the foreign row under the relation name.
type AdminBooking struct {
	Booking
	Venue struct {
		Name string `json:"name"`
	} `json:"venues"`
}

// VenueName falls back to a placeholder when the join returned nothing.
func (b *AdminBooking) VenueName() string {
	if b.Venue.Name != "" {
		return b.Venue.Name
	}
	return "Venue #" + strconv.FormatInt(b.VenueID, 10)
}

// StatusFilter is the admin list filter over booking status.
type StatusFilter string

const StatusFilterAll StatusFilter = "all"

// ParseStatusFilter normalizes the raw query value; anything unrecognized
// falls back to pending, the admin console's default view.
func ParseStatusFilter(raw string) StatusFilter {
	switch raw {
	case "all":
		return StatusFilterAll
	case string(StatusApproved), string(StatusRejected), string(StatusPending):
		return StatusFilter(raw)
	}
	return StatusFilter(StatusPending)
}

// BookingFilter narrows the admin booking list. VenueID of zero means all
// venues.
type BookingFilter struct {
	Status  StatusFilter
	VenueID int64
}

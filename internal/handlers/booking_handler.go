package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chamberhq/venuebook/internal/helpers"
	"github.com/chamberhq/venuebook/internal/models"
	"github.com/chamberhq/venuebook/internal/services"
	"github.com/gin-gonic/gin"
)

// The exact messages the booking form shows for each validation flag.
const (
	MsgMissingFields = "Please fill in all required fields."
	MsgPastDate      = "You cannot book events in the past. Please select a future date."
	MsgConflict      = "This venue is already booked or requested for that day. Please choose a different date."
	MsgInsertFailed  = "There was an error saving your booking. Please try again."
)

// CreateBooking handles the public request form submission.
func CreateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid venue ID format"))
			return
		}

		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.FlaggedErrorResponse(MsgMissingFields, "missing"))
			return
		}

		booking, venue, err := b.CreateBooking(c.Request.Context(), venueID, &req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				c.JSON(http.StatusBadRequest, helpers.FlaggedErrorResponse(MsgMissingFields, "missing"))
			case errors.Is(err, services.ErrPastDate):
				c.JSON(http.StatusBadRequest, helpers.FlaggedErrorResponse(MsgPastDate, "past"))
			case errors.Is(err, services.ErrConflict):
				c.JSON(http.StatusConflict, helpers.FlaggedErrorResponse(MsgConflict, "conflict"))
			case errors.Is(err, services.ErrVenueNotFound):
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("venue not found"))
			default:
				c.JSON(http.StatusInternalServerError, helpers.FlaggedErrorResponse(MsgInsertFailed, "insert"))
			}
			return
		}

		// The confirmation view renders from exactly these fields.
		c.JSON(http.StatusCreated, helpers.SuccessResponse(gin.H{
			"booking_id":     booking.ID,
			"venue_id":       venue.ID,
			"venue_name":     venue.Name,
			"requester_name": booking.RequesterName,
			"event_date":     booking.EventDate,
			"start_time":     booking.StartTime,
			"end_time":       booking.EndTime,
			"status":         booking.Status,
		}, "Booking request submitted"))
	}
}

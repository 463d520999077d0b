package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/chamberhq/venuebook/internal/calendar"
	"github.com/chamberhq/venuebook/internal/helpers"
	"github.com/chamberhq/venuebook/internal/models"
	"github.com/chamberhq/venuebook/internal/services"
	"github.com/gin-gonic/gin"
)

// ListVenues serves the public catalog with the search and capacity filters.
// A catalog read failure degrades to an empty result set; the page still
// renders.
func ListVenues(v *services.VenueService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.VenueFilter{
			Query: c.Query("q"),
		}
		// Unparsable capacity bounds are dropped, like the form's number
		// inputs.
		if raw := c.Query("min_capacity"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				filter.MinCapacity = &n
			}
		}
		if raw := c.Query("max_capacity"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				filter.MaxCapacity = &n
			}
		}

		venues, err := v.ListVenues(c.Request.Context(), filter)
		if err != nil {
			logger.Error("Error loading venues", "error", err)
			venues = []models.Venue{}
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(venues, ""))
	}
}

func GetVenue(v *services.VenueService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid venue ID format"))
			return
		}

		venue, err := v.GetVenue(c.Request.Context(), id)
		if err != nil {
			logger.Error("Error loading venue", "venue_id", id, "error", err)
		}
		if venue == nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse("venue not found"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(venue, ""))
	}
}

// GetAvailability returns the occupied dates for the venue's booking window
// so the calendar can mark them unselectable up front.
func GetAvailability(a *services.AvailabilityService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid venue ID format"))
			return
		}

		occupied, err := a.OccupiedDates(c.Request.Context(), id)
		if err != nil {
			logger.Error("Error loading future bookings", "venue_id", id, "error", err)
			occupied = []string{}
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{
			"venue_id":       id,
			"from":           a.Today(),
			"to":             a.WindowEnd(),
			"occupied_dates": occupied,
		}, ""))
	}
}

// GetCalendar renders one month of the day-availability grid. Month and year
// navigation recomputes the grid from scratch; the only state carried across
// requests is the selected date the client echoes back.
func GetCalendar(a *services.AvailabilityService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid venue ID format"))
			return
		}

		today := a.Today()
		now, _ := time.Parse(models.DateLayout, today)

		year := now.Year()
		if raw := c.Query("year"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				year = n
			}
		}
		month := now.Month()
		if raw := c.Query("month"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= 12 {
				month = time.Month(n)
			}
		}

		dates, err := a.OccupiedDates(c.Request.Context(), id)
		if err != nil {
			logger.Error("Error loading future bookings", "venue_id", id, "error", err)
			dates = nil
		}
		occupied := make(map[string]bool, len(dates))
		for _, d := range dates {
			occupied[d] = true
		}

		selected := calendar.InitialSelection(c.Query("selected"), today, occupied)
		cells := calendar.Build(year, month, occupied, today, selected)

		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{
			"venue_id": id,
			"year":     year,
			"month":    int(month),
			"today":    today,
			"selected": selected,
			"weekdays": calendar.Weekdays,
			"cells":    cells,
		}, ""))
	}
}

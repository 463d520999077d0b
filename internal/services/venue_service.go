package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/chamberhq/venuebook/internal/models"
)

type VenueService struct {
	venues models.VenuesRepo
}

func NewVenueService(venues models.VenuesRepo) *VenueService {
	return &VenueService{
		venues: venues,
	}
}

// ListVenues returns the public catalog, name ascending. Capacity bounds
// below zero are dropped rather than rejected, matching the form's lenient
// handling of its number inputs.
func (vs *VenueService) ListVenues(ctx context.Context, filter models.VenueFilter) ([]models.Venue, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	if filter.MinCapacity != nil && *filter.MinCapacity < 0 {
		filter.MinCapacity = nil
	}
	if filter.MaxCapacity != nil && *filter.MaxCapacity < 0 {
		filter.MaxCapacity = nil
	}
	return vs.venues.ListVenues(ctx, filter)
}

func (vs *VenueService) GetVenue(ctx context.Context, id int64) (*models.Venue, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid venue ID")
	}
	return vs.venues.GetVenueByID(ctx, id)
}

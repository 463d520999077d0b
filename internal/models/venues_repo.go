package models

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/supabase-community/postgrest-go"
)

type VenuesRepo interface {
	ListVenues(ctx context.Context, filter VenueFilter) ([]Venue, error)
	GetVenueByID(ctx context.Context, id int64) (*Venue, error)
}

func (su *SupabaseRepo) ListVenues(ctx context.Context, filter VenueFilter) ([]Venue, error) {
	query := su.supabaseClient.
		From(VenuesTable).
		Select("id, name, address, capacity, description", "", false)

	if filter.MinCapacity != nil {
		query = query.Gte("capacity", strconv.Itoa(*filter.MinCapacity))
	}
	if filter.MaxCapacity != nil {
		query = query.Lte("capacity", strconv.Itoa(*filter.MaxCapacity))
	}
	if filter.Query != "" {
		// Substring match on name OR address, case-insensitive.
		query = query.Or(fmt.Sprintf("name.ilike.%%%s%%,address.ilike.%%%s%%", filter.Query, filter.Query), "")
	}

	data, _, err := query.
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %v", err)
	}

	var venues []Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venues: %v", err)
	}

	return venues, nil
}

func (su *SupabaseRepo) GetVenueByID(ctx context.Context, id int64) (*Venue, error) {
	data, _, err := su.supabaseClient.
		From(VenuesTable).
		Select("id, name, address, capacity, description", "", false).
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get venue by ID: %v", err)
	}

	// Supabase returns an array even for single results
	var venues []Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue rows: %v", err)
	}

	if len(venues) == 0 {
		return nil, nil
	}

	return &venues[0], nil
}

package models

// Venue is a bookable city-owned space. The catalog is read-only from this
// system's perspective; rows are managed directly in Supabase.
type Venue struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Address     *string `db:"address" json:"address,omitempty"`
	Capacity    *int    `db:"capacity" json:"capacity,omitempty"`
	Description *string `db:"description" json:"description,omitempty"`
}

// VenueFilter narrows the catalog listing. Query matches name or address
// case-insensitively as a substring; capacity bounds are inclusive.
type VenueFilter struct {
	Query       string
	MinCapacity *int
	MaxCapacity *int
}

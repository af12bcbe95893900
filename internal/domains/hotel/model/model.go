package model

import "github.com/lib/pq"

const (
	TableName       = "hotels"
	EntityName      = "hotel"
	ImageTableName  = "hotel_images"
	ImageEntityName = "hotel_image"

	FieldID   = "id"
	FieldSlug = "slug"
)

type Hotel struct {
	ID            int64          `db:"id"             generated:"true"`
	Slug          string         `db:"slug"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	GuestCount    int            `db:"guest_count"`
	BedroomCount  int            `db:"bedroom_count"`
	BathroomCount int            `db:"bathroom_count"`
	Amenities     pq.StringArray `db:"amenities"`
	HostName      string         `db:"host_name"`
	HostImage     string         `db:"host_image"`
	Address       string         `db:"address"`
	Latitude      float64        `db:"latitude"`
	Longitude     float64        `db:"longitude"`
	Images        pq.StringArray `db:"images"         generated:"true"`
}

// Exists reports whether the row came from the database.
func (h Hotel) Exists() bool {
	return h.ID != 0
}

type HotelImage struct {
	HotelID  int64  `db:"hotel_id"`
	ImageURL string `db:"image_url"`
}

package model

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldHotelSlug = "hotel_slug"
)

// Room references its hotel by slug value only; the schema holds no foreign key.
type Room struct {
	HotelSlug    string  `db:"hotel_slug"`
	RoomSlug     string  `db:"room_slug"`
	RoomImage    *string `db:"room_image"`
	RoomTitle    string  `db:"room_title"`
	BedroomCount int     `db:"bedroom_count"`
}

package dto

import (
	"mime/multipart"

	"hotelier/internal/domains/room/model"
)

type CreateRoomRequest struct {
	HotelSlug    string                `json:"hotel_slug"    validate:"required"`
	RoomSlug     string                `json:"room_slug"     validate:"required"`
	RoomImage    string                `json:"room_image"`
	RoomTitle    string                `json:"room_title"`
	BedroomCount int                   `json:"bedroom_count"`
	Image        *multipart.FileHeader `json:"-"`
}

// ToModel maps the request onto a row. imageURL wins over a room_image form
// value; an empty reference is stored as NULL.
func (c *CreateRoomRequest) ToModel(imageURL string) model.Room {
	room := model.Room{
		HotelSlug:    c.HotelSlug,
		RoomSlug:     c.RoomSlug,
		RoomTitle:    c.RoomTitle,
		BedroomCount: c.BedroomCount,
	}

	if imageURL == "" {
		imageURL = c.RoomImage
	}

	if imageURL != "" {
		room.RoomImage = &imageURL
	}

	return room
}

type RoomResponse struct {
	HotelSlug    string  `json:"hotel_slug"`
	RoomSlug     string  `json:"room_slug"`
	RoomImage    *string `json:"room_image"`
	RoomTitle    string  `json:"room_title"`
	BedroomCount int     `json:"bedroom_count"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.HotelSlug = model.HotelSlug
	r.RoomSlug = model.RoomSlug
	r.RoomImage = model.RoomImage
	r.RoomTitle = model.RoomTitle
	r.BedroomCount = model.BedroomCount
}

// FromModels always returns a non-nil slice so an empty result encodes as [].
func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

package dto

import (
	"mime/multipart"

	"hotelier/internal/domains/hotel/model"

	"github.com/lib/pq"
)

type CreateHotelRequest struct {
	Slug          string                  `json:"slug"           validate:"required"`
	Title         string                  `json:"title"          validate:"required"`
	Description   string                  `json:"description"`
	GuestCount    int                     `json:"guest_count"`
	BedroomCount  int                     `json:"bedroom_count"`
	BathroomCount int                     `json:"bathroom_count"`
	Amenities     []string                `json:"amenities"`
	HostName      string                  `json:"host_name"`
	HostImage     string                  `json:"host_image"`
	Address       string                  `json:"address"`
	Latitude      float64                 `json:"latitude"`
	Longitude     float64                 `json:"longitude"`
	Images        []*multipart.FileHeader `json:"-"              validate:"max=5"`
}

func (c *CreateHotelRequest) ToModel() model.Hotel {
	amenities := pq.StringArray{}
	amenities = append(amenities, c.Amenities...)

	return model.Hotel{
		Slug:          c.Slug,
		Title:         c.Title,
		Description:   c.Description,
		GuestCount:    c.GuestCount,
		BedroomCount:  c.BedroomCount,
		BathroomCount: c.BathroomCount,
		Amenities:     amenities,
		HostName:      c.HostName,
		HostImage:     c.HostImage,
		Address:       c.Address,
		Latitude:      c.Latitude,
		Longitude:     c.Longitude,
	}
}

type HotelResponse struct {
	ID            int64    `json:"id"`
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	GuestCount    int      `json:"guest_count"`
	BedroomCount  int      `json:"bedroom_count"`
	BathroomCount int      `json:"bathroom_count"`
	Amenities     []string `json:"amenities"`
	HostName      string   `json:"host_name"`
	HostImage     string   `json:"host_image"`
	Address       string   `json:"address"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Images        []string `json:"images"`
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Slug = model.Slug
	r.Title = model.Title
	r.Description = model.Description
	r.GuestCount = model.GuestCount
	r.BedroomCount = model.BedroomCount
	r.BathroomCount = model.BathroomCount
	r.Amenities = append([]string{}, model.Amenities...)
	r.HostName = model.HostName
	r.HostImage = model.HostImage
	r.Address = model.Address
	r.Latitude = model.Latitude
	r.Longitude = model.Longitude
	r.Images = append([]string{}, model.Images...)
}

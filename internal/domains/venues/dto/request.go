package dto

import (
	"github.com/savioruz/kickmatch/internal/domains/venues/catalog"
	"github.com/savioruz/kickmatch/internal/domains/venues/entity"
)

type FilterRequest struct {
	Text     string   `json:"text" query:"text" validate:"omitempty,max=100"`
	Size     string   `json:"size" query:"size" validate:"omitempty,oneof=5 7 11 5-a-side 7-a-side 11-a-side any"`
	Surface  string   `json:"surface" query:"surface" validate:"omitempty,oneof=synthetic natural concrete any"`
	MinPrice float64  `json:"min_price" query:"min_price" validate:"omitempty,min=0"`
	MaxPrice *float64 `json:"max_price" query:"max_price" validate:"omitempty,min=0,gtefield=MinPrice"`
}

func (r FilterRequest) ToFilter() catalog.Filter {
	f := catalog.Filter{
		Text:     r.Text,
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
	}

	if size, ok := entity.ParseSize(r.Size); ok {
		f.Size = &size
	}

	if surface, ok := entity.ParseSurface(r.Surface); ok {
		f.Surface = &surface
	}

	return f
}

type SearchRequest struct {
	Lat          *float64 `json:"lat" validate:"required_with=Lon,omitempty,latitude"`
	Lon          *float64 `json:"lon" validate:"required_with=Lat,omitempty,longitude"`
	RadiusMeters int      `json:"radius" validate:"omitempty,min=100,max=50000"`
	Query        string   `json:"query" validate:"omitempty,max=100"`
	FilterRequest
}

type RelocateRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lon *float64 `json:"lon" validate:"required,longitude"`
}

type VenueCreateRequest struct {
	Name         string   `json:"name" validate:"required,min=3,max=255"`
	Address      string   `json:"address" validate:"required,min=3,max=255"`
	Size         string   `json:"size" validate:"required,oneof=5-a-side 7-a-side 11-a-side"`
	Surface      string   `json:"surface" validate:"required,oneof=synthetic natural concrete"`
	PricePerHour float64  `json:"price_per_hour" validate:"min=0"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	Amenities    []string `json:"amenities" validate:"omitempty,dive,required"`
	Phone        string   `json:"phone" validate:"omitempty,max=30"`
	OpeningHours string   `json:"opening_hours" validate:"omitempty,max=100"`
	Description  string   `json:"description" validate:"omitempty,max=2000"`
}

type VenueUpdateRequest struct {
	Name         string   `json:"name" validate:"omitempty,min=3,max=255"`
	Address      string   `json:"address" validate:"omitempty,min=3,max=255"`
	Size         string   `json:"size" validate:"omitempty,oneof=5-a-side 7-a-side 11-a-side"`
	Surface      string   `json:"surface" validate:"omitempty,oneof=synthetic natural concrete"`
	PricePerHour *float64 `json:"price_per_hour" validate:"omitempty,min=0"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,longitude"`
	Amenities    []string `json:"amenities" validate:"omitempty,dive,required"`
	Phone        *string  `json:"phone" validate:"omitempty,max=30"`
	OpeningHours *string  `json:"opening_hours" validate:"omitempty,max=100"`
	Description  *string  `json:"description" validate:"omitempty,max=2000"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type PhotoDeleteRequest struct {
	URL string `json:"url" validate:"required,url"`
}

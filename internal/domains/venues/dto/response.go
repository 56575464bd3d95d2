package dto

import (
	"github.com/savioruz/kickmatch/internal/domains/venues/catalog"
	"github.com/savioruz/kickmatch/internal/domains/venues/entity"
	"github.com/savioruz/kickmatch/pkg/constant"
	"github.com/savioruz/kickmatch/pkg/geo"
	"github.com/savioruz/kickmatch/pkg/helper"
)

type VenueResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Size         string   `json:"size"`
	Surface      string   `json:"surface"`
	PricePerHour float64  `json:"price_per_hour"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	DistanceKm   float64  `json:"distance_km"`
	Rating       float64  `json:"rating"`
	RatingCount  int      `json:"rating_count"`
	Amenities    []string `json:"amenities"`
	Photos       []string `json:"photos"`
	Active       bool     `json:"active"`
	Phone        string   `json:"phone,omitempty"`
	OpeningHours string   `json:"opening_hours,omitempty"`
	Description  string   `json:"description,omitempty"`
	OwnerID      string   `json:"owner_id,omitempty"`
	Source       string   `json:"source"`
	CreatedAt    string   `json:"created_at,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

func (v VenueResponse) FromEntity(e entity.Venue) VenueResponse {
	res := VenueResponse{
		ID:           e.ID,
		Name:         e.Name,
		Address:      e.Address,
		Size:         string(e.Size),
		Surface:      string(e.Surface),
		PricePerHour: e.PricePerHour,
		Latitude:     e.Latitude,
		Longitude:    e.Longitude,
		DistanceKm:   e.DistanceKm,
		Rating:       e.Rating,
		RatingCount:  e.RatingCount,
		Amenities:    e.Amenities,
		Photos:       e.Photos,
		Active:       e.Active,
		Phone:        e.Phone,
		OpeningHours: e.OpeningHours,
		Description:  e.Description,
		OwnerID:      e.OwnerID,
		Source:       string(e.Source),
	}

	if res.Amenities == nil {
		res.Amenities = []string{}
	}

	if res.Photos == nil {
		res.Photos = []string{}
	}

	if !e.CreatedAt.IsZero() {
		res.CreatedAt = helper.ToAppTimezone(e.CreatedAt).Format(constant.FullDateFormat)
		res.UpdatedAt = helper.ToAppTimezone(e.UpdatedAt).Format(constant.FullDateFormat)
	}

	return res
}

func FromEntities(venues []entity.Venue) []VenueResponse {
	out := make([]VenueResponse, len(venues))
	for i, v := range venues {
		out[i] = VenueResponse{}.FromEntity(v)
	}

	return out
}

type CatalogResponse struct {
	Source string          `json:"source"`
	Origin geo.Point       `json:"origin"`
	Total  int             `json:"total"`
	Venues []VenueResponse `json:"venues"`
}

func (c CatalogResponse) FromSnapshot(snap *catalog.Snapshot, venues []entity.Venue) CatalogResponse {
	return CatalogResponse{
		Source: string(snap.Source()),
		Origin: snap.Origin(),
		Total:  len(venues),
		Venues: FromEntities(venues),
	}
}

type GetVenuesResponse struct {
	Venues     []VenueResponse `json:"venues"`
	TotalItems int             `json:"total_items"`
	TotalPages int             `json:"total_pages"`
}

func (g *GetVenuesResponse) FromEntities(venues []entity.Venue, totalItems, limit int) {
	g.TotalItems = totalItems
	g.TotalPages = helper.CalculateTotalPages(totalItems, limit)
	g.Venues = FromEntities(venues)
}

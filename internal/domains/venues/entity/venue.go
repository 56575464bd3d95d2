package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/savioruz/kickmatch/pkg/constant"
	"github.com/savioruz/kickmatch/pkg/geo"
)

type Size string

const (
	Size5  Size = "5-a-side"
	Size7  Size = "7-a-side"
	Size11 Size = "11-a-side"
)

type Surface string

const (
	SurfaceSynthetic Surface = "synthetic"
	SurfaceNatural   Surface = "natural"
	SurfaceConcrete  Surface = "concrete"
)

type Source string

const (
	SourceRegistered Source = constant.VenueSourceRegistered
	SourcePlaces     Source = constant.VenueSourcePlaces
	SourceDemo       Source = constant.VenueSourceDemo
)

type Venue struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Size         Size      `json:"size"`
	Surface      Surface   `json:"surface"`
	PricePerHour float64   `json:"price_per_hour"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	DistanceKm   float64   `json:"distance_km"`
	Rating       float64   `json:"rating"`
	RatingCount  int       `json:"rating_count"`
	Amenities    []string  `json:"amenities"`
	Photos       []string  `json:"photos"`
	Active       bool      `json:"active"`
	Phone        string    `json:"phone"`
	OpeningHours string    `json:"opening_hours"`
	Description  string    `json:"description"`
	OwnerID      string    `json:"owner_id,omitempty"`
	Source       Source    `json:"source"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (v Venue) Point() geo.Point {
	return geo.Point{Lat: v.Latitude, Lon: v.Longitude}
}

// Clone returns a copy that shares no slices with v.
func (v Venue) Clone() Venue {
	out := v
	out.Amenities = slices.Clone(v.Amenities)
	out.Photos = slices.Clone(v.Photos)

	return out
}

func (v Venue) HasAmenity(id string) bool {
	for _, a := range v.Amenities {
		if a == id {
			return true
		}
	}

	return false
}

// ParseSize accepts "5", "5-a-side", "futbol 5" and similar. "" and "any" report ok=false.
func ParseSize(s string) (Size, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch {
	case s == "" || s == "any":
		return "", false
	case strings.Contains(s, "11"):
		return Size11, true
	case strings.Contains(s, "7"):
		return Size7, true
	case strings.Contains(s, "5"):
		return Size5, true
	default:
		return "", false
	}
}

func ParseSurface(s string) (Surface, bool) {
	switch Surface(strings.ToLower(strings.TrimSpace(s))) {
	case SurfaceSynthetic:
		return SurfaceSynthetic, true
	case SurfaceNatural:
		return SurfaceNatural, true
	case SurfaceConcrete:
		return SurfaceConcrete, true
	default:
		return "", false
	}
}

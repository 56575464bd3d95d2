package catalog

import (
	"github.com/savioruz/kickmatch/internal/domains/venues/entity"
	"github.com/savioruz/kickmatch/pkg/geo"
)

// DefaultOrigin is used when a client has not shared its location.
var DefaultOrigin = geo.Point{Lat: 3.4516, Lon: -76.5320}

func DemoVenues() []entity.Venue {
	return []entity.Venue{
		{
			ID:           "1",
			Name:         "Cancha Sintética Los Campeones",
			Address:      "Cra 5 #10-20, Valle del Cauca",
			Size:         entity.Size5,
			Surface:      entity.SurfaceSynthetic,
			PricePerHour: 80000,
			Latitude:     3.4516,
			Longitude:    -76.5320,
			Rating:       4.5,
			Amenities:    []string{entity.AmenityParking, entity.AmenityLighting, entity.AmenityShowers},
			Photos:       []string{},
			Active:       true,
			OpeningHours: "06:00 - 22:00",
			Source:       entity.SourceDemo,
		},
		{
			ID:           "2",
			Name:         "Complejo Deportivo El Diamante",
			Address:      "Calle 25 #100-50, Valle del Cauca",
			Size:         entity.Size7,
			Surface:      entity.SurfaceSynthetic,
			PricePerHour: 120000,
			Latitude:     3.4376,
			Longitude:    -76.5225,
			Rating:       4.8,
			Amenities:    []string{entity.AmenityParking, entity.AmenityLighting, entity.AmenityShowers},
			Photos:       []string{},
			Active:       true,
			OpeningHours: "06:00 - 22:00",
			Source:       entity.SourceDemo,
		},
	}
}

// Resolve builds the snapshot for a live result, falling back to the demo set when the search failed or found nothing.
func Resolve(live []entity.Venue, source entity.Source, err error, origin geo.Point) *Snapshot {
	if err != nil || len(live) == 0 {
		return NewSnapshot(DemoVenues(), entity.SourceDemo, origin)
	}

	return NewSnapshot(live, source, origin)
}

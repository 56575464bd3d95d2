package catalog

import (
	"sort"

	"github.com/savioruz/kickmatch/internal/domains/venues/entity"
	"github.com/savioruz/kickmatch/pkg/geo"
)

// Snapshot is an immutable view of one fetch. Venues are copied on the way in and out.
type Snapshot struct {
	venues []entity.Venue
	source entity.Source
	origin geo.Point
}

// NewSnapshot computes every distance from origin and orders venues nearest first.
func NewSnapshot(venues []entity.Venue, source entity.Source, origin geo.Point) *Snapshot {
	out := make([]entity.Venue, len(venues))
	for i, v := range venues {
		out[i] = v.Clone()
		out[i].DistanceKm = geo.Between(origin, v.Point())
	}

	sortByDistance(out)

	return &Snapshot{
		venues: out,
		source: source,
		origin: origin,
	}
}

func (s *Snapshot) Source() entity.Source {
	return s.source
}

func (s *Snapshot) Origin() geo.Point {
	return s.origin
}

func (s *Snapshot) Len() int {
	return len(s.venues)
}

func (s *Snapshot) Venues() []entity.Venue {
	return cloneAll(s.venues)
}

func (s *Snapshot) Find(id string) (entity.Venue, bool) {
	for _, v := range s.venues {
		if v.ID == id {
			return v.Clone(), true
		}
	}

	return entity.Venue{}, false
}

// ApplyFilters returns the matching venues ordered by ascending distance. Ties keep fetch order.
func (s *Snapshot) ApplyFilters(f Filter) []entity.Venue {
	out := make([]entity.Venue, 0, len(s.venues))

	for _, v := range s.venues {
		if f.Matches(v) {
			out = append(out, v.Clone())
		}
	}

	sortByDistance(out)

	return out
}

// Relocate returns a new snapshot with distances measured from (lat, lon).
func (s *Snapshot) Relocate(lat, lon float64) *Snapshot {
	return NewSnapshot(s.venues, s.source, geo.Point{Lat: lat, Lon: lon})
}

func sortByDistance(venues []entity.Venue) {
	sort.SliceStable(venues, func(i, j int) bool {
		return venues[i].DistanceKm < venues[j].DistanceKm
	})
}

func cloneAll(venues []entity.Venue) []entity.Venue {
	out := make([]entity.Venue, len(venues))
	for i, v := range venues {
		out[i] = v.Clone()
	}

	return out
}

package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by DistanceKm.
const EarthRadiusKm = 6371.0

// Point is a coordinate pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceKm returns the great-circle distance between two coordinates using the haversine formula.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	// rounding can push a slightly above 1 for antipodal points
	a = math.Min(1, math.Max(0, a))

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Between is DistanceKm over two points.
func Between(a, b Point) float64 {
	return DistanceKm(a.Lat, a.Lon, b.Lat, b.Lon)
}

// IsValid reports whether the point lies inside the WGS84 coordinate ranges.
func IsValid(p Point) bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) {
		return false
	}

	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// kmPerDegreeLat is the length of one degree of latitude on the mean sphere.
const kmPerDegreeLat = EarthRadiusKm * math.Pi / 180

// BoundingBox returns the south-west and north-east corners of a box enclosing the circle of radiusKm around p.
// Longitudes are clamped at the antimeridian rather than wrapped.
func BoundingBox(p Point, radiusKm float64) (Point, Point) {
	dLat := radiusKm / kmPerDegreeLat

	dLon := 180.0
	if c := math.Cos(toRadians(p.Lat)); c > 1e-9 {
		dLon = math.Min(180, radiusKm/(kmPerDegreeLat*c))
	}

	sw := Point{Lat: math.Max(-90, p.Lat-dLat), Lon: math.Max(-180, p.Lon-dLon)}
	ne := Point{Lat: math.Min(90, p.Lat+dLat), Lon: math.Min(180, p.Lon+dLon)}

	return sw, ne
}

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	t.Run("known fixture in Cali", func(t *testing.T) {
		d := DistanceKm(3.4516, -76.5320, 3.4376, -76.5225)

		assert.GreaterOrEqual(t, d, 1.8)
		assert.LessOrEqual(t, d, 2.0)
	})

	t.Run("city pairs", func(t *testing.T) {
		cases := []struct {
			name     string
			a, b     Point
			expected float64
		}{
			{name: "london to paris", a: Point{51.5074, -0.1278}, b: Point{48.8566, 2.3522}, expected: 343.56},
			{name: "bogota to medellin", a: Point{4.7110, -74.0721}, b: Point{6.2442, -75.5812}, expected: 238.67},
			{name: "new york to los angeles", a: Point{40.7128, -74.0060}, b: Point{34.0522, -118.2437}, expected: 3935.75},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.InDelta(t, tc.expected, Between(tc.a, tc.b), 0.05)
			})
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		points := []Point{
			{3.4516, -76.5320},
			{-33.8688, 151.2093},
			{64.1466, -21.9426},
			{0, 0},
			{-90, 180},
		}

		for _, a := range points {
			for _, b := range points {
				assert.Equal(t, Between(a, b), Between(b, a))
			}
		}
	})

	t.Run("zero on identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, DistanceKm(3.4516, -76.5320, 3.4516, -76.5320))
		assert.Equal(t, 0.0, DistanceKm(-45, 170, -45, 170))
	})

	t.Run("antipodal points stay finite", func(t *testing.T) {
		d := DistanceKm(0, 0, 0, 180)

		assert.InDelta(t, 20015.1, d, 0.5)
	})
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(Point{3.4516, -76.5320}))
	assert.False(t, IsValid(Point{91, 0}))
	assert.False(t, IsValid(Point{0, -181}))
}

func TestBoundingBox(t *testing.T) {
	center := Point{Lat: 3.4516, Lon: -76.5320}
	sw, ne := BoundingBox(center, 15)

	assert.Less(t, sw.Lat, center.Lat)
	assert.Greater(t, ne.Lat, center.Lat)
	assert.InDelta(t, 15, DistanceKm(center.Lat, center.Lon, ne.Lat, center.Lon), 0.01)
	assert.InDelta(t, 15, DistanceKm(center.Lat, center.Lon, center.Lat, ne.Lon), 0.05)

	sw, ne = BoundingBox(Point{Lat: 90, Lon: 0}, 10)
	assert.Equal(t, -180.0, sw.Lon)
	assert.Equal(t, 180.0, ne.Lon)
	assert.Equal(t, 90.0, ne.Lat)
}

package entity

import (
	"testing"

	"github.com/savioruz/kickmatch/pkg/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmenities(t *testing.T) {
	list := Amenities()
	require.Len(t, list, 10)
	assert.Equal(t, AmenityParking, list[0].ID)

	list[0].ID = "mutated"
	assert.Equal(t, AmenityParking, Amenities()[0].ID)
}

func TestNormalizeAmenities(t *testing.T) {
	out, err := NormalizeAmenities([]string{"showers", "parking", "showers"})
	require.NoError(t, err)
	assert.Equal(t, []string{"showers", "parking"}, out)

	_, err = NormalizeAmenities([]string{"pool"})
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestVenue_Clone(t *testing.T) {
	v := Venue{ID: "1", Amenities: []string{"parking"}, Photos: []string{"a.png"}}
	c := v.Clone()
	c.Amenities[0] = "wifi"
	c.Photos[0] = "b.png"

	assert.Equal(t, "parking", v.Amenities[0])
	assert.Equal(t, "a.png", v.Photos[0])
	assert.True(t, v.HasAmenity("parking"))
	assert.False(t, v.HasAmenity("wifi"))
}

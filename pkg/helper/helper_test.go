package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUniqueKey(t *testing.T) {
	a := GenerateUniqueKey(map[string]string{"lat": "3.45", "lon": "-76.53", "radius": "15000"})
	b := GenerateUniqueKey(map[string]string{"radius": "15000", "lon": "-76.53", "lat": "3.45"})

	assert.Equal(t, a, b)
	assert.Equal(t, "lat=3.45;lon=-76.53;radius=15000;", a)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "kickmatch:cache:venues", BuildCacheKey("venues"))
	assert.Equal(t, "kickmatch:cache:venues:abc", BuildCacheKey("venues", "abc"))
	assert.Equal(t, "kickmatch:cache:venues", BuildCacheKey("venues", ""))
}

func TestIsValidImageType(t *testing.T) {
	assert.True(t, IsValidImageType("image/png"))
	assert.False(t, IsValidImageType("application/pdf"))
}

func TestInitTimezone(t *testing.T) {
	t.Cleanup(func() { AppTimezone = nil })

	InitTimezone("America/Bogota")
	assert.Equal(t, "America/Bogota", Location().String())

	InitTimezone("Nowhere/Unknown")
	assert.Equal(t, time.UTC, Location())
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		in          Descriptor
		wantSize    Size
		wantSurface Surface
	}{
		{
			name:        "municipal eleven a side",
			in:          Descriptor{Name: "Cancha Fútbol 11 Municipal"},
			wantSize:    Size11,
			wantSurface: SurfaceSynthetic,
		},
		{
			name:        "natural grass from description",
			in:          Descriptor{Name: "Cancha El Prado", Description: "grama natural"},
			wantSize:    Size7,
			wantSurface: SurfaceNatural,
		},
		{
			name:        "unclassifiable text",
			in:          Descriptor{Name: "Parque", Description: "abierto al público"},
			wantSize:    Size7,
			wantSurface: SurfaceSynthetic,
		},
		{
			name:        "sport tag carries size",
			in:          Descriptor{Name: "Polideportivo", Sport: "soccer;5"},
			wantSize:    Size5,
			wantSurface: SurfaceSynthetic,
		},
		{
			name:        "concrete surface",
			in:          Descriptor{Name: "Futbol 5 Barrio", Surface: "asphalt"},
			wantSize:    Size5,
			wantSurface: SurfaceConcrete,
		},
		{
			name:        "synthetic wins over natural",
			in:          Descriptor{Surface: "artificial_turf", Description: "natural light"},
			wantSize:    Size7,
			wantSurface: SurfaceSynthetic,
		},
		{
			name:        "case insensitive",
			in:          Descriptor{Name: "FUTBOL 7 LA 14", Description: "CÉSPED"},
			wantSize:    Size7,
			wantSurface: SurfaceNatural,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			size, surface := Classify(tc.in)
			assert.Equal(t, tc.wantSize, size)
			assert.Equal(t, tc.wantSurface, surface)
		})
	}
}

func TestClassifySize(t *testing.T) {
	tests := []struct {
		name  string
		sport string
		want  Size
	}{
		{name: "Cancha 11 de Fútbol", want: Size11},
		{name: "Futbol-11 El Pino", want: Size11},
		{name: "Fútbol Club Sede 11", want: Size11},
		{name: "Estadio", sport: "soccer;11", want: Size11},
		{name: "Cancha 11", want: Size7},
		{name: "Cancha 5 Los Pinos", want: Size5},
		{name: "Sede 7 de Agosto", want: Size7},
		{name: "Polideportivo", sport: "5", want: Size5},
		{name: "Cancha 7 y 5", want: Size7},
		{name: "Cancha La Loma", want: DefaultSize},
	}

	for _, tc := range tests {
		t.Run(tc.name+"/"+tc.sport, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifySize(tc.name, tc.sport))
		})
	}
}

func TestSizeRules_Order(t *testing.T) {
	// "11" with fútbol must not fall through to the plain digit rules.
	assert.Equal(t, Size11, ClassifySize("Fútbol 11 - 7 cupos", ""))

	for i, rule := range SizeRules {
		name := rule.Digits
		if len(rule.Context) > 0 {
			name = rule.Context[0] + " " + rule.Digits
		}

		if rule.SportOnly {
			assert.Equal(t, rule.Size, ClassifySize("", rule.Digits), "rule %d", i)

			continue
		}

		assert.Equal(t, rule.Size, ClassifySize(name, ""), "rule %d", i)
	}
}

func TestSurfaceRules_EachRuleMatches(t *testing.T) {
	for i, rule := range SurfaceRules {
		for _, p := range rule.Patterns {
			assert.Equal(t, rule.Surface, ClassifySurface(p, ""), "rule %d surface pattern %q", i, p)
			assert.Equal(t, rule.Surface, ClassifySurface("", "cancha "+p), "rule %d description pattern %q", i, p)
		}
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]struct {
		size Size
		ok   bool
	}{
		"5":         {Size5, true},
		"7-a-side":  {Size7, true},
		"Fútbol 11": {Size11, true},
		"any":       {"", false},
		"":          {"", false},
		"huge":      {"", false},
	}

	for in, want := range tests {
		size, ok := ParseSize(in)
		assert.Equal(t, want.size, size, in)
		assert.Equal(t, want.ok, ok, in)
	}
}

func TestParseSurface(t *testing.T) {
	s, ok := ParseSurface("Natural")
	assert.True(t, ok)
	assert.Equal(t, SurfaceNatural, s)

	_, ok = ParseSurface("any")
	assert.False(t, ok)
}

package entity

import "strings"

// Descriptor is the free text a venue is classified from.
type Descriptor struct {
	Name        string
	Sport       string
	Surface     string
	Description string
}

// SizeRule matches when Digits appears in the scanned text together with at least one
// Context word. An empty Context needs the digits alone. SportOnly scans only the sport tag.
type SizeRule struct {
	Size      Size
	Digits    string
	Context   []string
	SportOnly bool
}

type SurfaceRule struct {
	Surface  Surface
	Patterns []string
}

const (
	DefaultSize    = Size7
	DefaultSurface = SurfaceSynthetic
)

// SizeRules are evaluated in order against the lower-cased name and sport tag; first match wins.
var SizeRules = []SizeRule{
	{Size: Size11, Digits: "11", Context: []string{"futbol", "fútbol"}},
	{Size: Size11, Digits: "11", SportOnly: true},
	{Size: Size7, Digits: "7"},
	{Size: Size5, Digits: "5"},
}

// SurfaceRules are evaluated in order against the lower-cased surface and description.
var SurfaceRules = []SurfaceRule{
	{Surface: SurfaceSynthetic, Patterns: []string{"artificial", "synthetic", "sintetic", "sintétic"}},
	{Surface: SurfaceNatural, Patterns: []string{"grass", "natural", "césped", "cesped"}},
	{Surface: SurfaceConcrete, Patterns: []string{"concrete", "asphalt", "cemento", "concreto"}},
}

func (r SizeRule) Match(name, sport string) bool {
	text := sport
	if !r.SportOnly {
		text = name + " " + sport
	}

	if !strings.Contains(text, r.Digits) {
		return false
	}

	return len(r.Context) == 0 || containsAny(text, r.Context)
}

func (r SurfaceRule) Match(text string) bool {
	return containsAny(text, r.Patterns)
}

// Classify maps free text to a size and surface. Unrecognised text yields 7-a-side synthetic.
func Classify(d Descriptor) (Size, Surface) {
	return ClassifySize(d.Name, d.Sport), ClassifySurface(d.Surface, d.Description)
}

func ClassifySize(name, sport string) Size {
	name = strings.ToLower(name)
	sport = strings.ToLower(sport)

	for _, rule := range SizeRules {
		if rule.Match(name, sport) {
			return rule.Size
		}
	}

	return DefaultSize
}

func ClassifySurface(surface, description string) Surface {
	text := strings.ToLower(surface + " " + description)

	for _, rule := range SurfaceRules {
		if rule.Match(text) {
			return rule.Surface
		}
	}

	return DefaultSurface
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}

	return false
}

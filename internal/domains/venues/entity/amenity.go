package entity

import (
	"fmt"

	"github.com/savioruz/kickmatch/pkg/failure"
)

const (
	AmenityParking    = "parking"
	AmenityLighting   = "lighting"
	AmenityShowers    = "showers"
	AmenityLockers    = "lockers"
	AmenityBleachers  = "bleachers"
	AmenityCafeteria  = "cafeteria"
	AmenityWifi       = "wifi"
	AmenitySecurity   = "security"
	AmenityScoreboard = "scoreboard"
	AmenityFirstAid   = "first_aid"
)

type Amenity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var amenities = []Amenity{
	{ID: AmenityParking, Name: "Parqueadero", Icon: "ic_parking"},
	{ID: AmenityLighting, Name: "Iluminación", Icon: "ic_light"},
	{ID: AmenityShowers, Name: "Duchas", Icon: "ic_shower"},
	{ID: AmenityLockers, Name: "Vestidores", Icon: "ic_locker"},
	{ID: AmenityBleachers, Name: "Graderías", Icon: "ic_bleachers"},
	{ID: AmenityCafeteria, Name: "Cafetería", Icon: "ic_restaurant"},
	{ID: AmenityWifi, Name: "WiFi", Icon: "ic_wifi"},
	{ID: AmenitySecurity, Name: "Seguridad", Icon: "ic_security"},
	{ID: AmenityScoreboard, Name: "Marcador", Icon: "ic_scoreboard"},
	{ID: AmenityFirstAid, Name: "Primeros auxilios", Icon: "ic_medical"},
}

func Amenities() []Amenity {
	return append([]Amenity(nil), amenities...)
}

func IsAmenity(id string) bool {
	for _, a := range amenities {
		if a.ID == id {
			return true
		}
	}

	return false
}

// NormalizeAmenities validates ids against the vocabulary and drops duplicates, keeping first-seen order.
func NormalizeAmenities(ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		if !IsAmenity(id) {
			return nil, failure.BadRequestFromString(fmt.Sprintf("unknown amenity %q", id))
		}

		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out, nil
}

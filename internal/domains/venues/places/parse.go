package places

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/savioruz/kickmatch/internal/domains/venues/entity"
	"github.com/savioruz/kickmatch/pkg/geo"
	"github.com/savioruz/kickmatch/pkg/logger"
)

const DefaultVenueName = "Cancha de fútbol"

var errBadCoordinates = errors.New("feature has no usable coordinates")

type featureCollection struct {
	Features []json.RawMessage `json:"features"`
}

type feature struct {
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties properties `json:"properties"`
}

type properties struct {
	PlaceID      text    `json:"place_id"`
	Name         text    `json:"name"`
	Street       text    `json:"street"`
	HouseNumber  text    `json:"housenumber"`
	City         text    `json:"city"`
	Country      text    `json:"country"`
	Sport        text    `json:"sport"`
	Surface      text    `json:"surface"`
	Description  text    `json:"description"`
	OpeningHours text    `json:"opening_hours"`
	ContactPhone text    `json:"contact:phone"`
	Rating       float64 `json:"rating"`
	Contact      struct {
		Phone text `json:"phone"`
	} `json:"contact"`
	Datasource struct {
		Raw json.RawMessage `json:"raw"`
	} `json:"datasource"`
}

// text decodes strings, numbers and booleans alike; null leaves it empty.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		*t = text(s)

		return nil
	}

	if _, err := strconv.ParseFloat(string(b), 64); err == nil || bytes.Equal(b, []byte("true")) || bytes.Equal(b, []byte("false")) {
		*t = text(b)

		return nil
	}

	return errors.New("unsupported text value " + string(b))
}

// parseFeatureCollection never fails: an unreadable body yields no venues and bad features are skipped.
func parseFeatureCollection(body []byte, originLat, originLon float64, log logger.Interface) []entity.Venue {
	var fc featureCollection
	if err := json.Unmarshal(body, &fc); err != nil {
		log.Warn("places - parse - %s", "unreadable feature collection: %v", err)

		return []entity.Venue{}
	}

	venues := make([]entity.Venue, 0, len(fc.Features))

	for i, raw := range fc.Features {
		v, err := parseFeature(raw, originLat, originLon)
		if err != nil {
			log.Debug("places - parse - %s", "skipping feature %d: %v", i, err)

			continue
		}

		venues = append(venues, v)
	}

	return venues
}

func parseFeature(raw json.RawMessage, originLat, originLon float64) (entity.Venue, error) {
	var f feature
	if err := json.Unmarshal(raw, &f); err != nil {
		return entity.Venue{}, err
	}

	if len(f.Geometry.Coordinates) < 2 {
		return entity.Venue{}, errBadCoordinates
	}

	p := geo.Point{Lat: f.Geometry.Coordinates[1], Lon: f.Geometry.Coordinates[0]}
	if !geo.IsValid(p) {
		return entity.Venue{}, errBadCoordinates
	}

	props := f.Properties

	name := string(props.Name)
	if strings.TrimSpace(name) == "" {
		name = DefaultVenueName
	}

	size, surface := entity.Classify(entity.Descriptor{
		Name:        name,
		Sport:       string(props.Sport),
		Surface:     string(props.Surface),
		Description: string(props.Description),
	})

	phone := string(props.ContactPhone)
	if phone == "" {
		phone = string(props.Contact.Phone)
	}

	amenities := make([]string, 0, 2)
	if bytes.Contains(props.Datasource.Raw, []byte("parking")) {
		amenities = append(amenities, entity.AmenityParking)
	}

	if bytes.Contains(props.Datasource.Raw, []byte("lit")) {
		amenities = append(amenities, entity.AmenityLighting)
	}

	return entity.Venue{
		ID:           string(props.PlaceID),
		Name:         name,
		Address:      buildAddress(props),
		Size:         size,
		Surface:      surface,
		Latitude:     p.Lat,
		Longitude:    p.Lon,
		DistanceKm:   geo.DistanceKm(originLat, originLon, p.Lat, p.Lon),
		Rating:       props.Rating,
		Amenities:    amenities,
		Photos:       []string{},
		Active:       true,
		Phone:        phone,
		OpeningHours: string(props.OpeningHours),
		Description:  string(props.Description),
		Source:       entity.SourcePlaces,
	}, nil
}

// buildAddress renders "street number, city, country", omitting empty parts.
func buildAddress(p properties) string {
	parts := make([]string, 0, 3)

	if street := strings.TrimSpace(string(p.Street)); street != "" {
		if number := strings.TrimSpace(string(p.HouseNumber)); number != "" {
			street += " " + number
		}

		parts = append(parts, street)
	}

	if city := strings.TrimSpace(string(p.City)); city != "" {
		parts = append(parts, city)
	}

	if country := strings.TrimSpace(string(p.Country)); country != "" {
		parts = append(parts, country)
	}

	return strings.Join(parts, ", ")
}

package service

import (
	"github.com/savioruz/kickmatch/internal/domains/venues/entity"
	"github.com/savioruz/kickmatch/internal/domains/venues/repository"
	"github.com/savioruz/kickmatch/pkg/helper"
)

func toEntity(m repository.Venue) entity.Venue {
	return entity.Venue{
		ID:           helper.UUIDFromPg(m.ID),
		Name:         m.Name,
		Address:      m.Address,
		Size:         entity.Size(m.Size),
		Surface:      entity.Surface(m.Surface),
		PricePerHour: m.PricePerHour,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		Rating:       m.Rating,
		RatingCount:  int(m.RatingCount),
		Amenities:    m.Amenities,
		Photos:       m.Photos,
		Active:       m.Active,
		Phone:        helper.StringFromPg(m.Phone),
		OpeningHours: helper.StringFromPg(m.OpeningHours),
		Description:  helper.StringFromPg(m.Description),
		OwnerID:      helper.UUIDFromPg(m.OwnerID),
		Source:       entity.SourceRegistered,
		CreatedAt:    helper.TimeFromPg(m.CreatedAt),
		UpdatedAt:    helper.TimeFromPg(m.UpdatedAt),
	}
}

func toEntities(models []repository.Venue) []entity.Venue {
	out := make([]entity.Venue, len(models))
	for i, m := range models {
		out[i] = toEntity(m)
	}

	return out
}

// mergeVenues keeps registered venues first and drops later duplicates by id.
// Places results without a place id are always kept.
func mergeVenues(registered, live []entity.Venue) ([]entity.Venue, entity.Source) {
	out := make([]entity.Venue, 0, len(registered)+len(live))
	seen := make(map[string]struct{}, len(registered)+len(live))

	for _, list := range [][]entity.Venue{registered, live} {
		for _, v := range list {
			if v.ID != "" {
				if _, ok := seen[v.ID]; ok {
					continue
				}

				seen[v.ID] = struct{}{}
			}

			out = append(out, v)
		}
	}

	if len(live) > 0 {
		return out, entity.SourcePlaces
	}

	return out, entity.SourceRegistered
}

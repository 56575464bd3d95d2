package service

import (
	"time"

	"github.com/savioruz/kickmatch/internal/domains/bookings/entity"
	"github.com/savioruz/kickmatch/internal/domains/bookings/repository"
	"github.com/savioruz/kickmatch/pkg/helper"
)

// toEntity reads a stored booking into loc. Dates come back from pgx as UTC midnight.
func toEntity(m repository.Booking, loc *time.Location) entity.Booking {
	date := m.BookingDate.Time

	return entity.Booking{
		ID:            helper.UUIDFromPg(m.ID),
		VenueID:       helper.UUIDFromPg(m.VenueID),
		VenueName:     m.VenueName,
		UserID:        helper.UUIDFromPg(m.UserID),
		Date:          time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc),
		Start:         helper.TimeFromPg(m.StartTime).In(loc),
		End:           helper.TimeFromPg(m.EndTime).In(loc),
		DurationHours: int(m.DurationHours),
		PricePerHour:  m.PricePerHour,
		TotalPrice:    m.TotalPrice,
		Status:        entity.Status(m.Status),
		Notes:         helper.StringFromPg(m.Notes),
		CreatedAt:     helper.TimeFromPg(m.CreatedAt).In(loc),
		UpdatedAt:     helper.TimeFromPg(m.UpdatedAt).In(loc),
	}
}

func toEntities(models []repository.Booking, loc *time.Location) []entity.Booking {
	out := make([]entity.Booking, len(models))
	for i, m := range models {
		out[i] = toEntity(m, loc)
	}

	return out
}

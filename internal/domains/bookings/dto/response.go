package dto

import (
	"time"

	"github.com/savioruz/kickmatch/internal/domains/bookings/entity"
	"github.com/savioruz/kickmatch/pkg/constant"
)

type BookingResponse struct {
	ID            string  `json:"id"`
	VenueID       string  `json:"venue_id"`
	VenueName     string  `json:"venue_name"`
	UserID        string  `json:"user_id"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	DurationHours int     `json:"duration_hours"`
	PricePerHour  float64 `json:"price_per_hour"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes,omitempty"`
	CanCancel     bool    `json:"can_cancel"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// FromEntity renders b as seen at now; now only drives CanCancel.
func (r BookingResponse) FromEntity(b entity.Booking, now time.Time) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		VenueID:       b.VenueID,
		VenueName:     b.VenueName,
		UserID:        b.UserID,
		Date:          b.Date.Format(constant.DateFormat),
		StartTime:     b.Start.Format(constant.HoursFormat),
		EndTime:       b.End.Format(constant.HoursFormat),
		DurationHours: b.DurationHours,
		PricePerHour:  b.PricePerHour,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		Notes:         b.Notes,
		CanCancel:     entity.CanCancel(b, now),
		CreatedAt:     b.CreatedAt.Format(constant.FullDateFormat),
		UpdatedAt:     b.UpdatedAt.Format(constant.FullDateFormat),
	}
}

type GetBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalItems int               `json:"total_items"`
}

func (r *GetBookingsResponse) FromEntities(bookings []entity.Booking, now time.Time) {
	r.TotalItems = len(bookings)
	r.Bookings = make([]BookingResponse, len(bookings))

	for i, b := range bookings {
		r.Bookings[i] = BookingResponse{}.FromEntity(b, now)
	}
}

type QuoteResponse struct {
	VenueID       string  `json:"venue_id"`
	VenueName     string  `json:"venue_name"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	DurationHours int     `json:"duration_hours"`
	PricePerHour  float64 `json:"price_per_hour"`
	TotalPrice    float64 `json:"total_price"`
}

func (r QuoteResponse) FromQuote(venueID, venueName string, q entity.Quote) QuoteResponse {
	return QuoteResponse{
		VenueID:       venueID,
		VenueName:     venueName,
		Date:          q.Date.Format(constant.DateFormat),
		StartTime:     q.Start.Format(constant.HoursFormat),
		EndTime:       q.End.Format(constant.HoursFormat),
		DurationHours: q.DurationHours,
		PricePerHour:  q.PricePerHour,
		TotalPrice:    q.TotalPrice,
	}
}

type SlotsResponse struct {
	VenueID string            `json:"venue_id"`
	Date    string            `json:"date"`
	Slots   []entity.TimeSlot `json:"slots"`
}

package entity

import (
	"errors"
	"time"
)

var ErrNotCancellable = errors.New("booking can no longer be cancelled")

type Booking struct {
	ID            string
	VenueID       string
	VenueName     string
	UserID        string
	Date          time.Time
	Start         time.Time
	End           time.Time
	DurationHours int
	PricePerHour  float64
	TotalPrice    float64
	Status        Status
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// dayOf truncates t to its calendar day in loc.
func dayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// notBefore reports whether the booking day is today or later, as seen from the booking's timezone.
func (b Booking) notBefore(now time.Time) bool {
	loc := b.Date.Location()

	return !dayOf(b.Date, loc).Before(dayOf(now, loc))
}

func CanCancel(b Booking, now time.Time) bool {
	if b.Status != StatusPending && b.Status != StatusConfirmed {
		return false
	}

	return b.notBefore(now)
}

// Cancel returns b cancelled at now. Only status and UpdatedAt change.
func Cancel(b Booking, now time.Time) (Booking, error) {
	if !CanCancel(b, now) {
		return b, ErrNotCancellable
	}

	b.Status = StatusCancelled
	b.UpdatedAt = now

	return b, nil
}

// IsUpcoming backs the "upcoming" tab: today or later and not cancelled.
func (b Booking) IsUpcoming(now time.Time) bool {
	return b.Status != StatusCancelled && b.notBefore(now)
}

// IsPast backs the "past" tab: an earlier day, or cancelled.
func (b Booking) IsPast(now time.Time) bool {
	return b.Status == StatusCancelled || !b.notBefore(now)
}

// Overlaps reports whether b occupies any instant of [start, end).
func (b Booking) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && start.Before(b.End)
}

package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingOn(day time.Time, status Status) Booking {
	return Booking{
		ID:            "b-1",
		VenueID:       "v-1",
		VenueName:     "Cancha Sintética Los Campeones",
		Date:          day,
		Start:         day.Add(18 * time.Hour),
		End:           day.Add(19 * time.Hour),
		DurationHours: 1,
		PricePerHour:  80000,
		TotalPrice:    80000,
		Status:        status,
		Notes:         "traer petos",
	}
}

func TestCanCancel(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, bogota)
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, bogota)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name string
		b    Booking
		want bool
	}{
		{"confirmed yesterday", bookingOn(yesterday, StatusConfirmed), false},
		{"pending tomorrow", bookingOn(tomorrow, StatusPending), true},
		{"cancelled tomorrow", bookingOn(tomorrow, StatusCancelled), false},
		{"completed tomorrow", bookingOn(tomorrow, StatusCompleted), false},
		{"confirmed later today", bookingOn(today, StatusConfirmed), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCancel(tt.b, now))
		})
	}
}

func TestCanCancel_UsesBookingTimezone(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	day := time.Date(2026, 3, 15, 0, 0, 0, 0, bogota)

	// 03:00 UTC on the 16th is still the 15th in Bogota.
	now := time.Date(2026, 3, 16, 3, 0, 0, 0, time.UTC)

	assert.True(t, CanCancel(bookingOn(day, StatusPending), now))
}

func TestCancel(t *testing.T) {
	day := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

	before := bookingOn(day, StatusConfirmed)

	after, err := Cancel(before, now)
	require.NoError(t, err)

	assert.Equal(t, StatusCancelled, after.Status)
	assert.Equal(t, now, after.UpdatedAt)

	after.Status = before.Status
	after.UpdatedAt = before.UpdatedAt
	assert.Equal(t, before, after)

	_, err = Cancel(bookingOn(day, StatusCancelled), now)
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestStatus_Transitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCompleted))

	assert.False(t, StatusPending.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusPending))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusConfirmed))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusCancelled))

	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())

	assert.True(t, StatusPending.Valid())
	assert.False(t, Status("paid").Valid())
}

func TestBooking_Tabs(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := bookingOn(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), StatusCompleted)
	upcoming := bookingOn(time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC), StatusPending)
	cancelled := bookingOn(time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC), StatusCancelled)

	assert.True(t, past.IsPast(now))
	assert.False(t, past.IsUpcoming(now))
	assert.True(t, upcoming.IsUpcoming(now))
	assert.False(t, upcoming.IsPast(now))
	assert.True(t, cancelled.IsPast(now))
	assert.False(t, cancelled.IsUpcoming(now))
}

func TestBooking_Overlaps(t *testing.T) {
	day := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	b := bookingOn(day, StatusPending)

	assert.True(t, b.Overlaps(day.Add(18*time.Hour), day.Add(20*time.Hour)))
	assert.True(t, b.Overlaps(day.Add(17*time.Hour), day.Add(18*time.Hour+time.Minute)))
	assert.False(t, b.Overlaps(day.Add(19*time.Hour), day.Add(20*time.Hour)))
	assert.False(t, b.Overlaps(day.Add(16*time.Hour), day.Add(18*time.Hour)))
}

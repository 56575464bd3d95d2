package entity

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/savioruz/kickmatch/pkg/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBooking(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	tests := []struct {
		name      string
		date      string
		start     string
		end       string
		price     float64
		wantHours int
		wantTotal float64
		wantEnd   string
	}{
		{"sub-hour selection books one hour", "2025-01-01", "08:00", "08:30", 80000, 1, 80000, "09:00"},
		{"exact hours", "2025-01-01", "18:00", "20:00", 120000, 2, 240000, "20:00"},
		{"partial hour is floored", "2025-01-01", "10:15", "12:59", 50000, 2, 100000, "12:15"},
		{"free venue", "2025-01-01", "06:00", "07:00", 0, 1, 0, "07:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ComputeBooking(tt.date, tt.start, tt.end, tt.price, bogota)
			require.NoError(t, err)

			assert.Equal(t, tt.wantHours, q.DurationHours)
			assert.Equal(t, tt.wantTotal, q.TotalPrice)
			assert.Equal(t, tt.wantEnd, q.End.Format("15:04"))
			assert.Equal(t, bogota, q.Start.Location())
			assert.Equal(t, "2025-01-01", q.Date.Format("2006-01-02"))
			assert.True(t, q.End.After(q.Start))
		})
	}
}

func TestComputeBooking_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		start  string
		end    string
		price  float64
		reason string
	}{
		{"end before start", "2025-01-01", "09:00", "08:00", 80000, ReasonEndBeforeStart},
		{"end equals start", "2025-01-01", "09:00", "09:00", 80000, ReasonEndBeforeStart},
		{"ordering is checked before price", "2025-01-01", "09:00", "08:00", -1, ReasonEndBeforeStart},
		{"bad date", "01/01/2025", "09:00", "10:00", 80000, ReasonInvalidDate},
		{"bad start", "2025-01-01", "9am", "10:00", 80000, ReasonInvalidStartTime},
		{"bad end", "2025-01-01", "09:00", "25:00", 80000, ReasonInvalidEndTime},
		{"negative price", "2025-01-01", "09:00", "10:00", -5, ReasonNegativePrice},
		{"clamped hour runs past midnight", "2025-01-01", "23:30", "23:45", 80000, ReasonCrossesMidnight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeBooking(tt.date, tt.start, tt.end, tt.price, nil)

			require.Error(t, err)
			assert.Equal(t, tt.reason, err.Error())
			assert.True(t, failure.IsValidation(err))
		})
	}
}

func TestComputeBooking_EndsAtMidnight(t *testing.T) {
	q, err := ComputeBooking("2025-01-01", "23:00", "23:40", 80000, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, q.DurationHours)
	assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), q.End)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), q.Date)
}

func TestGenerateTimeSlots(t *testing.T) {
	slots := GenerateTimeSlots()

	assert.Len(t, slots, 17)
	assert.Equal(t, "06:00", slots[0])
	assert.Equal(t, "22:00", slots[len(slots)-1])

	if diff := cmp.Diff(slots, GenerateTimeSlots()); diff != "" {
		t.Errorf("slot sequence is not restartable (-first +second):\n%s", diff)
	}
}

func TestAnnotateSlots(t *testing.T) {
	labels := []string{"08:00", "09:00", "10:00"}

	got := AnnotateSlots(labels, map[string]string{"09:00": "b-1"}, "10:00")

	want := []TimeSlot{
		{Time: "08:00", Available: true},
		{Time: "09:00", Available: false, BookingID: "b-1"},
		{Time: "10:00", Available: true, Selected: true},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AnnotateSlots mismatch (-want +got):\n%s", diff)
	}

	booked := AnnotateSlots(labels, map[string]string{"09:00": "b-1"}, "09:00")
	assert.False(t, booked[1].Selected)
}

func TestOccupiedLabels(t *testing.T) {
	day := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	bookings := []Booking{
		{ID: "a", Start: day.Add(8 * time.Hour), End: day.Add(10 * time.Hour)},
		{ID: "b", Start: day.Add(18*time.Hour + 30*time.Minute), End: day.Add(19*time.Hour + 30*time.Minute)},
	}

	want := map[string]string{
		"08:00": "a",
		"09:00": "a",
		"18:00": "b",
		"19:00": "b",
	}

	if diff := cmp.Diff(want, OccupiedLabels(bookings)); diff != "" {
		t.Errorf("OccupiedLabels mismatch (-want +got):\n%s", diff)
	}
}

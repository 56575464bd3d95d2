package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingColumns = []string{
	"id", "venue_id", "venue_name", "user_id", "booking_date", "start_time", "end_time", "duration_hours",
	"price_per_hour", "total_price", "status", "notes", "created_at", "updated_at",
}

func bookingRow(id, venue, user pgtype.UUID, start time.Time, status string) []any {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	return []any{
		id, venue, "Complejo Deportivo El Diamante", user,
		pgtype.Date{Time: day, Valid: true},
		pgtype.Timestamptz{Time: start, Valid: true},
		pgtype.Timestamptz{Time: start.Add(2 * time.Hour), Valid: true},
		int32(2), 120000.0, 240000.0, status, pgtype.Text{},
		pgtype.Timestamptz{Time: start, Valid: true}, pgtype.Timestamptz{Time: start, Valid: true},
	}
}

func uuidOf() pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func TestQueries_InsertBooking(t *testing.T) {
	mockPgx, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPgx.Close()

	start := time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC)
	arg := InsertBookingParams{
		VenueID:       uuidOf(),
		VenueName:     "Complejo Deportivo El Diamante",
		UserID:        uuidOf(),
		BookingDate:   pgtype.Date{Time: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), Valid: true},
		StartTime:     pgtype.Timestamptz{Time: start, Valid: true},
		EndTime:       pgtype.Timestamptz{Time: start.Add(2 * time.Hour), Valid: true},
		DurationHours: 2,
		PricePerHour:  120000,
		TotalPrice:    240000,
		Status:        "pending",
	}
	id := uuidOf()

	mockPgx.ExpectQuery("INSERT INTO bookings").
		WithArgs(arg.VenueID, arg.VenueName, arg.UserID, arg.BookingDate, arg.StartTime, arg.EndTime,
			arg.DurationHours, arg.PricePerHour, arg.TotalPrice, arg.Status, arg.Notes).
		WillReturnRows(pgxmock.NewRows(bookingColumns).AddRow(bookingRow(id, arg.VenueID, arg.UserID, start, "pending")...))

	b, err := New().InsertBooking(context.Background(), mockPgx, arg)
	require.NoError(t, err)

	assert.Equal(t, id, b.ID)
	assert.Equal(t, int32(2), b.DurationHours)
	assert.Equal(t, 240000.0, b.TotalPrice)
	assert.Equal(t, "pending", b.Status)
	assert.NoError(t, mockPgx.ExpectationsWereMet())
}

func TestQueries_ListVenueBookingsByDate(t *testing.T) {
	mockPgx, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPgx.Close()

	venue := uuidOf()
	start := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
	arg := ListVenueBookingsByDateParams{
		VenueID:     venue,
		BookingDate: pgtype.Date{Time: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), Valid: true},
	}

	mockPgx.ExpectQuery("status IN \\('pending', 'confirmed'\\)").
		WithArgs(arg.VenueID, arg.BookingDate).
		WillReturnRows(pgxmock.NewRows(bookingColumns).
			AddRow(bookingRow(uuidOf(), venue, uuidOf(), start, "pending")...).
			AddRow(bookingRow(uuidOf(), venue, uuidOf(), start.Add(3*time.Hour), "confirmed")...))

	items, err := New().ListVenueBookingsByDate(context.Background(), mockPgx, arg)
	require.NoError(t, err)

	assert.Len(t, items, 2)
	assert.Equal(t, "confirmed", items[1].Status)
	assert.NoError(t, mockPgx.ExpectationsWereMet())
}

func TestQueries_ListUserBookings_Empty(t *testing.T) {
	mockPgx, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPgx.Close()

	user := uuidOf()

	mockPgx.ExpectQuery("WHERE user_id = \\$1").
		WithArgs(user).
		WillReturnRows(pgxmock.NewRows(bookingColumns))

	items, err := New().ListUserBookings(context.Background(), mockPgx, user)
	require.NoError(t, err)

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestQueries_CompleteElapsedBookings(t *testing.T) {
	mockPgx, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPgx.Close()

	now := pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}

	mockPgx.ExpectExec("SET status = 'completed'").
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	n, err := New().CompleteElapsedBookings(context.Background(), mockPgx, now)
	require.NoError(t, err)

	assert.Equal(t, int64(3), n)
	assert.NoError(t, mockPgx.ExpectationsWereMet())
}

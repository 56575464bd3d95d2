package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var venueColumns = []string{
	"id", "owner_id", "name", "address", "size", "surface", "price_per_hour", "latitude", "longitude",
	"rating", "rating_count", "amenities", "photos", "active", "phone", "opening_hours", "description",
	"created_at", "updated_at",
}

func venueRow(id, owner pgtype.UUID, now time.Time) []any {
	return []any{
		id, owner, "Cancha Sintética Los Campeones", "Cra 5 #10-20, Valle del Cauca", "5-a-side", "synthetic",
		80000.0, 3.4516, -76.5320, 4.5, int32(12), []string{"parking", "lighting"}, []string{},
		true, pgtype.Text{String: "+57 300", Valid: true}, pgtype.Text{}, pgtype.Text{},
		pgtype.Timestamptz{Time: now, Valid: true}, pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func TestQueries_GetVenueByID(t *testing.T) {
	mockPgx, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPgx.Close()

	id := pgtype.UUID{Bytes: uuid.New(), Valid: true}
	owner := pgtype.UUID{Bytes: uuid.New(), Valid: true}
	now := time.Now().UTC()

	mockPgx.ExpectQuery("FROM venues\\s+WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(venueColumns).AddRow(venueRow(id, owner, now)...))

	v, err := New().GetVenueByID(context.Background(), mockPgx, id)
	require.NoError(t, err)

	assert.Equal(t, id, v.ID)
	assert.Equal(t, owner, v.OwnerID)
	assert.Equal(t, "5-a-side", v.Size)
	assert.Equal(t, int32(12), v.RatingCount)
	assert.Equal(t, []string{"parking", "lighting"}, v.Amenities)
	assert.Equal(t, "+57 300", v.Phone.String)
	assert.False(t, v.Description.Valid)
	assert.NoError(t, mockPgx.ExpectationsWereMet())
}

func TestQueries_GetVenueByID_NotFound(t *testing.T) {
	mockPgx, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPgx.Close()

	id := pgtype.UUID{Bytes: uuid.New(), Valid: true}

	mockPgx.ExpectQuery("FROM venues").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err = New().GetVenueByID(context.Background(), mockPgx, id)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestQueries_ListActiveVenuesInBox(t *testing.T) {
	mockPgx, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPgx.Close()

	now := time.Now().UTC()
	arg := ListActiveVenuesInBoxParams{MinLat: 3.3, MaxLat: 3.6, MinLon: -76.7, MaxLon: -76.4}

	rows := pgxmock.NewRows(venueColumns).
		AddRow(venueRow(pgtype.UUID{Bytes: uuid.New(), Valid: true}, pgtype.UUID{Bytes: uuid.New(), Valid: true}, now)...).
		AddRow(venueRow(pgtype.UUID{Bytes: uuid.New(), Valid: true}, pgtype.UUID{Bytes: uuid.New(), Valid: true}, now)...)

	mockPgx.ExpectQuery("WHERE active").
		WithArgs(arg.MinLat, arg.MaxLat, arg.MinLon, arg.MaxLon).
		WillReturnRows(rows)

	venues, err := New().ListActiveVenuesInBox(context.Background(), mockPgx, arg)
	require.NoError(t, err)
	assert.Len(t, venues, 2)
	assert.NoError(t, mockPgx.ExpectationsWereMet())
}

func TestQueries_DeleteVenue(t *testing.T) {
	mockPgx, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPgx.Close()

	id := pgtype.UUID{Bytes: uuid.New(), Valid: true}

	mockPgx.ExpectExec("DELETE FROM venues").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	affected, err := New().DeleteVenue(context.Background(), mockPgx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

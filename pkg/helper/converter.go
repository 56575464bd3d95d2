package helper

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/savioruz/kickmatch/pkg/constant"
)

// PgString converts a string to pgtype.Text, treating "" as NULL
func PgString(s string) pgtype.Text {
	return pgtype.Text{
		String: s,
		Valid:  s != "",
	}
}

func StringFromPg(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}

	return t.String
}

// PgUUID converts a string UUID to pgtype.UUID
func PgUUID(id string) pgtype.UUID {
	var uuid pgtype.UUID

	err := uuid.Scan(id)
	if err != nil {
		return pgtype.UUID{Valid: false}
	}

	return uuid
}

func UUIDFromPg(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}

	return id.String()
}

// PgDate converts a "2006-01-02" string to pgtype.Date
func PgDate(date string) pgtype.Date {
	t, err := time.Parse(constant.DateFormat, date)
	if err != nil {
		return pgtype.Date{Valid: false}
	}

	return pgtype.Date{
		Time:  t,
		Valid: true,
	}
}

// PgTimestamptz converts a time.Time object to pgtype.Timestamptz
func PgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:  t,
		Valid: !t.IsZero(),
	}
}

func TimeFromPg(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}

	return t.Time
}

package helper

import (
	"testing"
	"time"

	"github.com/savioruz/kickmatch/pkg/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgUUID(t *testing.T) {
	id := "1b4e28ba-2fa1-11d2-883f-0016d3cca427"

	pg := PgUUID(id)
	require.True(t, pg.Valid)
	assert.Equal(t, id, UUIDFromPg(pg))

	assert.False(t, PgUUID("not-a-uuid").Valid)
	assert.Empty(t, UUIDFromPg(PgUUID("")))
}

func TestPgDate(t *testing.T) {
	pg := PgDate("2026-03-10")
	require.True(t, pg.Valid)
	assert.Equal(t, "2026-03-10", pg.Time.Format(constant.DateFormat))

	assert.False(t, PgDate("10/03/2026").Valid)
}

func TestPgString(t *testing.T) {
	assert.False(t, PgString("").Valid)
	assert.Equal(t, "Cali", StringFromPg(PgString("Cali")))
}

func TestPgTimestamptz(t *testing.T) {
	assert.False(t, PgTimestamptz(time.Time{}).Valid)

	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	assert.True(t, TimeFromPg(PgTimestamptz(now)).Equal(now))
}

package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN_String(t *testing.T) {
	tests := []struct {
		name string
		dsn  DSN
		want string
	}{
		{
			name: "full",
			dsn: DSN{
				Host: "localhost", Port: 5432, User: "kick", Password: "secret", Database: "kickmatch",
				SSLMode: "disable", Timezone: "America/Bogota", ApplicationName: "kickmatch",
			},
			want: "host=localhost port=5432 user=kick password=secret dbname=kickmatch sslmode=disable timezone=America/Bogota application_name=kickmatch",
		},
		{
			name: "optional keys omitted",
			dsn:  DSN{Host: "db", Port: 5433, User: "u", Password: "p", Database: "d", SSLMode: "require"},
			want: "host=db port=5433 user=u password=p dbname=d sslmode=require",
		},
		{
			name: "empty and special values quoted",
			dsn:  DSN{Host: "db", Port: 5432, User: "u", Password: `it's a pass\`, Database: "d", SSLMode: "disable"},
			want: `host=db port=5432 user=u password='it\'s a pass\\' dbname=d sslmode=disable`,
		},
		{
			name: "empty password",
			dsn:  DSN{Host: "db", Port: 5432, User: "u", Database: "d", SSLMode: "disable"},
			want: "host=db port=5432 user=u password='' dbname=d sslmode=disable",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.dsn.String())
		})
	}
}

func TestOptions(t *testing.T) {
	pg := &Postgres{maxPoolSize: _defaultMaxPoolSize, connAttempts: _defaultConnAttempts, connTimeout: _defaultConnTimeout}

	for _, opt := range []Option{MaxPoolSize(0), ConnAttempts(-3), ConnTimeout(0)} {
		opt(pg)
	}

	assert.Equal(t, _defaultMaxPoolSize, pg.maxPoolSize)
	assert.Equal(t, 1, pg.connAttempts)
	assert.Equal(t, _defaultConnTimeout, pg.connTimeout)
}

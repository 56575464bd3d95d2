package postgres

import (
	"fmt"
	"strings"
)

// DSN holds the libpq keyword/value connection settings.
type DSN struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	Timezone        string
	ApplicationName string
}

func (d DSN) String() string {
	parts := []string{
		"host=" + quote(d.Host),
		fmt.Sprintf("port=%d", d.Port),
		"user=" + quote(d.User),
		"password=" + quote(d.Password),
		"dbname=" + quote(d.Database),
		"sslmode=" + quote(d.SSLMode),
	}

	if d.Timezone != "" {
		parts = append(parts, "timezone="+quote(d.Timezone))
	}

	if d.ApplicationName != "" {
		parts = append(parts, "application_name="+quote(d.ApplicationName))
	}

	return strings.Join(parts, " ")
}

// quote wraps values that libpq would otherwise split or misread.
func quote(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}

	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)

	return "'" + r.Replace(v) + "'"
}

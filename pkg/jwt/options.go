package jwt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const hoursInDay = 24

// ParseDuration accepts Go durations plus a whole-day "Nd" suffix.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("jwt: invalid expiry %q", s)
		}

		return time.Duration(n) * hoursInDay * time.Hour, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("jwt: invalid expiry %q: %w", s, err)
	}

	if d <= 0 {
		return 0, fmt.Errorf("jwt: expiry %q must be positive", s)
	}

	return d, nil
}

package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDurationHours(t *testing.T) {
	base := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		expected int
	}{
		{name: "exact two hours", end: base.Add(2 * time.Hour), expected: 2},
		{name: "floors partial hour", end: base.Add(90 * time.Minute), expected: 1},
		{name: "floors two and a half", end: base.Add(150 * time.Minute), expected: 2},
		{name: "minimum one hour", end: base.Add(30 * time.Minute), expected: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CalculateDurationHours(base, tc.end))
		})
	}
}

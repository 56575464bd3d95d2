package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		message  interface{}
		args     []interface{}
		expected string
	}{
		{name: "plain", message: "hello", expected: "hello"},
		{name: "error message", message: errors.New("boom"), expected: "boom"},
		{name: "printf", message: "%d venues", args: []interface{}{3}, expected: "3 venues"},
		{
			name:     "identifier with nested format",
			message:  "service - venue - %s",
			args:     []interface{}{"search - failed: %v", errors.New("timeout")},
			expected: "service - venue - search - failed: timeout",
		},
		{
			name:     "identifier with plain text",
			message:  "service - venue - %s",
			args:     []interface{}{"search - fallback to demo"},
			expected: "service - venue - search - fallback to demo",
		},
		{name: "unknown type", message: 42, expected: "info message 42 has an unknown type int"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, render("info", tc.message, tc.args...))
		})
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	l := NewWithWriter("warn", &buf)

	l.Info("dropped")
	assert.Zero(t, buf.Len())

	l.Error("service - booking - %s", "cancel - failed: %v", errors.New("db down"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "service - booking - cancel - failed: db down", entry["message"])
}

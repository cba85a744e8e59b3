package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeUTC(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339 utc", "2025-06-01T10:00:00Z", time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		{"rfc3339 with offset", "2025-06-01T15:00:00+05:00", time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		{"rfc1123z", "Sun, 01 Jun 2025 10:00:00 +0000", time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		{"date only", "2025-06-01", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeUTC(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseTimeUTCFailure(t *testing.T) {
	_, err := ParseTimeUTC("next tuesday")
	assert.Error(t, err)
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
		ok    bool
	}{
		{"canonical", "2025-06-14", "2025-06-14", true},
		{"rfc3339", "2025-06-14T09:30:00Z", "2025-06-14", true},
		{"iso no zone", "2025-06-14T09:30:00", "2025-06-14", true},
		{"slashes", "2025/06/14", "2025-06-14", true},
		{"uk slashes", "14/06/2025", "2025-06-14", true},
		{"uk dashes", "14-06-2025", "2025-06-14", true},
		{"long form", "June 14, 2025", "2025-06-14", true},
		{"day first long form", "14 June 2025", "2025-06-14", true},
		{"abbreviated", "Jun 14, 2025", "2025-06-14", true},
		{"whitespace trimmed", "  2025-06-14  ", "2025-06-14", true},
		{"time value", time.Date(2025, 6, 14, 15, 0, 0, 0, time.UTC), "2025-06-14", true},
		{"garbage", "next saturday-ish", "", false},
		{"empty string", "", "", false},
		{"zero time", time.Time{}, "", false},
		{"nil pointer", (*time.Time)(nil), "", false},
		{"wrong type", 42, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseFlexibleDate(tc.input)
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, ToComparableDateString(got))
			}
		})
	}
}

// Re-parsing a canonical date string must land on the same day. Every date
// comparison in the booking flow relies on this round trip.
func TestComparableDateRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 14, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 6, 30, 0, 0, time.UTC),
	}
	for _, d := range dates {
		canonical := ToComparableDateString(d)
		parsed, ok := ParseFlexibleDate(canonical)
		require.True(t, ok, canonical)
		assert.Equal(t, canonical, ToComparableDateString(parsed))
	}
}

func TestIsSameDay(t *testing.T) {
	morning := time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 14, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC)

	assert.True(t, IsSameDay(morning, evening))
	assert.False(t, IsSameDay(evening, nextDay))
}

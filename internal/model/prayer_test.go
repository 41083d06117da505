package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		hour    int
		minute  int
		wantErr bool
	}{
		{name: "plain", raw: "12:15", hour: 12, minute: 15},
		{name: "timezone suffix", raw: "05:17 (+03)", hour: 5, minute: 17},
		{name: "named timezone", raw: "18:45 (AST)", hour: 18, minute: 45},
		{name: "leading whitespace", raw: " 04:00", hour: 4, minute: 0},
		{name: "no colon", raw: "0517", wantErr: true},
		{name: "hour out of range", raw: "24:00", wantErr: true},
		{name: "minute out of range", raw: "12:60", wantErr: true},
		{name: "garbage hour", raw: "ab:30", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hour, minute, err := ParseClock(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.hour, hour)
			assert.Equal(t, tc.minute, minute)
		})
	}
}

func TestClockOn(t *testing.T) {
	day := time.Date(2026, time.August, 31, 13, 42, 57, 123, time.UTC)

	got := ClockOn(day, 5, 17)
	want := time.Date(2026, time.August, 31, 5, 17, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "got %v want %v", got, want)
}

func TestAPIDate(t *testing.T) {
	day := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "31-08-2026", APIDate(day))
}

func TestPrayerLabels(t *testing.T) {
	assert.Equal(t, "العصر", Asr.Label())
	assert.Equal(t, "الشروق", Sunrise.Label())
	// unknown keys fall back to the key itself
	assert.Equal(t, "Midnight", PrayerKey("Midnight").Label())
}

func TestKnown(t *testing.T) {
	for _, key := range CanonicalPrayers {
		assert.True(t, key.Known(), "%s must be schedulable", key)
	}
	assert.False(t, Sunrise.Known(), "Sunrise is display-only")
	assert.False(t, PrayerKey("Midnight").Known())
}

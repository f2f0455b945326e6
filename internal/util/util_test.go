package util

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	t.Parallel()

	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 23:30 UTC on Feb 28 is already Mar 1 in Paris.
	instant := time.Date(2026, 2, 28, 23, 30, 0, 0, time.UTC)

	got := StartOfDay(instant, paris)
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, paris)
	if !got.Equal(want) {
		t.Fatalf("StartOfDay = %s, want %s", got, want)
	}

	if got := StartOfDay(instant, nil); !got.Equal(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("StartOfDay with nil location = %s", got)
	}
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{name: "same day", from: time.Date(2026, 5, 4, 1, 0, 0, 0, time.UTC), to: time.Date(2026, 5, 4, 23, 0, 0, 0, time.UTC), expected: 0},
		{name: "thirty days", from: time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC), to: time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC), expected: 30},
		{name: "across dst change", from: time.Date(2026, 3, 28, 0, 0, 0, 0, paris), to: time.Date(2026, 3, 30, 0, 0, 0, 0, paris), expected: 2},
		{name: "future date", from: time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC), to: time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC), expected: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DaysBetween(tt.from, tt.to); got != tt.expected {
				t.Fatalf("DaysBetween = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

package helpers

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-08-28")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.August || got.Day() != 28 {
		t.Errorf("date = %v, want 2026-08-28", got)
	}

	if _, err := ParseDate("28.08.2026"); err == nil {
		t.Error("ParseDate accepted a wrong layout")
	}
}

func TestTodayTruncatesToDate(t *testing.T) {
	now := time.Date(2026, 8, 28, 19, 45, 12, 0, time.UTC)
	got := Today(now)
	want := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Today = %v, want %v", got, want)
	}
}

func TestParseDurationDefault(t *testing.T) {
	if got := ParseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Errorf("duration = %v, want 90m", got)
	}
	if got := ParseDuration("bogus", time.Hour); got != time.Hour {
		t.Errorf("duration = %v, want the default", got)
	}
}

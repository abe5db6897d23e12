// ABOUTME: Tests for calendar-day helpers.
// ABOUTME: Covers midnight boundaries, DST-length days, and week starts.
package models

import (
	"testing"
	"time"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("time zone %s unavailable: %v", name, err)
	}
	return loc
}

func TestDayBoundsMidnightBelongsToNewDay(t *testing.T) {
	loc := mustLoad(t, "America/New_York")
	midnight := time.Date(2024, 6, 2, 0, 0, 0, 0, loc)

	start, end := DayBounds(midnight, loc)
	if !start.Equal(midnight) {
		t.Errorf("start = %v, want %v", start, midnight)
	}
	if !WithinDay(midnight, start, end) {
		t.Error("midnight should be inside its own day")
	}

	prevStart, prevEnd := DayBounds(midnight.Add(-time.Nanosecond), loc)
	if WithinDay(midnight, prevStart, prevEnd) {
		t.Error("midnight should not belong to the previous day")
	}
	if !WithinDay(prevEnd, prevStart, prevEnd) {
		t.Error("end instant should be inside the day")
	}
}

func TestDayBoundsAcrossDST(t *testing.T) {
	loc := mustLoad(t, "America/New_York")

	spring, springEnd := DayBounds(time.Date(2024, 3, 10, 12, 0, 0, 0, loc), loc)
	if got := springEnd.Sub(spring) + time.Nanosecond; got != 23*time.Hour {
		t.Errorf("spring-forward day length = %v, want 23h", got)
	}

	fall, fallEnd := DayBounds(time.Date(2024, 11, 3, 12, 0, 0, 0, loc), loc)
	if got := fallEnd.Sub(fall) + time.Nanosecond; got != 25*time.Hour {
		t.Errorf("fall-back day length = %v, want 25h", got)
	}
}

func TestDayKey(t *testing.T) {
	loc := mustLoad(t, "America/Los_Angeles")
	utcLate := time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)

	if got := DayKey(utcLate, loc); got != "2024-01-01" {
		t.Errorf("DayKey = %s, want 2024-01-01", got)
	}
	if got := DayKey(utcLate, time.UTC); got != "2024-01-02" {
		t.Errorf("DayKey UTC = %s, want 2024-01-02", got)
	}
}

func TestStartOfWeek(t *testing.T) {
	// Wednesday 2024-05-15.
	wed := time.Date(2024, 5, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		weekStart time.Weekday
		want      string
	}{
		{time.Sunday, "2024-05-12"},
		{time.Monday, "2024-05-13"},
		{time.Wednesday, "2024-05-15"},
		{time.Thursday, "2024-05-09"},
	}
	for _, tt := range tests {
		t.Run(tt.weekStart.String(), func(t *testing.T) {
			got := StartOfWeek(wed, tt.weekStart, time.UTC).Format(DayKeyFormat)
			if got != tt.want {
				t.Errorf("StartOfWeek(%v) = %s, want %s", tt.weekStart, got, tt.want)
			}
		})
	}
}

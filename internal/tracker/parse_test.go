// ABOUTME: Tests for date, month, and clock parsing.
// ABOUTME: Verifies relative words, explicit formats, and the resulting timestamp.
package tracker

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 12, 20, 0, 0, 0, loc)

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "2024-06-12", false},
		{"today", "2024-06-12", false},
		{"Yesterday", "2024-06-11", false},
		{"2024-02-29", "2024-02-29", false},
		{"02/29/2024", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDay(tt.in, now, loc)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDay(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got.Format("2006-01-02") != tt.want {
			t.Errorf("ParseDay(%q) = %v, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseMonth(t *testing.T) {
	now := time.Date(2024, 6, 12, 20, 0, 0, 0, time.UTC)

	got, err := ParseMonth("", now, time.UTC)
	if err != nil || got.Format("2006-01-02") != "2024-06-01" {
		t.Errorf("ParseMonth(\"\") = (%v, %v), want 2024-06-01", got, err)
	}
	got, err = ParseMonth("2023-11", now, time.UTC)
	if err != nil || got.Format("2006-01-02") != "2023-11-01" {
		t.Errorf("ParseMonth(2023-11) = (%v, %v), want 2023-11-01", got, err)
	}
	if _, err := ParseMonth("November", now, time.UTC); err == nil {
		t.Error("expected error for month name")
	}
}

func TestParseWhen(t *testing.T) {
	loc := time.FixedZone("UTC-4", -4*60*60)
	now := time.Date(2024, 6, 12, 20, 15, 0, 0, loc)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"", time.Date(2024, 6, 12, 20, 15, 0, 0, loc)},
		{"18:30", time.Date(2024, 6, 12, 18, 30, 0, 0, loc)},
		{"9:05pm", time.Date(2024, 6, 12, 21, 5, 0, 0, loc)},
		{"2024-06-10", time.Date(2024, 6, 10, 20, 15, 0, 0, loc)},
		{"yesterday", time.Date(2024, 6, 11, 20, 15, 0, 0, loc)},
		{"2024-06-10 23:45", time.Date(2024, 6, 10, 23, 45, 0, 0, loc)},
		{"2024-06-11T02:00:00Z", time.Date(2024, 6, 10, 22, 0, 0, 0, loc)},
	}
	for _, tt := range tests {
		day, clock, err := ParseWhen(tt.in, now, loc)
		if err != nil {
			t.Errorf("ParseWhen(%q) failed: %v", tt.in, err)
			continue
		}
		if got := At(day, clock, loc); !got.Equal(tt.want) {
			t.Errorf("ParseWhen(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, _, err := ParseWhen("whenever", now, loc); err == nil {
		t.Error("expected error for unrecognized input")
	}
}

func TestResolveEditTime(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 12, 20, 0, 0, 0, loc)
	ts := time.Date(2024, 6, 5, 21, 10, 45, 500, loc)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"", ts},
		{"  ", ts},
		{"20:30", time.Date(2024, 6, 5, 20, 30, 0, 0, loc)},
		{"9pm", time.Date(2024, 6, 5, 21, 0, 0, 0, loc)},
		{"2024-06-03", time.Date(2024, 6, 3, 21, 10, 0, 0, loc)},
		{"yesterday", time.Date(2024, 6, 11, 21, 10, 0, 0, loc)},
		{"2024-06-04 23:15", time.Date(2024, 6, 4, 23, 15, 0, 0, loc)},
	}
	for _, tt := range tests {
		got, err := ResolveEditTime(tt.in, ts, now, loc)
		if err != nil {
			t.Errorf("ResolveEditTime(%q) failed: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ResolveEditTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ResolveEditTime("whenever", ts, now, loc); err == nil {
		t.Error("expected error for unrecognized input")
	}
}

func TestResolveEditTimeUsesLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC-4", -4*60*60)
	now := time.Date(2024, 6, 12, 20, 0, 0, 0, loc)
	// 01:30 UTC on the 6th is still the evening of the 5th locally.
	ts := time.Date(2024, 6, 6, 1, 30, 0, 0, time.UTC)

	got, err := ResolveEditTime("22:00", ts, now, loc)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 6, 5, 22, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("ResolveEditTime = %v, want %v", got, want)
	}
}

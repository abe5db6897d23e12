// ABOUTME: Tests for Profile weekly limit parsing and fallback.
// ABOUTME: Covers edit-boundary validation and the default-14 rule.
package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestEffectiveWeeklyLimit(t *testing.T) {
	tests := []struct {
		stored string
		want   float64
	}{
		{"", 14},
		{"abc", 14},
		{"0", 14},
		{"-3", 14},
		{"7", 7},
		{" 21 ", 21},
		{"10.5", 10.5},
	}

	for _, tt := range tests {
		t.Run(tt.stored, func(t *testing.T) {
			p := Profile{WeeklyLimit: tt.stored}
			if got := p.EffectiveWeeklyLimit(); got != tt.want {
				t.Errorf("EffectiveWeeklyLimit(%q) = %v, want %v", tt.stored, got, tt.want)
			}
		})
	}
}

func TestParseWeeklyLimit(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"14", 14, false},
		{" 7 ", 7, false},
		{"1", 1, false},
		{"10.9", 10, false},
		{"0", 0, true},
		{"0.5", 0, true},
		{"-2", 0, true},
		{"", 0, true},
		{"lots", 0, true},
		{"NaN", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeeklyLimit(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWeeklyLimit) {
					t.Errorf("ParseWeeklyLimit(%q) error = %v, want ErrInvalidWeeklyLimit", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWeeklyLimit(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseWeeklyLimit(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestProfileLegacyFieldsRoundTrip(t *testing.T) {
	raw := `{"sex":"female","weight":"60","height":"165","weeklyLimit":"10"}`
	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Sex != "female" || p.WeeklyLimit != "10" {
		t.Errorf("unexpected profile: %+v", p)
	}

	p = p.WithWeeklyLimit(12)
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]string
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal back: %v", err)
	}
	if back["weeklyLimit"] != "12" || back["height"] != "165" {
		t.Errorf("round trip lost data: %v", back)
	}

	minimal, _ := json.Marshal(Profile{WeeklyLimit: "14"})
	if string(minimal) != `{"weeklyLimit":"14"}` {
		t.Errorf("minimal profile JSON = %s", minimal)
	}
}

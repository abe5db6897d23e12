// ABOUTME: Tests for Drink and DrinkType models.
// ABOUTME: Validates defaults, builders, volume options, and bounds checks.
package models

import (
	"errors"
	"testing"
	"time"
)

func TestNewDrinkDefaults(t *testing.T) {
	tests := []struct {
		typeID     string
		wantVolume float64
		wantABV    float64
	}{
		{DrinkBeer, 12, 0.05},
		{DrinkWine, 5, 0.12},
		{DrinkCocktail, 1.5, 0.40},
		{DrinkShot, 1.5, 0.40},
		{DrinkCustom, 12, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.typeID, func(t *testing.T) {
			d := NewDrink(tt.typeID)
			if d.Volume != tt.wantVolume {
				t.Errorf("Volume = %v, want %v", d.Volume, tt.wantVolume)
			}
			if d.ABV != tt.wantABV {
				t.Errorf("ABV = %v, want %v", d.ABV, tt.wantABV)
			}
			if d.Timestamp.IsZero() {
				t.Error("expected Timestamp to be set")
			}
			if d.ID != "" {
				t.Errorf("ID = %q, want empty until stored", d.ID)
			}
		})
	}
}

func TestDrinkBuilders(t *testing.T) {
	at := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	d := NewDrink(DrinkWine).WithVolume(6).WithABV(0.13).WithTimestamp(at)

	if d.Volume != 6 || d.ABV != 0.13 || !d.Timestamp.Equal(at) {
		t.Errorf("builders not applied: %+v", d)
	}
}

func TestDrinkTypeNames(t *testing.T) {
	if got := DrinkTypeName(DrinkCocktail); got != "Cocktail" {
		t.Errorf("DrinkTypeName(cocktail) = %q, want Cocktail", got)
	}
	if got := DrinkTypeName("mead"); got != "mead" {
		t.Errorf("DrinkTypeName(mead) = %q, want mead", got)
	}
	if IsValidDrinkType("mead") {
		t.Error("mead should not be a valid drink type")
	}
}

func TestVolumeOptions(t *testing.T) {
	beer, _ := LookupDrinkType(DrinkBeer)
	got := beer.VolumeOptions()
	want := []float64{8, 12, 16, 20, 24, 28, 32}
	if len(got) != len(want) {
		t.Fatalf("beer options = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("beer options[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	shot, _ := LookupDrinkType(DrinkShot)
	if got := shot.VolumeOptions(); len(got) != 3 {
		t.Errorf("shot options = %v, want 3 entries", got)
	}
}

func TestDrinkTypeValidate(t *testing.T) {
	wine, _ := LookupDrinkType(DrinkWine)

	tests := []struct {
		name    string
		volume  float64
		abv     float64
		wantErr error
	}{
		{"default", 5, 0.12, nil},
		{"min volume", 3, 0.12, nil},
		{"max volume", 12, 0.12, nil},
		{"too small", 2.5, 0.12, ErrVolumeOutOfRange},
		{"too large", 13, 0.12, ErrVolumeOutOfRange},
		{"abv too low", 5, 0.01, ErrABVOutOfRange},
		{"abv too high", 5, 0.5, ErrABVOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wine.Validate(tt.volume, tt.abv)
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTotalStandardDrinks(t *testing.T) {
	drinks := []Drink{
		*NewDrink(DrinkBeer),
		*NewDrink(DrinkWine),
		*NewDrink(DrinkShot),
	}
	got := TotalStandardDrinks(drinks)
	if got < 3.04 || got > 3.045 {
		t.Errorf("TotalStandardDrinks() = %v, want ~3.04", got)
	}
}

func TestShortID(t *testing.T) {
	d := Drink{ID: "0123456789abcdef"}
	if got := d.ShortID(); got != "01234567" {
		t.Errorf("ShortID() = %q, want 01234567", got)
	}
	d.ID = "abc"
	if got := d.ShortID(); got != "abc" {
		t.Errorf("ShortID() = %q, want abc", got)
	}
}

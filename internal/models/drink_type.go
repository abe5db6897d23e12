// ABOUTME: DrinkType reference table with default volume, ABV, and volume bounds.
// ABOUTME: Five fixed variants; validation bounds used by the standard add/edit flow.
package models

import (
	"errors"
	"fmt"
)

// ABV range offered by the standard add flow (3% to 43%).
const (
	MinABV = 0.03
	MaxABV = 0.43
)

var (
	ErrUnknownDrinkType = errors.New("unknown drink type")
	ErrVolumeOutOfRange = errors.New("volume out of range")
	ErrABVOutOfRange    = errors.New("abv out of range")
)

// DrinkType describes one of the fixed kinds of drink.
type DrinkType struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ABV           float64 `json:"abv"`
	DefaultVolume float64 `json:"default_volume"`
	MinVolume     float64 `json:"min_volume"`
	MaxVolume     float64 `json:"max_volume"`
	VolumeStep    float64 `json:"volume_step"`
}

const (
	DrinkBeer     = "beer"
	DrinkWine     = "wine"
	DrinkCocktail = "cocktail"
	DrinkShot     = "shot"
	DrinkCustom   = "custom"
)

// AllDrinkTypes lists every drink type in display order.
var AllDrinkTypes = []DrinkType{
	{ID: DrinkBeer, Name: "Beer", ABV: 0.05, DefaultVolume: 12, MinVolume: 8, MaxVolume: 32, VolumeStep: 4},
	{ID: DrinkWine, Name: "Wine", ABV: 0.12, DefaultVolume: 5, MinVolume: 3, MaxVolume: 12, VolumeStep: 1},
	{ID: DrinkCocktail, Name: "Cocktail", ABV: 0.40, DefaultVolume: 1.5, MinVolume: 1, MaxVolume: 4, VolumeStep: 0.5},
	{ID: DrinkShot, Name: "Shot", ABV: 0.40, DefaultVolume: 1.5, MinVolume: 1, MaxVolume: 2, VolumeStep: 0.5},
	{ID: DrinkCustom, Name: "Custom", ABV: 0.05, DefaultVolume: 12, MinVolume: 0.5, MaxVolume: 40, VolumeStep: 0.5},
}

// LookupDrinkType finds a drink type by id.
func LookupDrinkType(id string) (DrinkType, bool) {
	for _, dt := range AllDrinkTypes {
		if dt.ID == id {
			return dt, true
		}
	}
	return DrinkType{}, false
}

// IsValidDrinkType checks if a string is a known drink type id.
func IsValidDrinkType(id string) bool {
	_, ok := LookupDrinkType(id)
	return ok
}

// DrinkTypeName returns the display name for a type id, or the id itself
// when the type is unknown (imported data may carry other ids).
func DrinkTypeName(id string) string {
	if dt, ok := LookupDrinkType(id); ok {
		return dt.Name
	}
	return id
}

// VolumeOptions returns the stepped volumes min, min+step, ..., max.
func (dt DrinkType) VolumeOptions() []float64 {
	if dt.VolumeStep <= 0 {
		return []float64{dt.DefaultVolume}
	}
	n := int((dt.MaxVolume-dt.MinVolume)/dt.VolumeStep) + 1
	opts := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		opts = append(opts, dt.MinVolume+float64(i)*dt.VolumeStep)
	}
	return opts
}

// Validate checks volume and ABV against the bounds of the standard flow.
func (dt DrinkType) Validate(volume, abv float64) error {
	if volume < dt.MinVolume || volume > dt.MaxVolume {
		return fmt.Errorf("%w: %s must be between %g and %g oz, got %g",
			ErrVolumeOutOfRange, dt.ID, dt.MinVolume, dt.MaxVolume, volume)
	}
	if abv < MinABV || abv > MaxABV {
		return fmt.Errorf("%w: must be between %g and %g, got %g",
			ErrABVOutOfRange, MinABV, MaxABV, abv)
	}
	return nil
}

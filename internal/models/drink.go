// ABOUTME: Drink model for a single logged alcoholic drink.
// ABOUTME: Persisted as JSON with id, type, volume (oz), abv, and ISO-8601 timestamp.
package models

import (
	"time"
)

// Drink represents a single drink entry.
type Drink struct {
	ID        string    `json:"id" yaml:"id"`
	Type      string    `json:"type" yaml:"type"`
	Volume    float64   `json:"volume" yaml:"volume"`
	ABV       float64   `json:"abv" yaml:"abv"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// NewDrink creates a Drink of the given type with that type's default
// volume and ABV, timestamped now. The ID is assigned when stored.
func NewDrink(typeID string) *Drink {
	d := &Drink{
		Type:      typeID,
		Timestamp: time.Now(),
	}
	if dt, ok := LookupDrinkType(typeID); ok {
		d.Volume = dt.DefaultVolume
		d.ABV = dt.ABV
	}
	return d
}

// WithVolume sets the volume in ounces.
func (d *Drink) WithVolume(oz float64) *Drink {
	d.Volume = oz
	return d
}

// WithABV sets the alcohol fraction.
func (d *Drink) WithABV(abv float64) *Drink {
	d.ABV = abv
	return d
}

// WithTimestamp sets when the drink was had.
func (d *Drink) WithTimestamp(t time.Time) *Drink {
	d.Timestamp = t
	return d
}

// StandardDrinks returns this drink's size in standard drinks.
func (d Drink) StandardDrinks() float64 {
	return StandardDrinks(d.Volume, d.ABV)
}

// ShortID returns the first 8 characters of the ID for display.
func (d Drink) ShortID() string {
	if len(d.ID) <= 8 {
		return d.ID
	}
	return d.ID[:8]
}

// TotalStandardDrinks sums standard drinks across a slice.
func TotalStandardDrinks(drinks []Drink) float64 {
	var total float64
	for _, d := range drinks {
		total += d.StandardDrinks()
	}
	return total
}

// ABOUTME: Standard-drink calculator converting volume and ABV to alcohol units.
// ABOUTME: One standard drink is 14 grams of ethanol.
package models

const (
	MLPerOunce            = 29.57
	EthanolDensity        = 0.8
	GramsPerStandardDrink = 14
)

// StandardDrinks converts a volume in ounces at the given ABV fraction to
// standard drinks: ml * abv * density / grams-per-drink.
func StandardDrinks(volumeOz, abv float64) float64 {
	ml := volumeOz * MLPerOunce
	return (ml * abv * EthanolDensity) / GramsPerStandardDrink
}

// ABOUTME: CLI command for logging a drink.
// ABOUTME: Resolves the type exactly, by name, or by fuzzy match, then applies type defaults.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/drinks/internal/models"
	"github.com/harperreed/drinks/internal/tracker"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

var (
	addVolume float64
	addABV    float64
	addAt     string
)

var addCmd = &cobra.Command{
	Use:     "add <type>",
	Aliases: []string{"a"},
	Short:   "Log a drink",
	Long: `Log a drink. Volume and ABV default to the drink type's standard pour.

The type may be abbreviated: "cock" resolves to cocktail, "wn" to wine.

ABV may be given as a fraction (0.12) or a percentage (12).

Examples:
  drinks add beer
  drinks add wine --volume 8
  drinks add custom --volume 16 --abv 7.5
  drinks add shot --at 23:15
  drinks add beer --at yesterday
  drinks add cocktail --at "2024-06-11 21:00"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dt, err := resolveDrinkType(args[0])
		if err != nil {
			return err
		}

		volume := dt.DefaultVolume
		if cmd.Flags().Changed("volume") {
			volume = addVolume
		}
		abv := dt.ABV
		if cmd.Flags().Changed("abv") {
			abv = normalizeABV(addABV)
		}

		day, clock, err := tracker.ParseWhen(addAt, trk.Now(), trk.Location())
		if err != nil {
			return err
		}

		d, err := trk.AddDrink(cmd.Context(), dt.ID, volume, abv, day, clock)
		if err != nil {
			return fmt.Errorf("failed to add drink: %w", err)
		}

		color.Green("✓ Added %s", dt.Name)
		fmt.Printf("  %s %s %.2f std\n",
			color.New(color.Faint).Sprint(d.ShortID()),
			formatPour(d),
			d.StandardDrinks())

		summary, err := trk.Day(cmd.Context(), d.Timestamp)
		if err != nil {
			return err
		}
		printProgress(summary)
		return nil
	},
}

// resolveDrinkType matches input against type ids and names, falling back to
// the best fuzzy match.
func resolveDrinkType(input string) (models.DrinkType, error) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return models.DrinkType{}, fmt.Errorf("%w: empty", models.ErrUnknownDrinkType)
	}

	names := make([]string, len(models.AllDrinkTypes))
	for i, dt := range models.AllDrinkTypes {
		if dt.ID == needle || strings.ToLower(dt.Name) == needle {
			return dt, nil
		}
		names[i] = dt.ID
	}

	matches := fuzzy.Find(needle, names)
	if len(matches) == 0 {
		return models.DrinkType{}, fmt.Errorf("%w: %s\nValid types: %s",
			models.ErrUnknownDrinkType, input, strings.Join(names, ", "))
	}
	return models.AllDrinkTypes[matches[0].Index], nil
}

// normalizeABV accepts 0.05 or 5 for five percent.
func normalizeABV(v float64) float64 {
	if v > 1 {
		return v / 100
	}
	return v
}

func formatPour(d models.Drink) string {
	return fmt.Sprintf("%g oz @ %g%%", d.Volume, roundTo(d.ABV*100, 1))
}

func init() {
	addCmd.Flags().Float64Var(&addVolume, "volume", 0, "volume in US fl oz (default: type's standard pour)")
	addCmd.Flags().Float64Var(&addABV, "abv", 0, "alcohol by volume, 0.05 or 5 (default: type's ABV)")
	addCmd.Flags().StringVar(&addAt, "at", "", "when: HH:MM, YYYY-MM-DD, \"YYYY-MM-DD HH:MM\", today, yesterday")
	rootCmd.AddCommand(addCmd)
}

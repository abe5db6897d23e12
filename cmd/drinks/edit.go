// ABOUTME: CLI commands for editing and deleting drinks.
// ABOUTME: Both accept a full id or a unique id prefix.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/drinks/internal/models"
	"github.com/harperreed/drinks/internal/storage"
	"github.com/spf13/cobra"
)

var (
	editVolume float64
	editABV    float64
	editAt     string
)

var editCmd = &cobra.Command{
	Use:     "edit <id>",
	Aliases: []string{"e"},
	Short:   "Edit a drink",
	Long: `Change the volume, ABV, or time of a logged drink. Unspecified fields keep
their current values. The drink type cannot be changed; delete and re-add
instead.

EXAMPLES:

  drinks edit abc12345 --volume 16
  drinks edit abc1 --abv 6.5
  drinks edit abc1 --at 20:30              # same day, new time
  drinks edit abc1 --at "2024-06-11 20:30"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		existing, err := store.GetDrink(ctx, args[0])
		if err != nil {
			return lookupError(args[0], err)
		}

		volume, abv := existing.Volume, existing.ABV
		if cmd.Flags().Changed("volume") {
			volume = editVolume
		}
		if cmd.Flags().Changed("abv") {
			abv = normalizeABV(editABV)
		}
		d, found, err := trk.EditDrinkAt(ctx, existing.ID, volume, abv, editAt)
		if err != nil {
			return fmt.Errorf("failed to edit drink: %w", err)
		}
		if !found {
			return fmt.Errorf("drink not found: %s", args[0])
		}

		color.Green("✓ Updated %s", models.DrinkTypeName(d.Type))
		fmt.Printf("  %s %s %s %.2f std\n",
			color.New(color.Faint).Sprint(d.ShortID()),
			d.Timestamp.In(trk.Location()).Format("2006-01-02 15:04"),
			formatPour(d),
			d.StandardDrinks())
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a drink",
	Long: `Delete a drink by its ID or ID prefix.

The ID prefix is shown in the first column of 'drinks list' output.

EXAMPLES:

  drinks delete abc12345      # Delete by 8-char prefix
  drinks rm abc1              # Short prefix (if unique)

CAUTION:

  This permanently deletes the drink. There is no undo.
  If the prefix matches multiple drinks, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		d, err := store.GetDrink(ctx, args[0])
		if err != nil {
			return lookupError(args[0], err)
		}
		if err := trk.DeleteDrink(ctx, d.ID); err != nil {
			return fmt.Errorf("failed to delete drink: %w", err)
		}

		color.Yellow("✗ Deleted %s", models.DrinkTypeName(d.Type))
		fmt.Printf("  %s %s %.2f std\n",
			color.New(color.Faint).Sprint(d.ShortID()),
			formatPour(d),
			d.StandardDrinks())
		return nil
	},
}

func lookupError(id string, err error) error {
	switch {
	case errors.Is(err, storage.ErrAmbiguousID):
		return fmt.Errorf("id prefix %q matches more than one drink, use more characters", id)
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("drink not found: %s", id)
	default:
		return err
	}
}

func init() {
	editCmd.Flags().Float64Var(&editVolume, "volume", 0, "new volume in US fl oz")
	editCmd.Flags().Float64Var(&editABV, "abv", 0, "new alcohol by volume, 0.05 or 5")
	editCmd.Flags().StringVar(&editAt, "at", "", "new time: HH:MM (same day), YYYY-MM-DD (same time), \"YYYY-MM-DD HH:MM\"")
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
}

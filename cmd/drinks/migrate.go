// ABOUTME: CLI command for copying data between storage backends.
// ABOUTME: Opens both backends from the same config and merges source into destination.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/drinks/internal/config"
	"github.com/harperreed/drinks/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateFrom  string
	migrateTo    string
	migrateForce bool
)

var migrateCmd = &cobra.Command{
	Use:         "migrate",
	Short:       "Copy data between storage backends",
	Annotations: map[string]string{annotationStorage: "none"},
	Long: `Copy the weekly limit and every drink from one backend to another.

Both backends use the configured data directory. Drink ids are kept, so
running the migration twice does not create duplicates.

If the destination already holds data the command refuses to run unless
--force is given; with --force the source is merged into it.

After migrating, set "backend" in ~/.config/drinks/config.json (or pass
--backend) to start using the new backend.

EXAMPLES:

  drinks migrate --from badger --to sqlite
  drinks migrate --from charm --to badger --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateFrom == "" || migrateTo == "" {
			return fmt.Errorf("both --from and --to are required")
		}
		if migrateFrom == migrateTo {
			return fmt.Errorf("--from and --to must differ")
		}

		srcCfg, dstCfg := *cfg, *cfg
		srcCfg.Backend = migrateFrom
		dstCfg.Backend = migrateTo

		if !migrateForce {
			nonEmpty, err := destinationHasData(&dstCfg)
			if err != nil {
				return err
			}
			if nonEmpty {
				return fmt.Errorf("destination %s already has data (use --force to merge)", dstCfg.GetBackend())
			}
		}

		src, err := srcCfg.OpenStorage(logger)
		if err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}
		defer func() { _ = src.Close() }()

		dst, err := dstCfg.OpenStorage(logger)
		if err != nil {
			return fmt.Errorf("failed to open destination: %w", err)
		}
		defer func() { _ = dst.Close() }()

		summary, err := storage.MigrateData(cmd.Context(), src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %s → %s", srcCfg.GetBackend(), dstCfg.GetBackend())
		fmt.Printf("  %d drinks", summary.Drinks)
		if summary.Profile {
			fmt.Print(", weekly limit")
		}
		fmt.Println()
		return nil
	},
}

func destinationHasData(c *config.Config) (bool, error) {
	path := c.BackendPath()
	if path == "" {
		return false, nil
	}
	if c.GetBackend() == config.BackendBadger {
		return storage.IsDirNonEmpty(path)
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Size() > 0, nil
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "source backend (badger, sqlite, charm)")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend (badger, sqlite, charm)")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "merge into a destination that already has data")
	rootCmd.AddCommand(migrateCmd)
}

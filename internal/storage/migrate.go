// ABOUTME: Data migration between drink storage backends.
// ABOUTME: Copies the profile and the drink collection from source to destination.

package storage

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Profile bool
	Drinks  int
}

// MigrateData copies all data from src to dst storage. Drink ids are kept,
// so migrating into a destination that already holds some of them replaces
// those records instead of duplicating them.
func MigrateData(ctx context.Context, src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	profile, err := src.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("read source profile: %w", err)
	}

	drinks, err := src.ListDrinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list source drinks: %w", err)
	}

	result, err := dst.ImportData(ctx, &ExportData{
		Version: ExportVersion,
		Tool:    "drinks",
		Profile: profile,
		Drinks:  drinks,
	})
	if err != nil {
		return nil, fmt.Errorf("write destination: %w", err)
	}

	summary.Drinks = result.Added + result.Replaced
	summary.Profile = strings.TrimSpace(profile.WeeklyLimit) != ""
	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}

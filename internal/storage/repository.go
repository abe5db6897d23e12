// ABOUTME: Repository interface for drink tracker storage.
// ABOUTME: Defines the profile and drink collection contract over a key/value store.
package storage

import (
	"context"
	"time"

	"github.com/harperreed/drinks/internal/models"
)

// Repository defines the storage interface for drink data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Profile operations
	GetProfile(ctx context.Context) (models.Profile, error)
	SaveProfile(ctx context.Context, p models.Profile) error

	// Drink operations
	ListDrinks(ctx context.Context) ([]models.Drink, error)
	ListDrinksByDay(ctx context.Context, day time.Time, loc *time.Location) ([]models.Drink, error)
	GetDrink(ctx context.Context, idOrPrefix string) (models.Drink, error)
	AddDrink(ctx context.Context, d models.Drink) (models.Drink, error)
	UpdateDrink(ctx context.Context, d models.Drink) error
	DeleteDrink(ctx context.Context, id string) error

	// Export/Import
	GetAllData(ctx context.Context) (*ExportData, error)
	ImportData(ctx context.Context, data *ExportData) (*ImportSummary, error)

	// Lifecycle
	Close() error
}

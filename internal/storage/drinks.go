// ABOUTME: Drink collection CRUD over a single JSON document.
// ABOUTME: Every operation reads the whole collection and writes it back whole.
package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/drinks/internal/kv"
	"github.com/harperreed/drinks/internal/models"
)

// ListDrinks returns the whole collection in stored order.
func (s *Store) ListDrinks(ctx context.Context) ([]models.Drink, error) {
	drinks, _, err := load[[]models.Drink](ctx, s, kv.KeyDrinks)
	if err != nil {
		return nil, fmt.Errorf("list drinks: %w", err)
	}
	if drinks == nil {
		drinks = []models.Drink{}
	}
	return drinks, nil
}

func (s *Store) saveDrinks(ctx context.Context, drinks []models.Drink) error {
	if err := s.save(ctx, kv.KeyDrinks, drinks); err != nil {
		return fmt.Errorf("save drinks: %w", err)
	}
	return nil
}

// AddDrink assigns a fresh id, appends the drink, and persists the collection.
// Any id already set on d is replaced.
func (s *Store) AddDrink(ctx context.Context, d models.Drink) (models.Drink, error) {
	drinks, err := s.ListDrinks(ctx)
	if err != nil {
		return models.Drink{}, err
	}

	taken := make(map[string]bool, len(drinks))
	for _, existing := range drinks {
		taken[existing.ID] = true
	}
	d.ID = uuid.NewString()
	for taken[d.ID] {
		d.ID = uuid.NewString()
	}
	d.Timestamp = d.Timestamp.UTC()

	drinks = append(drinks, d)
	if err := s.saveDrinks(ctx, drinks); err != nil {
		return models.Drink{}, err
	}
	s.logger.Debug("added drink", "id", d.ID, "type", d.Type)
	return d, nil
}

// UpdateDrink replaces the drink with the same id. Unknown ids are ignored.
func (s *Store) UpdateDrink(ctx context.Context, d models.Drink) error {
	drinks, err := s.ListDrinks(ctx)
	if err != nil {
		return err
	}

	for i := range drinks {
		if drinks[i].ID == d.ID {
			d.Timestamp = d.Timestamp.UTC()
			drinks[i] = d
			return s.saveDrinks(ctx, drinks)
		}
	}
	s.logger.Debug("update skipped, unknown id", "id", d.ID)
	return nil
}

// DeleteDrink removes the drink with the given id. Unknown ids are ignored.
func (s *Store) DeleteDrink(ctx context.Context, id string) error {
	drinks, err := s.ListDrinks(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Drink, 0, len(drinks))
	for _, d := range drinks {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(drinks) {
		s.logger.Debug("delete skipped, unknown id", "id", id)
		return nil
	}
	return s.saveDrinks(ctx, kept)
}

// GetDrink retrieves a drink by full id or unique id prefix.
func (s *Store) GetDrink(ctx context.Context, idOrPrefix string) (models.Drink, error) {
	drinks, err := s.ListDrinks(ctx)
	if err != nil {
		return models.Drink{}, err
	}
	return resolveDrink(drinks, idOrPrefix)
}

func resolveDrink(drinks []models.Drink, idOrPrefix string) (models.Drink, error) {
	if idOrPrefix == "" {
		return models.Drink{}, fmt.Errorf("%w: empty id", ErrNotFound)
	}
	var matches []models.Drink
	for _, d := range drinks {
		if d.ID == idOrPrefix {
			return d, nil
		}
		if strings.HasPrefix(d.ID, idOrPrefix) {
			matches = append(matches, d)
		}
	}

	if len(matches) == 0 {
		return models.Drink{}, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	if len(matches) > 1 {
		return models.Drink{}, fmt.Errorf("%w %s: matches multiple records", ErrAmbiguousID, idOrPrefix)
	}
	return matches[0], nil
}

// ListDrinksByDay returns drinks whose timestamp falls within the local
// calendar day containing day, inclusive of both boundaries. The result is
// sorted oldest first.
func (s *Store) ListDrinksByDay(ctx context.Context, day time.Time, loc *time.Location) ([]models.Drink, error) {
	drinks, err := s.ListDrinks(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByDay(drinks, day, loc), nil
}

// FilterByDay selects drinks inside the closed local-day interval containing day.
func FilterByDay(drinks []models.Drink, day time.Time, loc *time.Location) []models.Drink {
	start, end := models.DayBounds(day, loc)

	out := make([]models.Drink, 0)
	for _, d := range drinks {
		if models.WithinDay(d.Timestamp, start, end) {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

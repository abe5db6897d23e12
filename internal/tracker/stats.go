// ABOUTME: Statistics entry points that load the collection once and run the engine.
// ABOUTME: A cancelled context suppresses the result so callers never see stale data.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/drinks/internal/models"
	"github.com/harperreed/drinks/internal/stats"
	"github.com/harperreed/drinks/internal/storage"
)

func (t *Tracker) loadAll(ctx context.Context) ([]models.Drink, error) {
	drinks, err := t.store.ListDrinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drinks: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return drinks, nil
}

// Metrics computes the stats screen for the week at weekOffset.
func (t *Tracker) Metrics(ctx context.Context, weekOffset int) (stats.Metrics, error) {
	drinks, err := t.loadAll(ctx)
	if err != nil {
		return stats.Metrics{}, err
	}
	m := stats.Compute(drinks, t.Now(), weekOffset, t.StatsOptions())
	if err := ctx.Err(); err != nil {
		return stats.Metrics{}, err
	}
	return m, nil
}

// Calendar computes the heat map for the month containing month.
func (t *Tracker) Calendar(ctx context.Context, month time.Time) ([]stats.CalendarDay, error) {
	drinks, err := t.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	days := stats.Calendar(drinks, t.Now(), month, t.StatsOptions())
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return days, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
